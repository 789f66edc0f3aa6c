package main

import "github.com/jfmyers9/tagger/cmd"

func main() {
	cmd.Execute()
}

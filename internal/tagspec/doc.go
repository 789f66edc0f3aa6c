// Package tagspec parses the tag specifications given to --get and --set.
//
// A specification is a ';'-separated list of entries:
//
//	entries    := entry (";" entry)* ";"?
//	entry      := name "=" valuelist
//	name       := ("\=" | any rune except '=')*
//	valuelist  := quoted (quoted)* | scalar
//	quoted     := '"' text '"' | "'" text "'"
//	scalar     := any runes up to ";" or end of input
//
// Names and scalar values are trimmed of surrounding whitespace. Inside a
// quoted value a backslash escapes the next rune, so "a \"b\"" reads as
// a "b". Only whitespace and ';' may follow a list of quoted values.
//
// Examples:
//
//	ARTIST=Nina Simone                  ARTIST: [Nina Simone]
//	GENRE="Jazz" 'Soul';YEAR=1965       GENRE: [Jazz Soul], YEAR: [1965]
//	A\=B=val                            A=B: [val]
//	COMMENT=                            COMMENT: [""]
package tagspec

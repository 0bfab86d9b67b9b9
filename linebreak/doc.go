/*
Package linebreak finds line break opportunities in Unicode text, following
Unicode Standard Annex #14 (Unicode Line Breaking Algorithm).

Every code point is mapped to a line breaking class by a two-level compressed
table: 256-code-point blocks sharing a single class are encoded directly in
the page index, all other blocks reference a 256-entry page. A finite
automaton over these classes then decides for every boundary whether a break
is prohibited, allowed or mandatory. Its transitions are kept in a pair table
indexed by (state, class); the single exception handled outside the table is
LB8a (no break after a zero width joiner), which is tracked by the scanner.

Both tables are compiled once from UCD data and the rule set, and are
read-only afterwards.

Usage:

	for offset, op := range linebreak.Opportunities("Hello World") {
		if op != linebreak.NoBreak {
			fmt.Printf("may break before byte %d\n", offset)
		}
	}

Further Reading

	https://www.unicode.org/reports/tr14/
	https://www.unicode.org/Public/UCD/latest/ucd/LineBreak.txt

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package linebreak

import (
	"github.com/npillmayer/schuko/tracing"
)

// UnicodeVersion is the version of UAX #14 the rule set follows.
const UnicodeVersion = "15.0.0"

// tracer writes to trace with key 'linewrap.linebreak'
func tracer() tracing.Trace {
	return tracing.Select("linewrap.linebreak")
}

func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

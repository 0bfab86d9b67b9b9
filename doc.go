/*
Package linewrap inserts line breaks into text so that no line exceeds a
given width.

Widths are measured per character by a caller-supplied width source (see
package metrics), in whatever unit the caller chooses: terminal cells, font
units, pixels. Lines are broken only at positions where Unicode allows it
(UAX #14, see package linebreak), and greedily: a line is filled as far as it
goes, then broken at the last legal opportunity.

	wrapped, err := linewrap.Wrap(text, 35, metrics.Terminal{})

Newlines already present in the text are kept and start a fresh line. No
character of the input is dropped or replaced; the only change is the
insertion of '\n' characters. If a run of text without any break opportunity
is wider than the limit, wrapping fails with ErrNoLegalLinebreakOpportunity.

Further Reading

	https://www.unicode.org/reports/tr14/

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package linewrap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linewrap'
func tracer() tracing.Trace {
	return tracing.Select("linewrap")
}

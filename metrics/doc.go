/*
Package metrics provides character widths for line wrapping.

A width source maps a character to a non-negative width in some unit, or
reports that it has no width for it. Sources are provided for

  - explicit tables (Map, Uniform, ReadYAML),
  - terminal cells (Terminal),
  - East Asian Width based layout (EastAsian),
  - advance widths of TrueType/OpenType fonts (SFNT).

Sources may be chained with Fallback.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linewrap.metrics'
func tracer() tracing.Trace {
	return tracing.Select("linewrap.metrics")
}

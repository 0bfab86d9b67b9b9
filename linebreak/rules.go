package linebreak

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

// Bits of a packed pair table cell. The remaining low bits hold the next
// automaton state.
const (
	AllowedBreakBit   uint8 = 0x80
	MandatoryBreakBit uint8 = 0x40

	maxStates = int(MandatoryBreakBit) // state ids must not touch the break bits
)

// pairTable is indexed by (state, class) and yields
// nextState | AllowedBreakBit | MandatoryBreakBit.
//
// The break bits describe the boundary between the previous code point and
// the one of the column class. State ids are opaque table indices.
type pairTable struct {
	Cells [][NumClasses]uint8
	Start uint8 // state before the first code point (sot)
}

// Lookup returns the packed cell for state and class.
func (t *pairTable) Lookup(state uint8, c Class) uint8 {
	return t.Cells[state][c]
}

// NumStates returns the number of automaton states.
func (t *pairTable) NumStates() int { return len(t.Cells) }

// --- Rule compiler ---------------------------------------------------------

// context is what the rule set needs to know about the text to the left of
// a boundary. It is the build-time meaning of a state id.
type context struct {
	base   Class // last class not absorbed by LB9; SOT at start and after neutral spaces
	spaces bool  // one or more SP follow base
	hyphen bool  // base is HY or BA and follows HL (LB21a)
	riOdd  bool  // base is the odd-numbered RI of a run (LB30a)
}

var sotContext = context{base: SOT}

func classSet(classes ...Class) *bitset.BitSet {
	s := bitset.New(uint(NumClasses))
	for _, c := range classes {
		s.Set(uint(c))
	}
	return s
}

func in(s *bitset.BitSet, c Class) bool {
	return s.Test(uint(c))
}

var (
	hardBreaks = classSet(BK, CR, LF, NL)
	// classes which cannot carry a combining sequence (LB9)
	noCombiningBase = classSet(SOT, BK, CR, LF, NL, ZW)
	// classes whose rules look across intervening spaces
	spaceContexts = classSet(ZW, OP, QU, CL, CP, B2)
	closing       = classSet(CL, CP, EX, IS, SY)
	breakAfter    = classSet(BA, HY, NS)
)

// pairRule states "before × after" for all combinations of the two sets,
// for adjacent classes without intervening spaces.
type pairRule struct {
	name          string
	before, after *bitset.BitSet
}

// pairRules are the rules LB23 to LB30b, all of them prohibiting a break.
// LB30 for OP is in decide, as it depends on East Asian Width.
//
// LB25 is the pair form listed in UAX #14, not the regular expression
// tailoring: "+(" and "/1" do not break, even without digits around them.
var pairRules = []pairRule{
	{"LB23", classSet(AL, HL), classSet(NU)},
	{"LB23", classSet(NU), classSet(AL, HL)},
	{"LB23a", classSet(PR), classSet(ID, EB, EM)},
	{"LB23a", classSet(ID, EB, EM), classSet(PO)},
	{"LB24", classSet(PR, PO), classSet(AL, HL)},
	{"LB24", classSet(AL, HL), classSet(PR, PO)},
	{"LB25", classSet(CL, CP, NU), classSet(PO, PR)},
	{"LB25", classSet(PO, PR), classSet(OP, NU)},
	{"LB25", classSet(HY, IS, NU, SY), classSet(NU)},
	{"LB26", classSet(JL), classSet(JL, JV, H2, H3)},
	{"LB26", classSet(JV, H2), classSet(JV, JT)},
	{"LB26", classSet(JT, H3), classSet(JT)},
	{"LB27", classSet(JL, JV, JT, H2, H3), classSet(PO)},
	{"LB27", classSet(PR), classSet(JL, JV, JT, H2, H3)},
	{"LB28", classSet(AL, HL), classSet(AL, HL)},
	{"LB29", classSet(IS), classSet(AL, HL)},
	{"LB30", classSet(CP), classSet(AL, HL, NU)},
	{"LB30b", classSet(EB), classSet(EM)},
}

// resolve implements LB1 in the absence of further criteria. SA marks have
// been split off as CM when loading the tables.
func resolve(c Class) Class {
	switch c {
	case AI, SG, XX, SA:
		return AL
	case CJ:
		return NS
	case OPW:
		return OP
	}
	return c
}

// beforeNarrowOP are the classes LB30 keeps together with a following OP,
// unless the OP is East Asian wide.
var beforeNarrowOP = classSet(AL, HL, NU)

type verdict uint8

const (
	prohibited verdict = iota
	allowed
	mandatory
)

// step computes the verdict for the boundary between ctx and a code point of
// class c, and the context to the right of that code point.
// LB8a (ZWJ ×) is not part of the table, scanners track it separately.
func step(ctx context, c Class) (context, verdict) {
	wide := c == OPW
	c = resolve(c)
	if c == EOT { // LB2, LB3
		if ctx == sotContext {
			return sotContext, prohibited
		}
		return sotContext, mandatory
	}
	absorbed := false
	if c == CM || c == ZWJ {
		if !ctx.spaces && !in(noCombiningBase, ctx.base) { // LB9
			absorbed = true
		} else { // LB10
			c = AL
		}
	}
	v := decide(ctx, c, absorbed, wide)
	if absorbed {
		return ctx, v
	}
	return advance(ctx, c), v
}

// decide applies the rules in order. wide tells if an OP is East Asian wide.
func decide(ctx context, c Class, absorbed, wide bool) verdict {
	b, sp := ctx.base, ctx.spaces
	switch {
	case ctx == sotContext: // LB2
		return prohibited
	case b == BK || b == LF || b == NL: // LB4, LB5
		return mandatory
	case b == CR:
		if c == LF {
			return prohibited
		}
		return mandatory
	case in(hardBreaks, c): // LB6
		return prohibited
	case c == SP || c == ZW: // LB7
		return prohibited
	case b == ZW: // LB8
		return allowed
	case absorbed: // LB9
		return prohibited
	case c == WJ || (b == WJ && !sp): // LB11
		return prohibited
	case b == GL && !sp: // LB12
		return prohibited
	case c == GL && !sp && b != BA && b != HY: // LB12a
		return prohibited
	case in(closing, c): // LB13
		return prohibited
	case b == OP: // LB14
		return prohibited
	case b == QU && c == OP: // LB15
		return prohibited
	case (b == CL || b == CP) && c == NS: // LB16
		return prohibited
	case b == B2 && c == B2: // LB17
		return prohibited
	case sp: // LB18
		return allowed
	case c == QU || b == QU: // LB19
		return prohibited
	case c == CB || b == CB: // LB20
		return allowed
	case in(breakAfter, c) || b == BB: // LB21
		return prohibited
	case ctx.hyphen: // LB21a
		return prohibited
	case b == SY && c == HL: // LB21b
		return prohibited
	case c == IN: // LB22
		return prohibited
	case c == OP && !wide && in(beforeNarrowOP, b): // LB30
		return prohibited
	case b == RI && c == RI && ctx.riOdd: // LB30a
		return prohibited
	}
	for _, r := range pairRules {
		if in(r.before, b) && in(r.after, c) {
			return prohibited
		}
	}
	return allowed // LB31
}

// advance returns the context to the right of a code point of class c which
// has not been absorbed into a combining sequence.
func advance(ctx context, c Class) context {
	if c == SP {
		if in(spaceContexts, ctx.base) {
			return context{base: ctx.base, spaces: true}
		}
		return context{base: SOT, spaces: true} // only LB18 looks back
	}
	next := context{base: c}
	switch c {
	case HY, BA:
		next.hyphen = ctx.base == HL && !ctx.spaces
	case RI:
		next.riOdd = !(ctx.base == RI && !ctx.spaces && ctx.riOdd)
	}
	return next
}

// compilePairs enumerates all contexts reachable from start of text and
// encodes the transitions into a pair table.
func compilePairs() (*pairTable, error) {
	ids := map[context]uint8{sotContext: 0}
	queue := []context{sotContext}
	var cells [][NumClasses]uint8
	for len(queue) > 0 {
		ctx := queue[0]
		queue = queue[1:]
		var row [NumClasses]uint8
		for c := Class(0); int(c) < NumClasses; c++ {
			if c == SOT {
				continue // never looked up
			}
			next, v := step(ctx, c)
			id, ok := ids[next]
			if !ok {
				if len(ids) >= maxStates {
					return nil, errors.Errorf("line break automaton exceeds %d states", maxStates)
				}
				id = uint8(len(ids))
				ids[next] = id
				queue = append(queue, next)
			}
			cell := id
			switch v {
			case allowed:
				cell |= AllowedBreakBit
			case mandatory:
				cell |= AllowedBreakBit | MandatoryBreakBit
			}
			row[c] = cell
		}
		cells = append(cells, row)
	}
	return &pairTable{Cells: cells, Start: ids[sotContext]}, nil
}

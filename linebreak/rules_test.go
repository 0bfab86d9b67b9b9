package linebreak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePairs(t *testing.T) {
	pairs, err := compilePairs()
	require.NoError(t, err)
	require.Greater(t, pairs.NumStates(), 1)
	require.Less(t, pairs.NumStates(), maxStates)
	require.Equal(t, uint8(0), pairs.Start)
	for s, row := range pairs.Cells {
		for c, cell := range row {
			next := cell &^ (AllowedBreakBit | MandatoryBreakBit)
			require.Less(t, int(next), pairs.NumStates(), "state %d, class %s", s, Class(c))
			if cell&MandatoryBreakBit != 0 {
				require.NotZero(t, cell&AllowedBreakBit, "mandatory break without allowed bit")
			}
		}
	}
}

func TestStepVerdicts(t *testing.T) {
	spaces := context{base: SOT, spaces: true}
	tests := []struct {
		name string
		ctx  context
		c    Class
		want verdict
	}{
		{"LB2 sot", sotContext, AL, prohibited},
		{"LB3 eot", context{base: AL}, EOT, mandatory},
		{"empty text", sotContext, EOT, prohibited},
		{"LB4 BK", context{base: BK}, AL, mandatory},
		{"LB5 CR LF", context{base: CR}, LF, prohibited},
		{"LB5 CR", context{base: CR}, AL, mandatory},
		{"LB5 LF", context{base: LF}, LF, mandatory},
		{"LB6", context{base: AL}, LF, prohibited},
		{"LB7", context{base: AL}, SP, prohibited},
		{"LB8", context{base: ZW, spaces: true}, AL, allowed},
		{"LB9", context{base: AL}, CM, prohibited},
		{"LB10", spaces, CM, allowed},
		{"LB11", context{base: AL}, WJ, prohibited},
		{"LB12", context{base: GL}, AL, prohibited},
		{"LB12a", context{base: AL}, GL, prohibited},
		{"LB12a after hyphen", context{base: HY}, GL, allowed},
		{"LB13", spaces, CL, prohibited},
		{"LB14", context{base: OP, spaces: true}, AL, prohibited},
		{"LB15", context{base: QU, spaces: true}, OP, prohibited},
		{"LB16", context{base: CP, spaces: true}, NS, prohibited},
		{"LB17", context{base: B2, spaces: true}, B2, prohibited},
		{"LB18", spaces, AL, allowed},
		{"LB19", context{base: AL}, QU, prohibited},
		{"LB20", context{base: AL}, CB, allowed},
		{"LB21", context{base: AL}, HY, prohibited},
		{"LB21 BB", context{base: BB}, AL, prohibited},
		{"LB21a", context{base: HY, hyphen: true}, AL, prohibited},
		{"LB21b", context{base: SY}, HL, prohibited},
		{"LB22", context{base: AL}, IN, prohibited},
		{"LB23", context{base: AL}, NU, prohibited},
		{"LB24", context{base: PR}, AL, prohibited},
		{"LB25", context{base: NU}, PO, prohibited},
		{"LB26", context{base: JL}, JV, prohibited},
		{"LB28", context{base: AL}, AL, prohibited},
		{"LB30", context{base: AL}, OP, prohibited},
		{"LB30 wide", context{base: AL}, OPW, allowed},
		{"LB30 wide after digit", context{base: NU}, OPW, allowed},
		{"LB25 wide", context{base: PR}, OPW, prohibited},
		{"LB14 wide", context{base: OP}, OPW, prohibited},
		{"LB25 pair form", context{base: PR}, OP, prohibited},
		{"LB25 pair form SY", context{base: SY}, NU, prohibited},
		{"LB30a odd", context{base: RI, riOdd: true}, RI, prohibited},
		{"LB30a even", context{base: RI}, RI, allowed},
		{"LB30b", context{base: EB}, EM, prohibited},
		{"LB31", context{base: AL}, ID, allowed},
		{"LB1 XX as AL", context{base: AL}, XX, prohibited},
		{"LB1 CJ as NS", context{base: ID}, CJ, prohibited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, v := step(tt.ctx, tt.c)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestStepContexts(t *testing.T) {
	next, _ := step(context{base: AL}, CM)
	assert.Equal(t, context{base: AL}, next, "combining marks are absorbed")

	next, _ = step(context{base: AL}, SP)
	assert.Equal(t, context{base: SOT, spaces: true}, next, "neutral spaces collapse")

	next, _ = step(context{base: OP}, SP)
	assert.Equal(t, context{base: OP, spaces: true}, next)

	next, _ = step(context{base: AL}, OPW)
	assert.Equal(t, context{base: OP}, next, "wide OP continues like OP")

	next, _ = step(context{base: HL}, HY)
	assert.True(t, next.hyphen)

	next, _ = step(context{base: AL}, RI)
	assert.True(t, next.riOdd)
	next, _ = step(next, RI)
	assert.False(t, next.riOdd)
}

package linebreak

// Class is a UAX #14 line breaking class.
//
// The numeric values are table indices: they are stored in the compressed
// classification pages and select the column of the pair table. Do not reorder.
type Class uint8

// Line breaking classes as listed in LineBreak.txt, plus OPW, which tables
// derive from OP, and two pseudo classes marking start and end of text.
const (
	BK  Class = iota // Mandatory Break
	CR               // Carriage Return
	LF               // Line Feed
	CM               // Combining Mark
	NL               // Next Line
	SG               // Surrogate
	WJ               // Word Joiner
	ZW               // Zero Width Space
	GL               // Non-breaking ("Glue")
	SP               // Space
	ZWJ              // Zero Width Joiner
	B2               // Break Opportunity Before and After
	BA               // Break After
	BB               // Break Before
	HY               // Hyphen
	CB               // Contingent Break Opportunity
	CL               // Close Punctuation
	CP               // Close Parenthesis
	EX               // Exclamation/Interrogation
	IN               // Inseparable
	NS               // Nonstarter
	OP               // Open Punctuation
	QU               // Quotation
	IS               // Infix Numeric Separator
	NU               // Numeric
	PO               // Postfix Numeric
	PR               // Prefix Numeric
	SY               // Symbols Allowing Break After
	AI               // Ambiguous (Alphabetic or Ideographic)
	AL               // Alphabetic
	CJ               // Conditional Japanese Starter
	EB               // Emoji Base
	EM               // Emoji Modifier
	H2               // Hangul LV Syllable
	H3               // Hangul LVT Syllable
	HL               // Hebrew Letter
	ID               // Ideographic
	JL               // Hangul L Jamo
	JV               // Hangul V Jamo
	JT               // Hangul T Jamo
	RI               // Regional Indicator
	SA               // Complex Context Dependent (South East Asian)
	XX               // Unknown
	OPW              // OP with East Asian Width F, W or H, derived (LB30)
	SOT              // pseudo class: start of text
	EOT              // pseudo class: end of text

	// NumClasses is the number of classes including the pseudo classes.
	NumClasses = int(EOT) + 1
)

// Unknown is the class of every code point not covered by the break data.
const Unknown = XX

var classNames = [NumClasses]string{
	"BK", "CR", "LF", "CM", "NL", "SG", "WJ", "ZW", "GL", "SP", "ZWJ",
	"B2", "BA", "BB", "HY", "CB", "CL", "CP", "EX", "IN", "NS", "OP",
	"QU", "IS", "NU", "PO", "PR", "SY", "AI", "AL", "CJ", "EB", "EM",
	"H2", "H3", "HL", "ID", "JL", "JV", "JT", "RI", "SA", "XX",
	"OPW", "sot", "eot",
}

func (c Class) String() string {
	if int(c) < NumClasses {
		return classNames[c]
	}
	return "Class(?)"
}

// foldedClasses maps newer UCD values, which the rule set does not know about,
// to the class they degrade to.
var foldedClasses = map[string]Class{
	"AK": AL, // Aksara
	"AP": AL, // Aksara_Prebase
	"AS": AL, // Aksara_Start
	"VF": CM, // Virama_Final
	"VI": CM, // Virama
}

// ParseClass returns the class for a UCD short property value name, e.g. "AL".
// OPW and the pseudo classes sot and eot are not UCD values and cannot be
// parsed.
func ParseClass(name string) (Class, bool) {
	for c := BK; c <= XX; c++ {
		if classNames[c] == name {
			return c, true
		}
	}
	return XX, false
}

// classFromIndex is the checked conversion from a packed table value to a
// class. Values outside the enumeration decode to Unknown.
func classFromIndex(v uint16) (Class, bool) {
	if v > uint16(OPW) {
		return Unknown, false
	}
	return Class(v), true
}

package normalize

import (
	"regexp"
	"strings"

	"github.com/massprop-dedup/internal/rules"
	"github.com/massprop-dedup/internal/table"
)

func suffixRule(abbr, full string) rules.Rule {
	return rules.New(abbr+`\.?`, full).
		Left(rules.StartOrSpace).
		Right(rules.EndOfToken)
}

// streetTypeSet expands street-type abbreviations to full words. The
// digit/suffix corrections come first: "121 ST" is the ordinal 121ST, not
// 121 STREET, and must be rejoined before the suffix rules can see it.
var streetTypeSet = rules.NewSet(
	rules.New(`(\d*1)\s+ST`, "${1}ST").Left(rules.StartOrSpace).Right(rules.EndOfToken),
	rules.New(`(\d*2)\s+ND`, "${1}ND").Left(rules.StartOrSpace).Right(rules.EndOfToken),
	rules.New(`(\d*3)\s+RD`, "${1}RD").Left(rules.StartOrSpace).Right(rules.EndOfToken),
	rules.New(`(\d+)\s+TH`, "${1}TH").Left(rules.StartOrSpace).Right(rules.EndOfToken),
	rules.New(`P\.?\s*O\.?\s*BOX`, "PO BOX").Left(rules.StartOrSpace),
	suffixRule("ST", "STREET"),
	suffixRule("AVE", "AVENUE"),
	suffixRule("LN", "LANE"),
	suffixRule("BLVD", "BOULEVARD"),
	suffixRule("PKWY", "PARKWAY"),
	suffixRule("DR", "DRIVE"),
	suffixRule("RD", "ROAD"),
	suffixRule("TERR", "TERRACE"),
	suffixRule("TER", "TERRACE"),
	suffixRule("PL", "PLACE"),
	suffixRule("CIR", "CIRCLE"),
	suffixRule("ALY", "ALLEY"),
	suffixRule("SQ", "SQUARE"),
	suffixRule("HWY", "HIGHWAY"),
	suffixRule("FWY", "FREEWAY"),
	suffixRule("CT", "COURT"),
	suffixRule("PLZ", "PLAZA"),
	suffixRule("WHF", "WHARF"),
)

// ExpandStreetTypes expands street-type abbreviations, anchored to the
// end of a token so substrings are never mangled.
var ExpandStreetTypes = apply(streetTypeSet)

var rePOBox = regexp.MustCompile(`^\s*PO BOX\b`)

// IsPOBox reports whether the value is a PO Box line. Box numbers look
// exactly like unit codes, so these lines bypass unit segmentation.
func IsPOBox(s string) bool {
	return rePOBox.MatchString(s)
}

const unitMarkers = `(UNIT|BLDG|BUILDING|STE|SUITE|APT|APARTMENT|FL|FLOOR|RM|ROOM|NO|NUM|BOX|PMB)`

// Trailing-suffix patterns for unit segmentation, tried in order with the
// first match winning. The floor-ordinal pattern sits ahead of the bare
// marker pattern: "3RD FLOOR" contains the FLOOR marker, and stripping
// only " FLOOR" would leave the ordinal behind.
var unitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\s+\d+(ST|ND|RD|TH)\s+(FLOOR|FL)$`),
	regexp.MustCompile(`\s+` + unitMarkers + `\.?(\s*#\s*[0-9A-Z-]{1,6}|\s+[0-9A-Z-]{1,6})?$`),
	regexp.MustCompile(`\s+#?[0-9A-Z-]*\d[0-9A-Z-]*$`),
	regexp.MustCompile(`\s+[A-Z0-9]$`),
}

// stripUnit removes one trailing unit/suite/floor designation.
func stripUnit(s string) string {
	for _, re := range unitPatterns {
		if loc := re.FindStringIndex(s); loc != nil {
			return strings.TrimSpace(s[:loc[0]])
		}
	}
	return s
}

// SegmentUnits strips trailing unit, suite, apartment, floor, room and
// box designations from a column of address values. PO Box rows are set
// aside by index before stripping and merged back afterwards, so a box
// number is never mistaken for an apartment number and row order is
// preserved.
func SegmentUnits(values []table.Field) []table.Field {
	out := make([]table.Field, len(values))
	type setAside struct {
		i int
		f table.Field
	}
	var boxes []setAside
	for i, f := range values {
		if !f.Valid {
			out[i] = f
			continue
		}
		if IsPOBox(f.String) {
			boxes = append(boxes, setAside{i, f})
			continue
		}
		out[i] = table.String(stripUnit(collapse(f.String)))
	}
	for _, b := range boxes {
		out[b.i] = b.f
	}
	return out
}

// Hyphenated street-number ranges keep only the first number; a bare
// hyphen-letter tail ("125-A") is dropped separately. The two passes are
// independent — the second fires whether or not the first matched.
var hyphenSet = rules.NewSet(
	rules.New(`\b(\d+)[A-Z]?-\d+[A-Z]?\b`, "$1"),
	rules.New(`-[A-Z]{1,2}`, "").Right(rules.SpaceOrEnd),
)

// StripHyphenRanges removes the second half of hyphenated street-number
// ranges and stray hyphen-letter suffixes.
var StripHyphenRanges = apply(hyphenSet)

// A residual single token after every other address rule ("APT", "REAR",
// a bare number) is not an address.
var oneWordSet = rules.NewSet(
	rules.Blank(`^[A-Z0-9]+$`),
)

// BlankOneWordAddresses nulls values reduced to a single unbroken token.
func BlankOneWordAddresses(f table.Field) table.Field {
	if !f.Valid {
		return f
	}
	trimmed := strings.TrimSpace(f.String)
	if _, blanked := oneWordSet.Apply(trimmed); blanked {
		return table.Null()
	}
	return f
}

var stateSet = rules.NewSet(
	rules.New(`MASS `, "MASSACHUSETTS ").Left(rules.StartOrSpace),
)

// ExpandStateNames expands the MASS token when a word follows it.
var ExpandStateNames = apply(stateSet)

var reAllZeros = regexp.MustCompile(`^0+$`)

// TruncateZip cuts a postal code back to its 5-digit form by dropping a
// space- or hyphen-separated suffix. A code that is nothing but zeros is
// a filler, not a code, and is nulled.
func TruncateZip(f table.Field) table.Field {
	if !f.Valid {
		return f
	}
	s := strings.TrimSpace(f.String)
	if i := strings.IndexAny(s, " -"); i >= 0 {
		s = s[:i]
	}
	if s == "" || reAllZeros.MatchString(s) {
		return table.Null()
	}
	return table.String(s)
}

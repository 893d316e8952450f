package normalize

import (
	"strings"

	"github.com/massprop-dedup/internal/rules"
	"github.com/massprop-dedup/internal/table"
)

// Placeholder values that mean "no value". ABOVE is a substring match
// because records carry fragments like "SEE ABOVE" and "ADDRESS ABOVE";
// the rest anchor the whole trimmed value.
var blankSet = rules.NewSet(
	rules.Blank(`(?i)^\s*X+\s*$`),
	rules.Blank(`(?i)^\s*(NONE|N)\s*$`),
	rules.Blank(`(?i)^\s*UNKNOWN\s*$`),
	rules.Blank(`(?i)ABOVE`),
	rules.Blank(`(?i)^\s*N\s*/?\s*A\s*$`),
	rules.Blank(`(?i)^[\s.,;:#-]*SAME( ADDRESS)?\s*$`),
)

// CleanBlanks nulls semantically blank values and squeezes whitespace in
// everything else. It must run before stages that assume non-blank input,
// because the placeholder patterns can collide with real content once
// other rewrites have fired.
func CleanBlanks(f table.Field) table.Field {
	if !f.Valid {
		return f
	}
	if _, blanked := blankSet.Apply(f.String); blanked {
		return table.Null()
	}
	s := collapse(f.String)
	if s == "" {
		return table.Null()
	}
	return table.String(s)
}

func directionRule(abbr, full string) rules.Rule {
	return rules.New(abbr+`\.?`, " "+full+" ").
		Left(rules.StartOrSpace).
		Right(rules.SpaceOrEnd)
}

// Two-letter tokens first so "NE" never reads as "N" followed by junk.
// Every expansion gets identical single-space padding; the historical
// asymmetry for "E" was an inconsistency, not a feature.
var directionSet = rules.NewSet(
	directionRule("NE", "NORTHEAST"),
	directionRule("NW", "NORTHWEST"),
	directionRule("SE", "SOUTHEAST"),
	directionRule("SW", "SOUTHWEST"),
	directionRule("N", "NORTH"),
	directionRule("S", "SOUTH"),
	directionRule("E", "EAST"),
	directionRule("W", "WEST"),
)

// ExpandDirections expands abbreviated cardinal and intercardinal
// direction tokens, with or without a trailing period, then trims.
var ExpandDirections = applyCollapsed(directionSet)

var slashAmpSet = rules.NewSet(
	rules.New(`\s*/\s*`, " / "),
	rules.New(`\s*&\s*`, " AND "),
)

// SpaceSlashes puts exactly one space around every "/" and rewrites "&"
// to the word AND.
var SpaceSlashes = applyCollapsed(slashAmpSet)

var specialCharSet = rules.NewSet(
	rules.New(`[^0-9A-Za-z\s/-]`, ""),
)

// StripSpecialChars removes everything that is not alphanumeric,
// whitespace, "/" or "-".
var StripSpecialChars = apply(specialCharSet)

var numberWords = []struct{ word, digit string }{
	{"ZERO", "0"}, {"ONE", "1"}, {"TWO", "2"}, {"THREE", "3"},
	{"FOUR", "4"}, {"FIVE", "5"}, {"SIX", "6"}, {"SEVEN", "7"},
	{"EIGHT", "8"}, {"NINE", "9"}, {"TEN", "10"},
}

var ordinalWords = []struct{ word, digit string }{
	{"FIRST", "1ST"}, {"SECOND", "2ND"}, {"THIRD", "3RD"},
	{"FOURTH", "4TH"}, {"FIFTH", "5TH"}, {"SIXTH", "6TH"},
	{"SEVENTH", "7TH"}, {"EIGHTH", "8TH"}, {"NINTH", "9TH"},
	{"TENTH", "10TH"},
}

var numberSet = func() *rules.Set {
	var rs []rules.Rule
	// Cardinal words convert only at the head of the value, followed by a
	// space or hyphen ("SEVEN HILLS RD", "TWO-FAMILY").
	for _, nw := range numberWords {
		rs = append(rs, rules.New(`(?i)^`+nw.word+`([ -])`, nw.digit+"$1"))
	}
	// Ordinal words convert wherever they stand as a whole token.
	for _, ow := range ordinalWords {
		rs = append(rs, rules.New(`(?i)`+ow.word, ow.digit).
			Left(rules.StartOrSpace).
			Right(rules.SpaceOrEnd))
	}
	return rules.NewSet(rs...)
}()

// ConvertNumberWords rewrites small number words and ordinal words to
// digit form. This must run before street-type expansion so numeric
// street names ("1ST STREET") are already in digit form when suffix
// rules fire.
var ConvertNumberWords = apply(numberSet)

var trailingWordSet = rules.NewSet(
	rules.New(`(?i)\s+OF$`, ""),
	rules.New(`(?i)\s+AND$`, ""),
	rules.New(`(?i)^THE\s+`, ""),
)

// StripTrailingWords drops a trailing " OF", a trailing " AND" and a
// leading "THE " — one pass each, not recursive.
var StripTrailingWords = apply(trailingWordSet)

var theSet = rules.NewSet(
	rules.New(`(?i)^THE\s+`, ""),
	rules.New(`(?i)\s+THE$`, ""),
)

// StripThe trims a leading or trailing THE.
var StripThe = apply(theSet)

var andSet = rules.NewSet(
	rules.New(`(?i)^AND\s+`, ""),
	rules.New(`(?i)\s+AND$`, ""),
)

// StripAnd trims a leading or trailing AND.
var StripAnd = apply(andSet)

// Uppercase folds the value to upper case.
func Uppercase(f table.Field) table.Field {
	if !f.Valid {
		return f
	}
	return table.String(strings.ToUpper(f.String))
}

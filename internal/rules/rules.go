// Package rules implements ordered pattern-rewrite tables. Rule order is
// semantically significant: each rule runs against the output of the one
// before it, and later rules may rewrite text an earlier rule produced.
package rules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Context is a zero-width assertion over a match boundary. For a left
// context the index is the first byte of the match; for a right context it
// is the byte just past the match. Go's regexp engine has no lookaround,
// so context conditions are explicit predicates instead of pattern syntax,
// which also keeps them independently testable.
type Context func(s string, i int) bool

// StartOrSpace passes at the start of the string or after whitespace.
func StartOrSpace(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsSpace(r)
}

// SpaceOrEnd passes at the end of the string or before whitespace.
func SpaceOrEnd(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsSpace(r)
}

// EndOfToken passes at the end of the string, before whitespace, or before
// a period. Street-type abbreviations are anchored with this so "ST" in
// "STANLEY" never expands.
func EndOfToken(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsSpace(r) || r == '.'
}

// NotDigit passes unless the boundary character is a digit.
func NotDigit(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsDigit(r)
}

// Rule pairs a pattern with either a replacement template ($1 expansion
// supported) or a blank action that nulls the whole field.
type Rule struct {
	re    *regexp.Regexp
	repl  string
	blank bool
	left  Context
	right Context
}

// New builds a substitution rule. The pattern is compiled eagerly; a bad
// pattern is a programming error, so this panics like regexp.MustCompile.
func New(pattern, repl string) Rule {
	return Rule{re: regexp.MustCompile(pattern), repl: repl}
}

// Blank builds a rule that, when the pattern matches anywhere in the
// value, replaces the entire field with null.
func Blank(pattern string) Rule {
	return Rule{re: regexp.MustCompile(pattern), blank: true}
}

// Left attaches a left-boundary context to the rule.
func (r Rule) Left(fn Context) Rule {
	r.left = fn
	return r
}

// Right attaches a right-boundary context to the rule.
func (r Rule) Right(fn Context) Rule {
	r.right = fn
	return r
}

func (r Rule) contextOK(s string, start, end int) bool {
	if r.left != nil && !r.left(s, start) {
		return false
	}
	if r.right != nil && !r.right(s, end) {
		return false
	}
	return true
}

// fires reports whether the rule matches anywhere with its contexts
// satisfied. Used for blank rules.
func (r Rule) fires(s string) bool {
	for _, m := range r.re.FindAllStringIndex(s, -1) {
		if r.contextOK(s, m[0], m[1]) {
			return true
		}
	}
	return false
}

// rewrite substitutes every context-satisfying match across the string.
func (r Rule) rewrite(s string) string {
	matches := r.re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		if !r.contextOK(s, m[0], m[1]) {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.Write(r.re.ExpandString(nil, r.repl, s, m))
		last = m[1]
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// Set is an ordered rule table.
type Set struct {
	rules []Rule
}

// NewSet builds a rule table; rules apply strictly in the given order.
func NewSet(rs ...Rule) *Set {
	return &Set{rules: rs}
}

// Apply runs the table over a value. A blank rule that fires nulls the
// field and short-circuits the remaining rules; otherwise each rule feeds
// its output into the next. A rule that does not match leaves the value
// unchanged — no-match is never an error.
func (t *Set) Apply(s string) (out string, blanked bool) {
	for _, r := range t.rules {
		if r.blank {
			if r.fires(s) {
				return "", true
			}
			continue
		}
		s = r.rewrite(s)
	}
	return s, false
}

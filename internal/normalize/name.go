package normalize

import (
	"github.com/massprop-dedup/internal/rules"
)

// corpSuffixSet maps verbose legal-entity phrases to fixed abbreviations.
// The multi-word partnership forms come before the bare LIMITED rule so
// "LIMITED PARTNERSHIP" becomes LP, never "LTD PARTNERSHIP".
var corpSuffixSet = rules.NewSet(
	rules.New(`\s+LIMITED LIABILITY PARTNERSHIP$`, " LLP"),
	rules.New(`\s+LIMITED LIABILITY (COMPANY|CORPORATION|CO|CORP)$`, " LLC"),
	rules.New(`\s+LIMITED PARTNERSHIP$`, " LP"),
	rules.New(`\s+INCORPORATED$`, " INC"),
	rules.New(`\s+CORPORATIONS?$`, " CORP"),
	rules.New(`\s+COMPANY$`, " CO"),
	rules.New(`\s+LIMITED$`, " LTD"),
	rules.New(`\s+TRUSTEES?( OF)?$`, " TRUST"),
)

// CanonicalizeCorpSuffixes rewrites trailing entity-type phrases to their
// canonical abbreviations (LP, LLP, LLC, LTD, INC, CORP, CO, TRUST).
var CanonicalizeCorpSuffixes = apply(corpSuffixSet)

// Registered-agent and corporate-services boilerplate is not an owner; a
// match nulls the whole value.
var boilerplateSet = rules.NewSet(
	rules.Blank(`(CORP[A-Z]*|LLC)\s+(SYS|SER)[A-Z]*`),
	rules.Blank(`(SYS|SER)[A-Z]*\s+(CORP[A-Z]*|LLC)`),
	rules.Blank(`(^|\s)AGENTS?(\s|$)`),
	rules.Blank(`BUSINESS FILINGS`),
)

// BlankBoilerplateNames nulls registered-agent and filing-service names.
var BlankBoilerplateNames = apply(boilerplateSet)

// A lone letter between two multi-letter name tokens is a middle initial.
// Both neighbors must have at least two letters so a genuine one-letter
// given or family name is never removed.
var middleInitialSet = rules.NewSet(
	rules.New(`([A-Z][A-Z]+) [A-Z] ([A-Z][A-Z]+)`, "$1 $2").
		Left(rules.StartOrSpace).
		Right(rules.SpaceOrEnd),
)

// ElideMiddleInitials collapses "ERIC R HUNTLEY" to "ERIC HUNTLEY".
var ElideMiddleInitials = apply(middleInitialSet)

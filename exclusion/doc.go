/*
Package exclusion models the untrackable-time rules of a time tracker:
weekends, lunch breaks, holidays and single-day overrides, declared one
rule per configuration line.

# Rule syntax

	exc <weekday> <block> [<block> ...]
	exc day on <date>
	exc day off <date>

A block is one of

	<HH:MM:SS            from start of day to this time
	>HH:MM:SS            from this time to end of day
	HH:MM:SS-HH:MM:SS    an explicit sub-range of the day

# Usage

Parse a rule once, then project it onto as many reporting windows as
needed:

	rule, err := exclusion.Parse("exc monday 12:00:00-13:00:00")
	if err != nil {
		log.Fatal(err)
	}
	ranges, err := rule.Ranges(exclusion.Range{Start: from, End: to})

Parsing validates syntax only. Time blocks are decoded lazily during
expansion, so a rule can parse successfully and still fail with a
MalformedBlockError the first time a matching day is expanded. Rules are
immutable after Parse and safe for concurrent expansion.

Expanded ranges are half-open and are reported exactly as the rule
states them: overlapping blocks on the same day are all emitted, and
coalescing is left to the caller.
*/
package exclusion

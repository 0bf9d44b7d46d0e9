package exclusion

import (
	"fmt"
	"slices"
	"strings"

	"github.com/corvee/timetrack/internal/caldate"
)

// Marker is the leading token of every exclusion rule line.
const Marker = "exc"

// Rule is one parsed exclusion rule. It is immutable after Parse and
// safe for concurrent use.
type Rule struct {
	tokens   []string
	additive bool
}

// SyntaxError reports a rule line that matches none of the recognized
// grammars. It carries the full original line for diagnostics.
type SyntaxError struct {
	Line string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unrecognized exclusion syntax: '%s'", e.Line)
}

// MalformedBlockError reports a time block that could not be decoded
// during expansion.
type MalformedBlockError struct {
	Block string
}

func (e *MalformedBlockError) Error() string {
	return fmt.Sprintf("malformed time block '%s'", e.Block)
}

// Parse validates one configuration line and returns the rule it
// declares. Three forms are recognized:
//
//	exc day on <date>                  additive single-day override
//	exc day off <date>                 single-day exclusion
//	exc <weekday> <block> [<block>...] recurring weekday exclusion
//
// Validation is syntactic only: the date and block tokens are stored
// verbatim and decoded when the rule is expanded.
func Parse(line string) (*Rule, error) {
	tokens := strings.Fields(line)

	if len(tokens) >= 2 && tokens[0] == Marker {
		if len(tokens) == 4 && tokens[1] == "day" && tokens[2] == "on" {
			return &Rule{tokens: tokens, additive: true}, nil
		}
		if len(tokens) == 4 && tokens[1] == "day" && tokens[2] == "off" {
			return &Rule{tokens: tokens}, nil
		}
		if _, ok := caldate.Weekday(tokens[1]); ok && len(tokens) >= 3 {
			return &Rule{tokens: tokens}, nil
		}
	}

	return nil, &SyntaxError{Line: line}
}

// Tokens returns a copy of the rule's whitespace-split tokens,
// marker first.
func (r *Rule) Tokens() []string {
	return slices.Clone(r.tokens)
}

// Additive reports whether the rule re-includes time rather than
// excluding it. Only the "day on" form is additive.
func (r *Rule) Additive() bool {
	return r.additive
}

// Serialize reconstructs the rule's configuration line. Parsing the
// result yields a token-wise identical rule.
func (r *Rule) Serialize() string {
	return strings.Join(r.tokens, " ")
}

// Dump returns a labeled, newline-terminated diagnostic form. It is not
// round-trippable; use Serialize for persistence.
func (r *Rule) Dump() string {
	return fmt.Sprintf("Exclusion %s\n", strings.Join(r.tokens, " "))
}

// Ranges projects the rule onto bound and returns every range the rule
// covers inside it. Day override rules yield at most one full-day
// range. Weekday rules yield one range per block per matched day, in
// day then block order, without merging overlaps. A nil slice and nil
// error mean the rule touches nothing in bound.
//
// Block tokens are decoded here, not at parse time, so a weekday rule
// with a malformed block fails with a MalformedBlockError on the first
// bound that contains a matching day. On any error no ranges are
// returned.
func (r *Rule) Ranges(bound Range) ([]Range, error) {
	if r.tokens[1] == "day" && (r.tokens[2] == "on" || r.tokens[2] == "off") {
		day, err := caldate.ParseDay(r.tokens[3])
		if err != nil {
			return nil, fmt.Errorf("exclusion '%s': %w", r.Serialize(), err)
		}
		dayRange := Range{Start: day, End: caldate.NextDay(day)}
		if bound.Overlaps(dayRange) {
			return []Range{dayRange}, nil
		}
		return nil, nil
	}

	if target, ok := caldate.Weekday(r.tokens[1]); ok {
		var results []Range
		for cursor := bound.Start; cursor.Before(bound.End); cursor = caldate.NextDay(cursor) {
			// Each walked day is matched on its own weekday, so a
			// partial first or last day inside bound still counts.
			if cursor.Weekday() != target {
				continue
			}
			dayStart := caldate.DayOf(cursor)
			dayEnd := caldate.NextDay(cursor)
			for _, block := range r.tokens[2:] {
				blockRange, err := rangeFromBlock(block, dayStart, dayEnd)
				if err != nil {
					return nil, err
				}
				results = append(results, blockRange)
			}
		}
		return results, nil
	}

	return nil, nil
}

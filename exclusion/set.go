package exclusion

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/samber/mo"
)

// Set holds the exclusion rules of one configuration, in declaration
// order. Like its rules, a Set is immutable after ParseSet.
type Set struct {
	rules  []*Rule
	logger *slog.Logger
}

// SetOption configures a Set during ParseSet.
type SetOption func(*Set)

// WithLogger makes the set log each accepted rule at debug level. A nil
// logger keeps the set silent, which is also the default.
func WithLogger(logger *slog.Logger) SetOption {
	return func(s *Set) {
		s.logger = logger
	}
}

// ParseSet parses one configuration's rule lines. Blank lines are
// skipped. Parsing stops at the first bad line; configuration load is
// all-or-nothing, so no Set is returned alongside an error.
func ParseSet(lines []string, opts ...SetOption) (*Set, error) {
	s := &Set{}
	for _, opt := range opts {
		opt(s)
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rule, err := Parse(line)
		if err != nil {
			return nil, err
		}
		if s.logger != nil {
			s.logger.Debug("parsed exclusion rule",
				"rule", rule.Serialize(),
				"additive", rule.Additive())
		}
		s.rules = append(s.rules, rule)
	}
	return s, nil
}

// Rules returns the set's rules in declaration order.
func (s *Set) Rules() []*Rule {
	return slices.Clone(s.rules)
}

// Find returns the first rule whose serialized form equals line.
func (s *Set) Find(line string) mo.Option[*Rule] {
	for _, rule := range s.rules {
		if rule.Serialize() == line {
			return mo.Some(rule)
		}
	}
	return mo.None[*Rule]()
}

// Ranges expands every subtractive rule against bound and concatenates
// the results in declaration order. Overlaps between rules are kept;
// coalescing, and applying the additive overrides from Additive, is the
// caller's concern. The first expansion error fails the whole call.
func (s *Set) Ranges(bound Range) ([]Range, error) {
	return s.expand(bound, false)
}

// Additive expands the additive day-on overrides against bound.
func (s *Set) Additive(bound Range) ([]Range, error) {
	return s.expand(bound, true)
}

func (s *Set) expand(bound Range, additive bool) ([]Range, error) {
	var results []Range
	for _, rule := range s.rules {
		if rule.Additive() != additive {
			continue
		}
		ranges, err := rule.Ranges(bound)
		if err != nil {
			return nil, err
		}
		results = append(results, ranges...)
	}
	return results, nil
}

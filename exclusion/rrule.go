package exclusion

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/corvee/timetrack/internal/caldate"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// RRule expresses a weekday rule as an RFC 5545 WEEKLY recurrence
// anchored at dtstart, for handing to iCalendar-native schedulers. The
// occurrences are the midnights of the matched days; the rule's time
// blocks are not represented. Day override rules have no recurrence and
// return an error.
func (r *Rule) RRule(dtstart time.Time) (*rrule.RRule, error) {
	target, ok := caldate.Weekday(r.tokens[1])
	if !ok {
		return nil, fmt.Errorf("exclusion '%s' has no recurrence", r.Serialize())
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rruleWeekdays[target]},
		Dtstart:   caldate.DayOf(dtstart),
	})
	if err != nil {
		return nil, fmt.Errorf("building recurrence for '%s': %w", r.Serialize(), err)
	}
	return rule, nil
}

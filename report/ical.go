// Package report renders expanded exclusion ranges into interchange
// formats: iCalendar for calendar clients and XML for timesheet tools.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/corvee/timetrack/exclusion"
)

const productID = "-//corvee//timetrack//EN"

// ICalendar renders every range the rules cover inside bound as a
// VCALENDAR, one VEVENT per range. Events are marked TRANSP:TRANSPARENT
// so imported exclusions never register as busy time, and each carries
// its rule's serialized form as the summary. The first expansion error
// fails the whole document.
func ICalendar(rules []*exclusion.Rule, bound exclusion.Range) (string, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, rule := range rules {
		ranges, err := rule.Ranges(bound)
		if err != nil {
			return "", fmt.Errorf("expanding '%s': %w", rule.Serialize(), err)
		}
		for _, rng := range ranges {
			event := ical.NewEvent()
			event.Props.SetText(ical.PropUID, uuid.NewString())
			event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now())
			event.Props.SetDateTime(ical.PropDateTimeStart, rng.Start)
			event.Props.SetDateTime(ical.PropDateTimeEnd, rng.End)
			event.Props.SetText(ical.PropSummary, rule.Serialize())
			event.Props.SetText(ical.PropTransparency, "TRANSPARENT")
			cal.Children = append(cal.Children, event.Component)
		}
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return "", fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.String(), nil
}

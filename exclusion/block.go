package exclusion

import (
	"time"

	"github.com/corvee/timetrack/internal/caldate"
	"github.com/corvee/timetrack/internal/scan"
)

// rangeFromBlock decodes one time-block token against a day's bounds.
//
//	<HH:MM:SS          [dayStart, day at HH:MM:SS)
//	>HH:MM:SS          [day at HH:MM:SS, dayEnd)
//	HH:MM:SS-HH:MM:SS  [day at first, day at second)
//
// The field values are not range-checked; the scanner only validates
// the shape of each triple.
func rangeFromBlock(block string, dayStart, dayEnd time.Time) (Range, error) {
	s := scan.New(block)

	if s.Skip('<') {
		if hh, mm, ss, ok := s.GetHMS(); ok {
			return Range{Start: dayStart, End: caldate.AtTime(dayStart, hh, mm, ss)}, nil
		}
		return Range{}, &MalformedBlockError{Block: block}
	}

	if s.Skip('>') {
		if hh, mm, ss, ok := s.GetHMS(); ok {
			return Range{Start: caldate.AtTime(dayStart, hh, mm, ss), End: dayEnd}, nil
		}
		return Range{}, &MalformedBlockError{Block: block}
	}

	hh1, mm1, ss1, ok := s.GetHMS()
	if ok && s.Skip('-') {
		if hh2, mm2, ss2, ok := s.GetHMS(); ok {
			return Range{
				Start: caldate.AtTime(dayStart, hh1, mm1, ss1),
				End:   caldate.AtTime(dayStart, hh2, mm2, ss2),
			}, nil
		}
	}

	return Range{}, &MalformedBlockError{Block: block}
}

package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkip(t *testing.T) {
	s := New(">17:00:00")
	assert.False(t, s.Skip('<'))
	assert.True(t, s.Skip('>'))
	assert.False(t, s.Skip('>'))
}

func TestGetHMS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		hh    int
		mm    int
		ss    int
		ok    bool
	}{
		{name: "plain", input: "12:34:56", hh: 12, mm: 34, ss: 56, ok: true},
		{name: "single digit hour", input: "9:00:30", hh: 9, mm: 0, ss: 30, ok: true},
		{name: "out of range values accepted", input: "25:99:99", hh: 25, mm: 99, ss: 99, ok: true},
		{name: "trailing text ignored", input: "08:30:00-", hh: 8, mm: 30, ss: 0, ok: true},
		{name: "not a time", input: "notatime", ok: false},
		{name: "missing seconds", input: "12:34", ok: false},
		{name: "single digit minute", input: "12:3:45", ok: false},
		{name: "wrong separator", input: "12-34-56", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.input)
			hh, mm, ss, ok := s.GetHMS()
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.hh, hh)
				assert.Equal(t, tc.mm, mm)
				assert.Equal(t, tc.ss, ss)
			}
		})
	}
}

func TestGetHMSRestoresCursorOnFailure(t *testing.T) {
	s := New("12:34")
	_, _, _, ok := s.GetHMS()
	assert.False(t, ok)

	// The cursor must be back at the start, so a fresh read sees '1'.
	assert.True(t, s.Skip('1'))
}

func TestEOS(t *testing.T) {
	s := New("<09:00:00")
	assert.False(t, s.EOS())
	s.Skip('<')
	s.GetHMS()
	assert.True(t, s.EOS())
}

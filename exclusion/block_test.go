package exclusion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeFromBlock(t *testing.T) {
	dayStart := day(2024, 12, 6)
	dayEnd := day(2024, 12, 7)

	tests := []struct {
		name    string
		block   string
		want    Range
		wantErr bool
	}{
		{
			name:  "until",
			block: "<09:00:00",
			want:  Range{Start: dayStart, End: at(2024, 12, 6, 9, 0, 0)},
		},
		{
			name:  "from",
			block: ">17:00:00",
			want:  Range{Start: at(2024, 12, 6, 17, 0, 0), End: dayEnd},
		},
		{
			name:  "explicit range",
			block: "12:00:00-13:00:00",
			want:  Range{Start: at(2024, 12, 6, 12, 0, 0), End: at(2024, 12, 6, 13, 0, 0)},
		},
		{
			name:  "single digit hour",
			block: "9:00:00-9:30:00",
			want:  Range{Start: at(2024, 12, 6, 9, 0, 0), End: at(2024, 12, 6, 9, 30, 0)},
		},
		{name: "not a time", block: "notatime", wantErr: true},
		{name: "bad leading character", block: "=12:00:00", wantErr: true},
		{name: "until with bad time", block: "<12:xx:00", wantErr: true},
		{name: "from with bad time", block: ">12", wantErr: true},
		{name: "missing second half", block: "12:00:00-", wantErr: true},
		{name: "missing separator", block: "12:00:00 13:00:00", wantErr: true},
		{name: "empty", block: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rangeFromBlock(tc.block, dayStart, dayEnd)
			if tc.wantErr {
				require.Error(t, err)
				var blockErr *MalformedBlockError
				require.ErrorAs(t, err, &blockErr)
				assert.Equal(t, tc.block, blockErr.Block)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}
}

func TestRangeFromBlockNoValueValidation(t *testing.T) {
	dayStart := day(2024, 12, 6)
	dayEnd := day(2024, 12, 7)

	// Field values are not range-checked; out-of-range triples are
	// normalized by the calendar arithmetic.
	got, err := rangeFromBlock(">24:00:00", dayStart, dayEnd)
	require.NoError(t, err)
	assert.True(t, got.Start.Equal(dayEnd))
	assert.Equal(t, time.Duration(0), got.Duration())
}

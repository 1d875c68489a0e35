package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/kstudio-agenda/pkg/types"
)

func ts(s string) types.TimeString {
	return types.MustTimeString(s)
}

func toStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestGenerateSlots_MorningTwoHours(t *testing.T) {
	slots, err := GenerateSlots(ts("09:30"), ts("13:00"), 120, 15)
	require.NoError(t, err)

	// 11:00 + 2h00 заканчивается ровно в 13:00, следующий старт 11:15 закончился бы в 13:15
	assert.Equal(t, []string{"09:30", "09:45", "10:00", "10:15", "10:30", "10:45", "11:00"}, toStrings(slots))

	last := slots[len(slots)-1]
	assert.Equal(t, ts("13:00").Minutes(), last.Minutes()+120)

	next, err := last.AddMinutes(15)
	require.NoError(t, err)
	assert.Equal(t, "11:15", next.String())
	assert.Greater(t, next.Minutes()+120, ts("13:00").Minutes())
}

func TestGenerateSlots_DurationLongerThanSession(t *testing.T) {
	slots, err := GenerateSlots(ts("09:30"), ts("13:00"), 300, 15)
	require.NoError(t, err)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_ExactFit(t *testing.T) {
	slots, err := GenerateSlots(ts("09:30"), ts("13:00"), 210, 15)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:30"}, toStrings(slots))
}

func TestGenerateSlots_InvalidStep(t *testing.T) {
	for _, step := range []int{0, -15} {
		_, err := GenerateSlots(ts("09:30"), ts("13:00"), 120, step)
		assert.ErrorIs(t, err, ErrInvalidStep)
	}
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	_, err := GenerateSlots(ts("09:30"), ts("13:00"), 0, 15)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestGenerateSlots_Properties(t *testing.T) {
	sessions := []struct{ start, end string }{
		{"09:30", "13:00"},
		{"14:30", "19:00"},
		{"00:00", "23:59"},
	}
	durations := []int{40, 60, 120, 135, 165, 195}
	steps := []int{5, 15, 30, 45}

	for _, s := range sessions {
		start, end := ts(s.start), ts(s.end)
		for _, d := range durations {
			for _, step := range steps {
				slots, err := GenerateSlots(start, end, d, step)
				require.NoError(t, err)

				for i, slot := range slots {
					require.False(t, slot.IsBefore(start), "slot %s before session start", slot)
					require.LessOrEqual(t, slot.Minutes()+d, end.Minutes(), "slot %s crosses session end", slot)
					if i > 0 {
						require.Equal(t, step, slot.Minutes()-slots[i-1].Minutes())
					}
				}

				// следующий слот уже не помещается
				next := start.Minutes() + len(slots)*step
				require.Greater(t, next+d, end.Minutes())
			}
		}
	}
}

func TestGenerateSlots_Restartable(t *testing.T) {
	first, err := GenerateSlots(ts("14:30"), ts("19:00"), 165, 15)
	require.NoError(t, err)
	second, err := GenerateSlots(ts("14:30"), ts("19:00"), 165, 15)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

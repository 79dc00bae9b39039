package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCandidates(t *testing.T) {
	cases := []struct {
		name     string
		working  Interval
		duration int
		buffer   int
		want     []string // времена начала
	}{
		{
			// понедельник 09:00-12:00, услуга 30 минут без буфера:
			// последний валидный старт 11:30 (11:30+30=12:00 <= 12:00)
			name:     "30min no buffer",
			working:  iv("09:00", "12:00"),
			duration: 30,
			want:     []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:     "buffer changes stride",
			working:  iv("09:00", "12:00"),
			duration: 30,
			buffer:   15,
			want:     []string{"09:00", "09:45", "10:30", "11:15"},
		},
		{
			// 10:45+45=11:30 > 11:00, слот не генерируется даже частично
			name:     "no spill past closing",
			working:  iv("09:00", "11:00"),
			duration: 45,
			want:     []string{"09:00", "09:45"},
		},
		{
			name:     "exact single fit",
			working:  iv("09:00", "09:30"),
			duration: 30,
			want:     []string{"09:00"},
		},
		{
			name:     "duration longer than day",
			working:  iv("09:00", "10:00"),
			duration: 90,
			want:     []string{},
		},
		{
			name:     "invalid working interval",
			working:  iv("12:00", "09:00"),
			duration: 30,
			want:     []string{},
		},
		{
			name:     "zero duration",
			working:  iv("09:00", "12:00"),
			duration: 0,
			want:     []string{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := GenerateCandidates(c.working, c.duration, c.buffer)

			starts := make([]string, 0, len(got))
			for _, g := range got {
				starts = append(starts, g.Start.String())
			}
			assert.Equal(t, c.want, starts)

			// каждый кандидат целиком внутри рабочих часов и имеет точную длину
			for _, g := range got {
				assert.True(t, c.working.Contains(g), "candidate %s outside working hours", g)
				assert.Equal(t, c.duration, g.DurationMinutes())
			}
		})
	}
}

func TestGenerateCandidates_Ascending(t *testing.T) {
	got := GenerateCandidates(iv("08:00", "20:00"), 25, 5)
	require.NotEmpty(t, got)

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Start.IsBefore(got[i].Start),
			"candidates must be ordered ascending: %s before %s", got[i-1], got[i])
	}
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		input   string
		wantErr bool
	}{
		{input: "00:00"},
		{input: "09:30"},
		{input: "23:59"},
		{input: "24:00"},
		{input: "24:01", wantErr: true},
		{input: "25:00", wantErr: true},
		{input: "9:30", wantErr: true},
		{input: "09:60", wantErr: true},
		{input: "0930", wantErr: true},
		{input: "", wantErr: true},
		{input: "ab:cd", wantErr: true},
	}

	for _, c := range cases {
		ts, err := NewTimeStringFromString(c.input)
		if c.wantErr {
			assert.Error(t, err, "input=%q", c.input)
		} else {
			require.NoError(t, err, "input=%q", c.input)
			assert.Equal(t, c.input, ts.String())
		}
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	cases := []struct {
		start   string
		add     int
		want    string
		wantErr bool
	}{
		{start: "09:00", add: 30, want: "09:30"},
		{start: "09:45", add: 30, want: "10:15"},
		{start: "23:30", add: 30, want: "24:00"},
		{start: "23:31", add: 30, wantErr: true},
		{start: "09:00", add: 0, want: "09:00"},
		{start: "09:00", add: -60, want: "08:00"},
	}

	for _, c := range cases {
		start, err := NewTimeStringFromString(c.start)
		require.NoError(t, err)

		got, err := start.AddMinutes(c.add)
		if c.wantErr {
			assert.Error(t, err, "start=%s add=%d", c.start, c.add)
			continue
		}
		require.NoError(t, err, "start=%s add=%d", c.start, c.add)
		assert.Equal(t, c.want, got.String())
	}
}

func TestTimeString_Comparison(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, 1440, TimeString("24:00").Minutes())
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 11, 3, 14, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 7, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

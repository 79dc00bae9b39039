package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointment_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{from: StatusConfirmed, to: StatusCancelled, allowed: true},
		{from: StatusConfirmed, to: StatusCompleted, allowed: true},
		{from: StatusConfirmed, to: StatusNoShow, allowed: true},
		{from: StatusConfirmed, to: StatusRescheduled, allowed: true},
		{from: StatusPending, to: StatusCancelled, allowed: true},
		{from: StatusPending, to: StatusCompleted, allowed: true},
		{from: StatusPending, to: StatusNoShow, allowed: true},
		{from: StatusPending, to: StatusRescheduled, allowed: true},

		// терминальные статусы: переходы запрещены
		{from: StatusDraft, to: StatusConfirmed, allowed: false},
		{from: StatusDraft, to: StatusCancelled, allowed: false},
		{from: StatusCompleted, to: StatusCancelled, allowed: false},
		{from: StatusCancelled, to: StatusConfirmed, allowed: false},
		{from: StatusRescheduled, to: StatusConfirmed, allowed: false},
		{from: StatusNoShow, to: StatusCompleted, allowed: false},

		{from: StatusConfirmed, to: StatusPending, allowed: false},
		{from: StatusPending, to: StatusConfirmed, allowed: false},
	}

	for _, c := range cases {
		a := &Appointment{Status: c.from}
		assert.Equal(t, c.allowed, a.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestAppointment_IsBlocking(t *testing.T) {
	blocking := []AppointmentStatus{
		StatusDraft, StatusPending, StatusConfirmed, StatusCompleted, StatusNoShow,
	}
	for _, s := range blocking {
		a := &Appointment{Status: s}
		assert.True(t, a.IsBlocking(), "status=%s", s)
	}

	for _, s := range []AppointmentStatus{StatusCancelled, StatusRescheduled} {
		a := &Appointment{Status: s}
		assert.False(t, a.IsBlocking(), "status=%s", s)
	}
}

func TestAppointment_IsTerminal(t *testing.T) {
	terminal := []AppointmentStatus{
		StatusDraft, StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled,
	}
	for _, s := range terminal {
		a := &Appointment{Status: s}
		assert.True(t, a.IsTerminal(), "status=%s", s)
	}

	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed} {
		a := &Appointment{Status: s}
		assert.False(t, a.IsTerminal(), "status=%s", s)
	}
}

func TestParseAppointmentStatus(t *testing.T) {
	status, err := ParseAppointmentStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseAppointmentStatus("in_progress")
	assert.Error(t, err)

	_, err = ParseAppointmentStatus("")
	assert.Error(t, err)
}

func TestParseInitialStatus(t *testing.T) {
	for _, s := range []string{"draft", "pending", "confirmed"} {
		status, err := ParseInitialStatus(s)
		require.NoError(t, err)
		assert.Equal(t, AppointmentStatus(s), status)
	}

	for _, s := range []string{"completed", "cancelled", "no_show", "rescheduled", "bogus"} {
		_, err := ParseInitialStatus(s)
		assert.Error(t, err, "status=%s", s)
	}
}

func TestParseCancelActor(t *testing.T) {
	actor, err := ParseCancelActor("client")
	require.NoError(t, err)
	assert.Equal(t, CancelledByClient, actor)

	actor, err = ParseCancelActor("professional")
	require.NoError(t, err)
	assert.Equal(t, CancelledByProfessional, actor)

	_, err = ParseCancelActor("admin")
	assert.Error(t, err)
}

func TestService_StrideMinutes(t *testing.T) {
	svc := &Service{DurationMinutes: 30, BufferMinutes: 10}
	assert.Equal(t, 40, svc.StrideMinutes())

	svc = &Service{DurationMinutes: 45}
	assert.Equal(t, 45, svc.StrideMinutes())
}

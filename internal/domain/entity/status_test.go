package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus(t *testing.T) {
	a := Appointment{Status: AppointmentStatusNew}
	assert.True(t, a.IsNew())
	assert.Equal(t, "Новый", a.StatusText())

	a.Confirm()
	assert.False(t, a.IsNew())
	assert.Equal(t, AppointmentStatusConfirmed, a.Status)
	assert.Equal(t, "Подтвержден", a.StatusText())

	a.Cancel()
	assert.Equal(t, AppointmentStatusCancelled, a.Status)
	assert.Equal(t, "Отменен", a.StatusText())
}

func TestAppointmentStatusTextUnknown(t *testing.T) {
	a := Appointment{Status: AppointmentStatus("weird")}
	assert.Equal(t, "weird", a.StatusText())
}

func TestAppointmentSpecialtyName(t *testing.T) {
	a := Appointment{}
	assert.Equal(t, "Не указана", a.SpecialtyName())

	a.Specialty = &Specialty{Name: "Педиатр"}
	assert.Equal(t, "Педиатр", a.SpecialtyName())
}

func TestMessageStatus(t *testing.T) {
	m := Message{Status: MessageStatusNew}
	assert.True(t, m.IsNew())
	assert.Equal(t, "Новый", m.StatusText())

	m.MarkRead()
	assert.False(t, m.IsNew())
	assert.Equal(t, MessageStatusRead, m.Status)
	assert.Equal(t, "Прочитано", m.StatusText())

	m.MarkReplied()
	assert.Equal(t, MessageStatusReplied, m.Status)
	assert.Equal(t, "Ответ отправлен", m.StatusText())
}

func TestMessageRepliedReachableFromNew(t *testing.T) {
	m := Message{Status: MessageStatusNew}
	m.MarkReplied()
	assert.Equal(t, MessageStatusReplied, m.Status)
}

func TestReviewFlags(t *testing.T) {
	r := Review{Rating: 4}
	assert.False(t, r.Approved)
	assert.False(t, r.Featured)

	r.Approve()
	assert.True(t, r.Approved)

	r.Feature()
	assert.True(t, r.Featured)

	// Rejecting leaves the highlight flag untouched.
	r.Reject()
	assert.False(t, r.Approved)
	assert.True(t, r.Featured)

	r.Unfeature()
	assert.False(t, r.Featured)

	assert.Equal(t, "★★★★☆", r.StarRating())
}

package sqlite

import (
	"time"

	"github.com/zjrosen/signup/internal/registration"
)

// AttemptModel is the row shape of the attempts table. Times are stored as
// Unix milliseconds.
type AttemptModel struct {
	ID         string
	Email      string
	FullName   string
	Status     string
	StatusCode int
	Detail     *string // nullable
	StartedAt  int64
	FinishedAt int64
}

func toAttemptModel(a registration.Attempt) AttemptModel {
	m := AttemptModel{
		ID:         a.ID,
		Email:      a.Email,
		FullName:   a.FullName,
		Status:     string(a.Status),
		StatusCode: a.StatusCode,
		StartedAt:  a.StartedAt.UnixMilli(),
		FinishedAt: a.FinishedAt.UnixMilli(),
	}
	if a.Detail != "" {
		d := a.Detail
		m.Detail = &d
	}
	return m
}

func (m AttemptModel) toAttempt() registration.Attempt {
	a := registration.Attempt{
		ID:         m.ID,
		Email:      m.Email,
		FullName:   m.FullName,
		Status:     registration.AttemptStatus(m.Status),
		StatusCode: m.StatusCode,
		StartedAt:  time.UnixMilli(m.StartedAt),
		FinishedAt: time.UnixMilli(m.FinishedAt),
	}
	if m.Detail != nil {
		a.Detail = *m.Detail
	}
	return a
}

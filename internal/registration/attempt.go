package registration

import "time"

// AttemptStatus classifies a finished submission.
type AttemptStatus string

const (
	StatusSucceeded   AttemptStatus = "succeeded"
	StatusRejected    AttemptStatus = "rejected"
	StatusUnavailable AttemptStatus = "unavailable"
	StatusCancelled   AttemptStatus = "cancelled"
)

// Attempt is a journal entry for one submission. It never holds the password.
type Attempt struct {
	ID         string
	Email      string
	FullName   string
	Status     AttemptStatus
	StatusCode int
	Detail     string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns how long the call took.
func (a Attempt) Elapsed() time.Duration {
	return a.FinishedAt.Sub(a.StartedAt)
}

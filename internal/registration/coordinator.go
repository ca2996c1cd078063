package registration

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/signup/internal/form"
	"github.com/zjrosen/signup/internal/log"
)

const (
	// RootPath is where a successful registration navigates to.
	RootPath = "/"

	// DefaultTimeout bounds a single registration call.
	DefaultTimeout = 10 * time.Second

	// FailureMessage is shown when a rejection carries no detail.
	FailureMessage = "Registration failed. Please try again."

	// UnavailableMessage is shown when the service could not be reached.
	UnavailableMessage = "Service unavailable. Please try again later."
)

// ErrUnavailable wraps every failure to obtain a response from the service.
var ErrUnavailable = errors.New("registration service unavailable")

// Navigator moves the application to another route.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

// NavigateTo calls f.
func (f NavigatorFunc) NavigateTo(path string) { f(path) }

// Journal records finished attempts. Implementations must not store the password.
type Journal interface {
	Record(ctx context.Context, a Attempt) error
}

// Coordinator runs registration submissions. At most one submission is
// current; starting another supersedes it and its result is ignored.
//
// Begin and Resolve are called from the UI loop. Await blocks and is meant to
// run inside a tea.Cmd.
type Coordinator struct {
	registrar Registrar
	navigator Navigator
	journal   Journal
	timeout   time.Duration
	now       func() time.Time

	mu      sync.Mutex
	current *Submission
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithTimeout sets the per-call timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithJournal records every awaited submission.
func WithJournal(j Journal) Option {
	return func(c *Coordinator) { c.journal = j }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// NewCoordinator creates a coordinator calling reg and navigating with nav.
func NewCoordinator(reg Registrar, nav Navigator, opts ...Option) *Coordinator {
	c := &Coordinator{
		registrar: reg,
		navigator: nav,
		timeout:   DefaultTimeout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submission is one registration attempt. Its payload is captured when the
// submission begins; later form edits do not change it.
type Submission struct {
	ID        string
	Payload   Payload
	StartedAt time.Time

	c      *Coordinator
	ctx    context.Context
	cancel context.CancelFunc
}

// Outcome is what Await observed for a submission.
type Outcome struct {
	SubmissionID string
	Result       Result
	// Err is non-nil when no response was obtained. It wraps ErrUnavailable
	// or is context.Canceled when the submission was superseded or torn down.
	Err error
}

// Status classifies the outcome for the journal.
func (o Outcome) Status() AttemptStatus {
	switch {
	case errors.Is(o.Err, context.Canceled):
		return StatusCancelled
	case o.Err != nil:
		return StatusUnavailable
	case o.Result.Kind == KindSuccess:
		return StatusSucceeded
	default:
		return StatusRejected
	}
}

// Begin starts a new submission from the form state, cancelling any
// submission still in flight.
func (c *Coordinator) Begin(parent context.Context, s form.State) *Submission {
	ctx, cancel := context.WithCancel(parent)
	sub := &Submission{
		ID:        uuid.NewString(),
		Payload:   NewPayload(s),
		StartedAt: c.now(),
		c:         c,
		ctx:       ctx,
		cancel:    cancel,
	}

	c.mu.Lock()
	if prev := c.current; prev != nil {
		prev.cancel()
		log.Info(log.CatSubmit, "Superseded in-flight submission", "id", prev.ID, "by", sub.ID)
	}
	c.current = sub
	c.mu.Unlock()

	log.Info(log.CatSubmit, "Submission started", "id", sub.ID, "domain", log.EmailDomain(sub.Payload.Email))
	return sub
}

// Await performs the single outbound call for the submission and returns
// what happened. It never retries.
func (s *Submission) Await() Outcome {
	ctx, cancel := context.WithTimeout(s.ctx, s.c.timeout)
	defer cancel()

	res, err := s.c.registrar.Register(WithSubmissionID(ctx, s.ID), s.Payload)
	o := Outcome{SubmissionID: s.ID, Result: res}
	if err != nil {
		switch {
		case errors.Is(s.ctx.Err(), context.Canceled):
			o = Outcome{SubmissionID: s.ID, Err: context.Canceled}
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			o = Outcome{SubmissionID: s.ID, Err: fmt.Errorf("%w: no response within %s", ErrUnavailable, s.c.timeout)}
		default:
			o = Outcome{SubmissionID: s.ID, Err: fmt.Errorf("%w: %w", ErrUnavailable, err)}
		}
	}

	s.c.record(s, o)
	return o
}

// Cancel aborts the submission's call.
func (s *Submission) Cancel() {
	s.cancel()
}

// Action is what the UI should do with a resolved outcome.
type Action int

const (
	// ActionIgnore means the outcome belongs to a superseded or cancelled submission.
	ActionIgnore Action = iota
	// ActionNavigate means the registration succeeded and navigation happened.
	ActionNavigate
	// ActionShowError means Message should be shown in the error dialog.
	ActionShowError
)

// Resolution is the result of Resolve.
type Resolution struct {
	Action  Action
	Path    string
	Message string
	// Email is the address that was submitted, set with ActionNavigate.
	Email string
}

// Resolve interprets an outcome. Success navigates to RootPath; a rejection
// or an unreachable service yields the message for the error dialog. Outcomes
// of submissions that are no longer current are ignored.
func (c *Coordinator) Resolve(o Outcome) Resolution {
	c.mu.Lock()
	cur := c.current
	if cur == nil || cur.ID != o.SubmissionID {
		c.mu.Unlock()
		log.Debug(log.CatSubmit, "Ignoring stale outcome", "id", o.SubmissionID)
		return Resolution{Action: ActionIgnore}
	}
	cur.cancel()
	c.current = nil
	c.mu.Unlock()

	switch {
	case errors.Is(o.Err, context.Canceled):
		return Resolution{Action: ActionIgnore}
	case o.Err != nil:
		log.ErrorErr(log.CatSubmit, "Submission failed without a response", o.Err, "id", o.SubmissionID)
		return Resolution{Action: ActionShowError, Message: UnavailableMessage}
	case o.Result.Kind == KindSuccess:
		log.Info(log.CatSubmit, "Registration succeeded", "id", o.SubmissionID)
		c.navigator.NavigateTo(RootPath)
		return Resolution{Action: ActionNavigate, Path: RootPath, Email: cur.Payload.Email}
	default:
		msg := o.Result.Detail
		if msg == "" {
			msg = FailureMessage
		}
		log.Warn(log.CatSubmit, "Registration rejected", "id", o.SubmissionID, "status", o.Result.Status)
		return Resolution{Action: ActionShowError, Message: msg}
	}
}

// Cancel tears down the in-flight submission, if any. Its outcome will be ignored.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		c.current.cancel()
		log.Info(log.CatSubmit, "Cancelled in-flight submission", "id", c.current.ID)
		c.current = nil
	}
}

// InFlight reports whether a submission is awaiting resolution.
func (c *Coordinator) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

func (c *Coordinator) record(s *Submission, o Outcome) {
	if c.journal == nil {
		return
	}
	a := Attempt{
		ID:         s.ID,
		Email:      s.Payload.Email,
		FullName:   s.Payload.FullName,
		Status:     o.Status(),
		StatusCode: o.Result.Status,
		Detail:     o.Result.Detail,
		StartedAt:  s.StartedAt,
		FinishedAt: c.now(),
	}
	if o.Err != nil {
		a.Detail = o.Err.Error()
	}

	// The submission context may already be cancelled; the journal write is
	// independent of it.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.journal.Record(ctx, a); err != nil {
		log.ErrorErr(log.CatDB, "Recording attempt failed", err, "id", s.ID)
	}
}

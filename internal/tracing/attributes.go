package tracing

// Span attribute keys used by the registration client.
const (
	AttrSubmissionID = "registration.submission_id"
	AttrEmailDomain  = "registration.email_domain"
	AttrOutcome      = "registration.outcome"
	AttrStatusCode   = "http.status_code"
)

// SpanRegister is the name of the span around a registration request.
const SpanRegister = "registration.register"

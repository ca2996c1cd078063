package registration

import "net/http"

// Kind tags a Result.
type Kind int

const (
	KindSuccess Kind = iota
	KindFailure
)

func (k Kind) String() string {
	if k == KindSuccess {
		return "success"
	}
	return "failure"
}

// Result is the service's answer to a registration request. Only a 200
// response is a success; Detail is the user-facing reason for a failure and
// may be empty when the service did not provide one.
type Result struct {
	Kind   Kind
	Status int
	Detail string
}

// Succeeded returns a success result.
func Succeeded(status int) Result {
	return Result{Kind: KindSuccess, Status: status}
}

// Failed returns a failure result carrying the service's detail message.
func Failed(status int, detail string) Result {
	return Result{Kind: KindFailure, Status: status, Detail: detail}
}

// FromStatus classifies a raw status code.
func FromStatus(status int, detail string) Result {
	if status == http.StatusOK {
		return Succeeded(status)
	}
	return Failed(status, detail)
}

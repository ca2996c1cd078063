package form

import "fmt"

// GatePolicy decides which fields must be satisfied before submission.
type GatePolicy int

const (
	// PolicyEager enables submission once every value is non-empty.
	// Validity flags are not consulted; helper text is advisory only.
	PolicyEager GatePolicy = iota
	// PolicyStrict enables submission only when every field is valid.
	PolicyStrict
)

// ParseGatePolicy maps a config string to a GatePolicy.
func ParseGatePolicy(s string) (GatePolicy, error) {
	switch s {
	case "", "eager":
		return PolicyEager, nil
	case "strict":
		return PolicyStrict, nil
	default:
		return PolicyEager, fmt.Errorf("unknown gate policy %q (want eager or strict)", s)
	}
}

func (p GatePolicy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "eager"
}

// Gate derives whether the submit action is enabled.
type Gate struct {
	Policy GatePolicy
}

// IsEnabled reports whether s may be submitted under the gate's policy.
func (g Gate) IsEnabled(s State) bool {
	if g.Policy == PolicyStrict {
		return s.AllValid()
	}
	return s.AllFilled()
}

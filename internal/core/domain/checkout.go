package domain

import "fmt"

// CheckoutState is the lifecycle of a single checkout attempt.
type CheckoutState string

const (
	CheckoutIdle      CheckoutState = "IDLE"
	CheckoutPriced    CheckoutState = "PRICED"
	CheckoutCommitted CheckoutState = "COMMITTED"
	CheckoutAborted   CheckoutState = "ABORTED"
)

var checkoutTransitions = map[CheckoutState][]CheckoutState{
	CheckoutIdle:   {CheckoutPriced, CheckoutAborted},
	CheckoutPriced: {CheckoutCommitted, CheckoutAborted},
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s CheckoutState) CanTransitionTo(next CheckoutState) bool {
	for _, allowed := range checkoutTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s CheckoutState) IsTerminal() bool {
	return len(checkoutTransitions[s]) == 0
}

// Advance moves s to next or reports an illegal transition.
func (s *CheckoutState) Advance(next CheckoutState) error {
	if !s.CanTransitionTo(next) {
		return fmt.Errorf("illegal checkout transition %s -> %s", *s, next)
	}
	*s = next
	return nil
}

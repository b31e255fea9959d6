package reconcile

import (
	"fmt"

	"vauxly/internal/conversation"
	"vauxly/internal/predictions"
)

// Accumulator pairs two independently-completing job results into one
// bundle. Batches are held as raw payload bytes and only decoded once both
// slots are filled, so a malformed first batch surfaces on the completing
// submission and never poisons a later pair.
//
// Completion order determines speaker assignment: slot one is the customer
// stream, slot two the representative stream. Not safe for concurrent use;
// construct one Accumulator per in-flight call.
type Accumulator struct {
	slot1 []byte
	slot2 []byte
	have1 bool
	have2 bool
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Pending reports how many batches are currently held.
func (a *Accumulator) Pending() int {
	n := 0
	if a.have1 {
		n++
	}
	if a.have2 {
		n++
	}
	return n
}

// Reset discards any held batches.
func (a *Accumulator) Reset() {
	a.slot1, a.slot2 = nil, nil
	a.have1, a.have2 = false, false
}

// Submit stores a raw job-result payload. The first submission fills the
// customer slot and returns (nil, nil); the second fills the representative
// slot and produces the merged bundle. Both slots are cleared after a bundle
// is produced, successfully or not, so a failed pair never leaks into the
// next one.
func (a *Accumulator) Submit(raw []byte) (*conversation.Bundle, error) {
	switch {
	case !a.have1:
		a.slot1 = append([]byte(nil), raw...)
		a.have1 = true
		return nil, nil
	case !a.have2:
		a.slot2 = append([]byte(nil), raw...)
		a.have2 = true
	}

	defer a.Reset()

	customer, err := predictions.Decode(a.slot1)
	if err != nil {
		return nil, fmt.Errorf("%w: customer batch: %w", ErrReconciliation, err)
	}
	rep, err := predictions.Decode(a.slot2)
	if err != nil {
		return nil, fmt.Errorf("%w: representative batch: %w", ErrReconciliation, err)
	}

	return CombineLabeled(customer, rep), nil
}

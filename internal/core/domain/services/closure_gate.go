package services

import (
	"fmt"

	"tourdispatch/internal/core/domain/model/tour"
)

// ProofSet holds the order ids known to the proof registry.
type ProofSet struct {
	delivered map[string]struct{}
	returns   map[string]struct{}
}

func NewProofSet(withProofOfDelivery, withReturnsRecord []string) ProofSet {
	return ProofSet{
		delivered: toSet(withProofOfDelivery),
		returns:   toSet(withReturnsRecord),
	}
}

func (p ProofSet) HasProofOfDelivery(orderID string) bool {
	_, ok := p.delivered[orderID]
	return ok
}

func (p ProofSet) HasReturnsRecord(orderID string) bool {
	_, ok := p.returns[orderID]
	return ok
}

// ClosureGate decides whether a tour may be closed. Checks run in a fixed
// order and the first failing one is reported with every offending order:
//  1. all stops delivered
//  2. all stops have a proof of delivery
//  3. when the tour includes returns, all stops have a returns record
type ClosureGate struct{}

func NewClosureGate() ClosureGate {
	return ClosureGate{}
}

// CheckStatuses checks that the tour can be closed at all and runs the first
// check. It needs no registry lookup.
func (ClosureGate) CheckStatuses(t *tour.Tour) error {
	if t.IsClosed() {
		return tour.Reject(tour.ReasonTourClosed, "tour "+t.Key().String()+" is already closed")
	}
	if !t.IsValidated() {
		return tour.Reject(tour.ReasonTourNotValidated, "tour "+t.Key().String()+" must be validated before closing")
	}
	if ids := t.UndeliveredOrders(); len(ids) > 0 {
		return tour.Reject(tour.ReasonStopsNotDelivered,
			fmt.Sprintf("%d of %d stops are not delivered", len(ids), len(t.OrderIDs())), ids...)
	}
	return nil
}

// Check runs all three checks against proofs.
func (g ClosureGate) Check(t *tour.Tour, proofs ProofSet) error {
	if err := g.CheckStatuses(t); err != nil {
		return err
	}

	var missingPOD, missingReturns []string
	for _, id := range t.OrderIDs() {
		if !proofs.HasProofOfDelivery(id) {
			missingPOD = append(missingPOD, id)
		}
		if !proofs.HasReturnsRecord(id) {
			missingReturns = append(missingReturns, id)
		}
	}

	if len(missingPOD) > 0 {
		return tour.Reject(tour.ReasonMissingProofOfDelivery, "no signed proof of delivery", missingPOD...)
	}
	if t.IncludeReturns() && len(missingReturns) > 0 {
		return tour.Reject(tour.ReasonMissingReturnsRecord, "tour requires returns capture", missingReturns...)
	}
	return nil
}

// Close checks the gate and closes the tour. On failure the tour is unchanged.
func (g ClosureGate) Close(t *tour.Tour, proofs ProofSet) error {
	if err := g.Check(t, proofs); err != nil {
		return err
	}
	return t.Close()
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

package commands

import (
	"context"
	"log/slog"

	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/domain/services"
	"tourdispatch/internal/core/ports"
)

// CloseTourCommandHandler runs the closure gate. The status check needs no
// I/O and runs first; the proof registry is only asked when every stop is
// delivered, and the returns records only when the tour requires them.
// Registry failures reject the closure with ExternalLookupFailed.
type CloseTourCommandHandler struct {
	tx     tourTransaction
	proofs ports.ProofRegistry
	gate   services.ClosureGate
	events eventSink
}

func NewCloseTourCommandHandler(
	uowFactory UoWFactory,
	locker ports.TourLocker,
	proofs ports.ProofRegistry,
	gate services.ClosureGate,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CloseTourCommandHandler {
	return CloseTourCommandHandler{
		tx:     newTourTransaction(uowFactory, locker),
		proofs: proofs,
		gate:   gate,
		events: newEventSink(publisher, logger),
	}
}

func (h CloseTourCommandHandler) Handle(ctx context.Context, command CloseTourCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	t, err := h.tx.run(ctx, command.Key(), false, nil, func(ctx context.Context, _ UoW, t *tour.Tour) error {
		if err := h.gate.CheckStatuses(t); err != nil {
			return err
		}

		proofs, err := h.lookupProofs(ctx, t)
		if err != nil {
			return err
		}
		return h.gate.Close(t, proofs)
	})
	if err != nil {
		return err
	}

	event := newTourEvent(ports.TourClosed, t)
	event.Status = tour.Delivered.String()
	h.events.publish(ctx, event)
	return nil
}

func (h CloseTourCommandHandler) lookupProofs(ctx context.Context, t *tour.Tour) (services.ProofSet, error) {
	ids := t.OrderIDs()

	withPOD, err := h.proofs.WithProofOfDelivery(ctx, ids)
	if err != nil {
		return services.ProofSet{}, tour.RejectWithCause(tour.ReasonExternalLookupFailed, "proof of delivery lookup", err)
	}

	var withReturns []string
	if t.IncludeReturns() {
		withReturns, err = h.proofs.WithReturnsRecord(ctx, ids)
		if err != nil {
			return services.ProofSet{}, tour.RejectWithCause(tour.ReasonExternalLookupFailed, "returns record lookup", err)
		}
	}

	return services.NewProofSet(withPOD, withReturns), nil
}

package engine

import "go-petri-sim/internal/models"

// Fire applies an enabled transition's effects to the net's marking
// (spec §4.3). Precondition: the transition is enabled; callers must
// check IsEnabled first -- Fire does not call it.
//
// Per incident arc:
//   - Regular, place -> transition: decrement the place; an empty place
//     is reported as an InvariantError (the enablement precondition rules
//     that out).
//   - Regular, transition -> place: increment the place; a no-op if the
//     place is bounded and already at capacity (soft-cap policy, spec §9).
//   - Bidirectional: decrement then increment the connected place; net
//     change is zero but the sequence is preserved for future weighted
//     extensions.
//   - Inhibitor: no change.
func Fire(net *models.Net, t *models.Transition) error {
	for _, arc := range net.ArcsFor(t) {
		placeID, ok := arc.OtherEndpoint(t.ID)
		if !ok {
			continue
		}
		place := net.Places[placeID]
		if place == nil {
			return NewInvariantError(t.ID, "arc %s references unknown place %s", arc.ID, placeID)
		}

		switch arc.Kind {
		case models.ArcRegular:
			if arc.IsRegularConsuming(t.ID) {
				if place.Tokens <= 0 {
					return NewInvariantError(t.ID, "place %s would go below zero tokens", placeID)
				}
				place.DecrementTokens()
			} else if arc.IsRegularProducing(t.ID) {
				place.IncrementTokens()
			}
		case models.ArcBidirectional:
			if place.Tokens <= 0 {
				return NewInvariantError(t.ID, "place %s would go below zero tokens", placeID)
			}
			place.DecrementTokens()
			place.IncrementTokens()
		case models.ArcInhibitor:
			// no effect on firing
		}
	}
	return nil
}

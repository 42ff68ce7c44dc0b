package engine

import "go-petri-sim/internal/models"

// IsEnabled decides whether a transition is enabled under the net's
// current marking and arc semantics (spec §4.2). Pure: it never mutates
// the net.
//
// Rules, evaluated per incident arc:
//   - Inhibitor (place -> transition): disables the transition outright
//     if the place has any tokens; otherwise contributes no requirement.
//   - Bidirectional (place <-> transition): the connected place must have
//     at least one token; when oriented place -> transition it also adds
//     a required-consumption of 1 at that place.
//   - Regular, place -> transition: adds a required-consumption of 1 at
//     that place.
//   - Regular, transition -> place: no effect on enablement.
//
// After scanning every arc, each place named in the aggregate requirement
// map must hold at least its required token count. A transition with no
// token-requiring arcs is enabled.
func IsEnabled(net *models.Net, t *models.Transition) bool {
	requirements := make(map[string]int)

	for _, arc := range net.ArcsFor(t) {
		placeID, ok := arc.OtherEndpoint(t.ID)
		if !ok {
			continue
		}
		place := net.Places[placeID]
		if place == nil {
			return false
		}

		switch arc.Kind {
		case models.ArcInhibitor:
			if place.Tokens > 0 {
				return false
			}
		case models.ArcBidirectional:
			if place.Tokens < 1 {
				return false
			}
			if arc.IncomingID == placeID {
				requirements[placeID]++
			}
		case models.ArcRegular:
			if arc.IsRegularConsuming(t.ID) {
				requirements[placeID]++
			}
		}
	}

	for placeID, required := range requirements {
		place := net.Places[placeID]
		if place == nil || place.Tokens < required {
			return false
		}
	}

	return true
}

// EnabledTransitions returns every transition in the net that is
// currently enabled, in net.Transitions order.
func EnabledTransitions(net *models.Net) []*models.Transition {
	var enabled []*models.Transition
	for _, t := range net.Transitions {
		if IsEnabled(net, t) {
			enabled = append(enabled, t)
		}
	}
	return enabled
}

package models

import "fmt"

// Net is the top-level aggregate: places and arcs keyed by ID, and an
// ordered sequence of transitions. Order only matters for deterministic
// test reproducibility, never for semantics (spec §3). The HTTP step and
// resolve handlers build a fresh Net per request and discard it once the
// outbound DTO has been produced; the CLI reuses one Net across its
// steps, and the API registry keeps loaded Nets. The engine itself holds
// no state across calls.
type Net struct {
	Title       string
	Places      map[string]*Place
	Arcs        map[string]*Arc
	Transitions []*Transition
}

// NewNet creates an empty net.
func NewNet() *Net {
	return &Net{
		Places: make(map[string]*Place),
		Arcs:   make(map[string]*Arc),
	}
}

// AddPlace adds a place to the net.
func (n *Net) AddPlace(p *Place) {
	n.Places[p.ID] = p
}

// AddArc adds an arc to the net.
func (n *Net) AddArc(a *Arc) {
	n.Arcs[a.ID] = a
}

// AddTransition appends a transition to the net.
func (n *Net) AddTransition(t *Transition) {
	n.Transitions = append(n.Transitions, t)
}

// GetTransition returns the transition with the given ID, or nil.
func (n *Net) GetTransition(id string) *Transition {
	for _, t := range n.Transitions {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ArcsFor returns the arcs incident to the given transition, in the
// order the transition's ArcIDs list them.
func (n *Net) ArcsFor(t *Transition) []*Arc {
	arcs := make([]*Arc, 0, len(t.ArcIDs))
	for _, arcID := range t.ArcIDs {
		if a, ok := n.Arcs[arcID]; ok {
			arcs = append(arcs, a)
		}
	}
	return arcs
}

// TotalTokens sums tokens across every place.
func (n *Net) TotalTokens() int {
	total := 0
	for _, p := range n.Places {
		total += p.Tokens
	}
	return total
}

// Validate checks the net-wide structural invariants from spec §3: every
// arc endpoint resolves to an existing place/transition of the expected
// kind, every transition's ArcIDs resolve to an arc actually incident to
// it, and inhibitor arcs run place -> transition. This is the semantic
// half of structural validation; the JSON-Schema pass in the mapper
// package catches shape errors (missing fields, wrong types, unknown
// tags) before a Net value is even built.
func (n *Net) Validate() error {
	for _, p := range n.Places {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	for id, a := range n.Arcs {
		placeID, transitionID := a.IncomingID, a.OutgoingID
		switch a.Kind {
		case ArcRegular:
			if err := n.requireOnePlaceOneTransition(id, a.IncomingID, a.OutgoingID); err != nil {
				return err
			}
		case ArcInhibitor:
			if n.Places[placeID] == nil {
				return fmt.Errorf("arc %s: inhibitor source %s is not a place", id, placeID)
			}
			if n.GetTransition(transitionID) == nil {
				return fmt.Errorf("arc %s: inhibitor target %s is not a transition", id, transitionID)
			}
		case ArcBidirectional:
			if err := n.requireOnePlaceOneTransition(id, a.IncomingID, a.OutgoingID); err != nil {
				return err
			}
		default:
			return fmt.Errorf("arc %s: unrecognized arc type %q", id, a.Kind)
		}
	}

	for _, t := range n.Transitions {
		for _, arcID := range t.ArcIDs {
			a, ok := n.Arcs[arcID]
			if !ok {
				return fmt.Errorf("transition %s: arc %s does not exist", t.ID, arcID)
			}
			if !a.ConnectsTransition(t.ID) {
				return fmt.Errorf("transition %s: arc %s is not incident to it", t.ID, arcID)
			}
		}
	}

	return nil
}

// requireOnePlaceOneTransition checks that exactly one of the two arc
// endpoints is a known place and the other a known transition, in
// either order.
func (n *Net) requireOnePlaceOneTransition(arcID, endpointA, endpointB string) error {
	aIsPlace, bIsPlace := n.Places[endpointA] != nil, n.Places[endpointB] != nil
	aIsTransition, bIsTransition := n.GetTransition(endpointA) != nil, n.GetTransition(endpointB) != nil

	if aIsPlace && bIsTransition {
		return nil
	}
	if bIsPlace && aIsTransition {
		return nil
	}
	return fmt.Errorf("arc %s: endpoints %s, %s must be one place and one transition", arcID, endpointA, endpointB)
}

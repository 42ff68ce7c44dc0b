package mapper

import (
	"sort"

	"go-petri-sim/internal/engine"
	"go-petri-sim/internal/models"
)

// validKinds is the closed set of arc type tags the wire format
// recognizes (spec §4.1).
var validKinds = map[string]models.ArcKind{
	string(models.ArcRegular):       models.ArcRegular,
	string(models.ArcInhibitor):     models.ArcInhibitor,
	string(models.ArcBidirectional): models.ArcBidirectional,
}

// ToNet translates a wire DTO into the internal Model, validating
// structural consistency: every place/transition ID an arc or a
// transition's arcIds list references must exist, and every arc's type
// tag must be one of the recognized variants. Unknown tags and dangling
// IDs surface as *engine.StructuralError (spec §4.1, §7).
func ToNet(dto *NetDTO) (*models.Net, error) {
	net := models.NewNet()
	net.Title = dto.Title

	for _, pd := range dto.Places {
		if pd.ID == "" {
			return nil, engine.NewStructuralError("place has empty id")
		}
		if _, exists := net.Places[pd.ID]; exists {
			return nil, engine.NewStructuralError("duplicate place id %q", pd.ID)
		}
		p := &models.Place{
			ID:       pd.ID,
			Name:     pd.Name,
			Tokens:   pd.Tokens,
			Bounded:  pd.Bounded,
			Capacity: pd.Capacity,
			Position: pd.Position,
			Size:     pd.Size,
		}
		net.AddPlace(p)
	}

	for _, ad := range dto.Arcs {
		kind, ok := validKinds[ad.Type]
		if !ok {
			return nil, engine.NewStructuralError("arc %s: unrecognized arc type %q", ad.ID, ad.Type)
		}
		if ad.ID == "" {
			return nil, engine.NewStructuralError("arc has empty id")
		}
		if _, exists := net.Arcs[ad.ID]; exists {
			return nil, engine.NewStructuralError("duplicate arc id %q", ad.ID)
		}
		net.AddArc(&models.Arc{
			ID:         ad.ID,
			Kind:       kind,
			IncomingID: ad.IncomingID,
			OutgoingID: ad.OutgoingID,
		})
	}

	seenTransitions := make(map[string]bool)
	for _, td := range dto.Transitions {
		if td.ID == "" {
			return nil, engine.NewStructuralError("transition has empty id")
		}
		if seenTransitions[td.ID] {
			return nil, engine.NewStructuralError("duplicate transition id %q", td.ID)
		}
		seenTransitions[td.ID] = true
		net.AddTransition(&models.Transition{
			ID:       td.ID,
			Name:     td.Name,
			ArcIDs:   append([]string(nil), td.ArcIDs...),
			Position: td.Position,
			Size:     td.Size,
		})
	}

	if err := net.Validate(); err != nil {
		return nil, engine.NewStructuralError("%s", err.Error())
	}

	return net, nil
}

// FromNet translates the internal Model back into the wire DTO,
// preserving every place and transition attribute -- tokens, bounded,
// capacity, and the post-step Enabled flag -- and passing UI-only
// fields (position, size, title) through untouched (spec §4.1, §6).
func FromNet(net *models.Net) *NetDTO {
	dto := &NetDTO{Title: net.Title}

	dto.Places = make([]PlaceDTO, 0, len(net.Places))
	for _, id := range sortedPlaceIDs(net) {
		p := net.Places[id]
		dto.Places = append(dto.Places, PlaceDTO{
			ID:       p.ID,
			Name:     p.Name,
			Tokens:   p.Tokens,
			Bounded:  p.Bounded,
			Capacity: p.Capacity,
			Position: p.Position,
			Size:     p.Size,
		})
	}

	dto.Transitions = make([]TransitionDTO, 0, len(net.Transitions))
	for _, t := range net.Transitions {
		dto.Transitions = append(dto.Transitions, TransitionDTO{
			ID:       t.ID,
			Name:     t.Name,
			Enabled:  t.Enabled,
			ArcIDs:   append([]string(nil), t.ArcIDs...),
			Position: t.Position,
			Size:     t.Size,
		})
	}

	dto.Arcs = make([]ArcDTO, 0, len(net.Arcs))
	for _, id := range sortedArcIDs(net) {
		a := net.Arcs[id]
		dto.Arcs = append(dto.Arcs, ArcDTO{
			ID:         a.ID,
			Type:       string(a.Kind),
			IncomingID: a.IncomingID,
			OutgoingID: a.OutgoingID,
		})
	}

	return dto
}

// sortedPlaceIDs and sortedArcIDs give FromNet a deterministic output
// order despite Net's map-backed storage, so repeated calls against an
// unchanged net produce byte-identical JSON (useful for the deterministic
// pause idempotence property, spec §8).
func sortedPlaceIDs(net *models.Net) []string {
	ids := make([]string, 0, len(net.Places))
	for id := range net.Places {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedArcIDs(net *models.Net) []string {
	ids := make([]string, 0, len(net.Arcs))
	for id := range net.Arcs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

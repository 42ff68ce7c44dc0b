package engine

import "go-petri-sim/internal/models"

// ResolveConflict is the conflict-resolution entry point (spec §4.5): it
// fires a caller-chosen transition out of a paused deterministic-conflict
// state, then re-evaluates and applies the same mode policy as
// ProcessStep to the resulting enabled set.
//
// The caller contract is that selectedTransitionID was one of the
// transitions process_step reported enabled in the paused state; this
// implementation defensively re-checks that (spec §9 permits, and §7
// names a stale selection from a UI that lost sync as the one routine
// StructuralError a well-formed client can hit) rather than trusting it
// blindly.
func ResolveConflict(net *models.Net, selectedTransitionID string, deterministicMode bool, source Source) (*StepResult, error) {
	selected := net.GetTransition(selectedTransitionID)
	if selected == nil {
		return nil, NewStructuralError("selected_transition_id %q does not match any transition", selectedTransitionID)
	}
	if !IsEnabled(net, selected) {
		return nil, NewStructuralError("selected_transition_id %q is not currently enabled", selectedTransitionID)
	}

	for _, t := range net.Transitions {
		t.Enabled = false
	}

	if err := Fire(net, selected); err != nil {
		return nil, err
	}

	enabled := evaluateAll(net)

	switch {
	case len(enabled) == 0:
		setSingleEnabled(net, selected.ID)
		return &StepResult{Fired: selected}, nil

	case len(enabled) == 1:
		next := enabled[0]
		if err := Fire(net, next); err != nil {
			return nil, err
		}
		setSingleEnabled(net, next.ID)
		return &StepResult{Fired: next}, nil

	case deterministicMode:
		return &StepResult{Fired: selected, Paused: true}, nil

	default:
		next := enabled[source.Intn(len(enabled))]
		if err := Fire(net, next); err != nil {
			return nil, err
		}
		setSingleEnabled(net, next.ID)
		return &StepResult{Fired: next}, nil
	}
}

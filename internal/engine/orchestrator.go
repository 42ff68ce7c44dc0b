package engine

import "go-petri-sim/internal/models"

// StepResult summarizes the outcome of ProcessStep or ResolveConflict:
// which transition fired (nil if none did) and whether the net is now
// paused awaiting arbitration via ResolveConflict.
type StepResult struct {
	Fired  *models.Transition
	Paused bool
}

// ProcessStep is the step orchestrator's public entry point (spec §4.4).
// It evaluates every transition's enablement, stores the result on each
// transition's Enabled flag, and applies the mode policy:
//
//   - zero enabled: marking unchanged, every Enabled flag false.
//   - exactly one enabled: fire it; only that transition's Enabled is
//     left true.
//   - two or more enabled, deterministicMode: pause -- nothing fires,
//     every member of the enabled set keeps Enabled = true.
//   - two or more enabled, not deterministic: fire one member chosen
//     uniformly at random via source; only that transition's Enabled is
//     left true.
func ProcessStep(net *models.Net, deterministicMode bool, source Source) (*StepResult, error) {
	enabled := evaluateAll(net)

	switch {
	case len(enabled) == 0:
		return &StepResult{}, nil

	case len(enabled) == 1:
		t := enabled[0]
		if err := Fire(net, t); err != nil {
			return nil, err
		}
		setSingleEnabled(net, t.ID)
		return &StepResult{Fired: t}, nil

	case deterministicMode:
		return &StepResult{Paused: true}, nil

	default:
		t := enabled[source.Intn(len(enabled))]
		if err := Fire(net, t); err != nil {
			return nil, err
		}
		setSingleEnabled(net, t.ID)
		return &StepResult{Fired: t}, nil
	}
}

// evaluateAll sets Enabled on every transition and returns the ones that
// are enabled, in net.Transitions order.
func evaluateAll(net *models.Net) []*models.Transition {
	var enabled []*models.Transition
	for _, t := range net.Transitions {
		t.Enabled = IsEnabled(net, t)
		if t.Enabled {
			enabled = append(enabled, t)
		}
	}
	return enabled
}

// setSingleEnabled clears every transition's Enabled flag except the
// named one, which is set true.
func setSingleEnabled(net *models.Net, firedID string) {
	for _, t := range net.Transitions {
		t.Enabled = t.ID == firedID
	}
}

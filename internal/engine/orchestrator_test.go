package engine

import (
	"testing"

	"go-petri-sim/internal/models"
)

// fixedSource always returns the same index, for deterministic tests of
// the non-deterministic random-firing path.
type fixedSource struct{ idx int }

func (f fixedSource) Intn(n int) int { return f.idx % n }

func TestProcessStep_NoEnabledIsNoOp(t *testing.T) {
	net := twoPlaceNet(0, 0)
	result, err := ProcessStep(net, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Fired != nil || result.Paused {
		t.Errorf("expected an empty no-op result, got %+v", result)
	}
	if net.Places["p1"].Tokens != 0 || net.Places["p2"].Tokens != 0 {
		t.Error("expected marking to be unchanged")
	}
}

func TestProcessStep_SingleEnabledAutoFires(t *testing.T) {
	net := twoPlaceNet(1, 0)
	result, err := ProcessStep(net, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Fired == nil || result.Fired.ID != "t1" {
		t.Fatalf("expected t1 to fire, got %+v", result)
	}
	if net.Places["p2"].Tokens != 1 {
		t.Errorf("expected p2 to receive a token, got %d", net.Places["p2"].Tokens)
	}
	if !net.GetTransition("t1").Enabled {
		t.Error("expected t1.Enabled to mark it as the transition that just fired")
	}
}

func conflictNet() *models.Net {
	net := models.NewNet()
	net.AddPlace(models.NewPlace("p1", 1))
	net.AddPlace(models.NewPlace("p2", 0))
	net.AddPlace(models.NewPlace("p3", 0))
	net.AddArc(models.NewRegularArc("a1", "p1", "t1"))
	net.AddArc(models.NewRegularArc("a2", "t1", "p2"))
	net.AddArc(models.NewRegularArc("a3", "p1", "t2"))
	net.AddArc(models.NewRegularArc("a4", "t2", "p3"))
	net.AddTransition(models.NewTransition("t1", []string{"a1", "a2"}))
	net.AddTransition(models.NewTransition("t2", []string{"a3", "a4"}))
	return net
}

func TestProcessStep_DeterministicConflictPauses(t *testing.T) {
	net := conflictNet()
	result, err := ProcessStep(net, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Paused || result.Fired != nil {
		t.Fatalf("expected a pause with nothing fired, got %+v", result)
	}
	if !net.GetTransition("t1").Enabled || !net.GetTransition("t2").Enabled {
		t.Error("expected both conflicting transitions to remain marked enabled while paused")
	}
	if net.Places["p1"].Tokens != 1 {
		t.Error("expected marking to be unchanged while paused")
	}
}

func TestProcessStep_NonDeterministicFiresOneOfTheConflict(t *testing.T) {
	net := conflictNet()
	result, err := ProcessStep(net, false, fixedSource{idx: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Paused {
		t.Fatal("non-deterministic mode must never pause")
	}
	if result.Fired == nil || result.Fired.ID != "t2" {
		t.Fatalf("expected the source-selected transition t2 to fire, got %+v", result)
	}
	if net.Places["p1"].Tokens != 0 || net.Places["p3"].Tokens != 1 {
		t.Error("expected t2's effects to be applied")
	}
}

package engine

import "testing"

func TestResolveConflict_FiresSelectedAndSettles(t *testing.T) {
	net := conflictNet()

	stepResult, err := ProcessStep(net, true, nil)
	if err != nil {
		t.Fatalf("unexpected error on initial step: %v", err)
	}
	if !stepResult.Paused {
		t.Fatal("expected initial step to pause on conflict")
	}

	result, err := ResolveConflict(net, "t1", true, nil)
	if err != nil {
		t.Fatalf("unexpected error resolving conflict: %v", err)
	}

	if result.Fired == nil || result.Fired.ID != "t1" {
		t.Fatalf("expected t1 to have fired, got %+v", result)
	}
	if result.Paused {
		t.Error("expected no further pause once the net has settled to zero enabled transitions")
	}

	if net.Places["p1"].Tokens != 0 || net.Places["p2"].Tokens != 1 || net.Places["p3"].Tokens != 0 {
		t.Fatalf("unexpected marking after resolve: p1=%d p2=%d p3=%d",
			net.Places["p1"].Tokens, net.Places["p2"].Tokens, net.Places["p3"].Tokens)
	}

	if !net.GetTransition("t1").Enabled {
		t.Error("expected t1.Enabled to mark it as the transition that fired")
	}
	if net.GetTransition("t2").Enabled {
		t.Error("expected t2.Enabled to be false, it never fired and is not currently enabled")
	}
}

func TestResolveConflict_RejectsUnknownTransition(t *testing.T) {
	net := conflictNet()
	if _, err := ProcessStep(net, true, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := ResolveConflict(net, "does-not-exist", true, nil)
	if err == nil {
		t.Fatal("expected a structural error for an unknown transition id")
	}
	if _, ok := err.(*StructuralError); !ok {
		t.Fatalf("expected *StructuralError, got %T", err)
	}
}

func TestResolveConflict_RejectsStaleSelection(t *testing.T) {
	net := conflictNet()
	if _, err := ProcessStep(net, true, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Fire t1 directly to desynchronize the net from a caller still
	// holding the original paused snapshot, then try to resolve against
	// the now-disabled t1 again.
	if err := Fire(net, net.GetTransition("t1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	net.GetTransition("t1").Enabled = false

	_, err := ResolveConflict(net, "t1", true, nil)
	if err == nil {
		t.Fatal("expected a structural error for a stale, no-longer-enabled selection")
	}
	if _, ok := err.(*StructuralError); !ok {
		t.Fatalf("expected *StructuralError, got %T", err)
	}
}

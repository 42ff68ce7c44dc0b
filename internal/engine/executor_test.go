package engine

import (
	"testing"

	"go-petri-sim/internal/models"
)

func TestFire_RegularArcsMoveOneToken(t *testing.T) {
	net := twoPlaceNet(1, 0)
	t1 := net.GetTransition("t1")

	if err := Fire(net, t1); err != nil {
		t.Fatalf("unexpected error firing t1: %v", err)
	}
	if net.Places["p1"].Tokens != 0 {
		t.Errorf("expected p1 to have 0 tokens, got %d", net.Places["p1"].Tokens)
	}
	if net.Places["p2"].Tokens != 1 {
		t.Errorf("expected p2 to have 1 token, got %d", net.Places["p2"].Tokens)
	}
}

func TestFire_ProductionCappedAtBoundedCapacity(t *testing.T) {
	net := models.NewNet()
	net.AddPlace(models.NewPlace("source", 1))
	net.AddPlace(models.NewBoundedPlace("sink", 1, 1))
	net.AddArc(models.NewRegularArc("a1", "source", "t1"))
	net.AddArc(models.NewRegularArc("a2", "t1", "sink"))
	net.AddTransition(models.NewTransition("t1", []string{"a1", "a2"}))

	t1 := net.GetTransition("t1")
	if err := Fire(net, t1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if net.Places["source"].Tokens != 0 {
		t.Errorf("expected source to have 0 tokens, got %d", net.Places["source"].Tokens)
	}
	if net.Places["sink"].Tokens != 1 {
		t.Errorf("expected sink to remain at capacity (1), got %d", net.Places["sink"].Tokens)
	}
}

func TestFire_BidirectionalIsNetZero(t *testing.T) {
	net := models.NewNet()
	net.AddPlace(models.NewPlace("p1", 1))
	net.AddArc(models.NewBidirectionalArc("a1", "p1", "t1"))
	net.AddTransition(models.NewTransition("t1", []string{"a1"}))

	t1 := net.GetTransition("t1")
	if err := Fire(net, t1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if net.Places["p1"].Tokens != 1 {
		t.Errorf("expected bidirectional firing to leave tokens unchanged, got %d", net.Places["p1"].Tokens)
	}
}

func TestFire_InhibitorArcHasNoEffect(t *testing.T) {
	net := models.NewNet()
	net.AddPlace(models.NewPlace("guard", 0))
	net.AddArc(models.NewInhibitorArc("a1", "guard", "t1"))
	net.AddTransition(models.NewTransition("t1", []string{"a1"}))

	t1 := net.GetTransition("t1")
	if err := Fire(net, t1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if net.Places["guard"].Tokens != 0 {
		t.Errorf("expected inhibitor arc to leave guard untouched, got %d", net.Places["guard"].Tokens)
	}
}

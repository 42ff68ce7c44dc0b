package models

import "testing"

func TestPlace_IncrementRespectsCapacity(t *testing.T) {
	p := NewBoundedPlace("p1", 1, 1)
	p.IncrementTokens()
	if p.Tokens != 1 {
		t.Errorf("expected increment at capacity to be a no-op, got %d", p.Tokens)
	}
}

func TestPlace_DecrementNeverGoesNegative(t *testing.T) {
	p := NewPlace("p1", 0)
	p.DecrementTokens()
	if p.Tokens != 0 {
		t.Errorf("expected decrement at zero to be a no-op, got %d", p.Tokens)
	}
}

func TestPlace_CloneIsIndependent(t *testing.T) {
	p := NewPlace("p1", 3)
	p.Position = &Position{X: 1, Y: 2}

	clone := p.Clone()
	clone.Tokens = 99
	clone.Position.X = 100

	if p.Tokens != 3 {
		t.Errorf("expected original tokens unaffected by clone mutation, got %d", p.Tokens)
	}
	if p.Position.X != 1 {
		t.Errorf("expected original position unaffected by clone mutation, got %v", p.Position.X)
	}
}

func TestPlace_ValidateRejectsNegativeTokens(t *testing.T) {
	p := NewPlace("p1", -1)
	if err := p.Validate(); err == nil {
		t.Fatal("expected validation to reject negative tokens")
	}
}

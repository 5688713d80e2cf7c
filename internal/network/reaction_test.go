package network

import (
	"errors"
	"testing"
)

func TestNewDecayValidation(t *testing.T) {
	a := NewParticle(1, 1.0, 2.0, 0.1, MB)
	b := NewParticle(2, 0.4, 2.0, 0, MB)

	t.Run("nil parent", func(t *testing.T) {
		_, err := NewDecay(nil, 0.1, []*Particle{b})
		if !errors.Is(err, ErrEmptyReactants) {
			t.Errorf("err = %v, want ErrEmptyReactants", err)
		}
	})

	t.Run("no daughters", func(t *testing.T) {
		_, err := NewDecay(a, 0.1, nil)
		if !errors.Is(err, ErrEmptyProducts) {
			t.Errorf("err = %v, want ErrEmptyProducts", err)
		}
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := NewDecay(a, -0.1, []*Particle{b})
		if !errors.Is(err, ErrNegativeRate) {
			t.Errorf("err = %v, want ErrNegativeRate", err)
		}
	})

	t.Run("self loop", func(t *testing.T) {
		_, err := NewDecay(a, 0.1, []*Particle{a})
		if !errors.Is(err, ErrSelfLoop) {
			t.Errorf("err = %v, want ErrSelfLoop", err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		r, err := NewDecay(a, 0.1, []*Particle{b})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Kind != DECAY || r.Rate != 0.1 || len(r.Products) != 1 || r.Products[0] != b {
			t.Errorf("unexpected reaction shape: %+v", r)
		}
	})
}

func TestEvaluateDecayAtEquilibriumProducesZeroDelta(t *testing.T) {
	parent := NewParticle(1, 1.0, 2.0, 0.1, MB)
	daughter := NewParticle(2, 0.4, 2.0, 0, MB)
	r, err := NewDecay(parent, 0.1, []*Particle{daughter})
	if err != nil {
		t.Fatal(err)
	}
	parent.AddReaction(r)

	temperature := 0.1
	parent.Density = parent.EquilibriumDensity(temperature)
	daughter.Density = daughter.EquilibriumDensity(temperature)

	r.Evaluate(0.01, temperature, StageFirst)

	if parent.k1 != 0 {
		t.Errorf("parent.k1 = %v, want 0 at exact detailed balance", parent.k1)
	}
	if daughter.k1 != 0 {
		t.Errorf("daughter.k1 = %v, want 0 at exact detailed balance", daughter.k1)
	}
}

func TestEvaluateDecayIsParticleNumberConserving(t *testing.T) {
	parent := NewParticle(1, 1.0, 2.0, 0.1, MB)
	b := NewParticle(2, 0.4, 2.0, 0, MB)
	c := NewParticle(3, 0.4, 2.0, 0, MB)
	r, err := NewDecay(parent, 0.1, []*Particle{b, c})
	if err != nil {
		t.Fatal(err)
	}
	parent.AddReaction(r)

	temperature := 0.15
	parent.Density = 2 * parent.EquilibriumDensity(temperature)
	b.Density = 0.5 * b.EquilibriumDensity(temperature)
	c.Density = 0.5 * c.EquilibriumDensity(temperature)

	r.Evaluate(0.01, temperature, StageFirst)

	if parent.k1 != -b.k1 || parent.k1 != -c.k1 {
		t.Errorf("unbalanced accumulators: parent.k1=%v b.k1=%v c.k1=%v", parent.k1, b.k1, c.k1)
	}
}

func TestEvaluateDecayNeverDividesByZeroEquilibrium(t *testing.T) {
	// A product whose equilibrium density is zero (here through zero
	// degeneracy) must drop out of the inverse-decay term rather than
	// produce NaN or Inf.
	parent := NewParticle(1, 1.0, 2.0, 0.1, MB)
	heavy := NewParticle(2, 1e6, 0, 0, MB)
	r, err := NewDecay(parent, 0.1, []*Particle{heavy})
	if err != nil {
		t.Fatal(err)
	}
	parent.AddReaction(r)

	temperature := 0.05
	parent.Density = parent.EquilibriumDensity(temperature)

	r.Evaluate(0.01, temperature, StageFirst)

	if parent.k1 != parent.k1 { // NaN check
		t.Fatal("parent.k1 is NaN")
	}
}

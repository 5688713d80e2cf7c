package temperature

import (
	"math"
	"testing"
)

func TestConstantIsIndependentOfTau(t *testing.T) {
	c := Constant{T: 0.3}
	if got := c.Temperature(0.1); got != 0.3 {
		t.Errorf("Temperature(0.1) = %v, want 0.3", got)
	}
	if got := c.Temperature(50.0); got != 0.3 {
		t.Errorf("Temperature(50.0) = %v, want 0.3", got)
	}
}

func TestIdealHydroMatchesAtTau0(t *testing.T) {
	h := IdealHydro{Tau0: 0.1, T0: 0.5}
	if got := h.Temperature(0.1); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Temperature(tau0) = %v, want T0 = 0.5", got)
	}
}

func TestIdealHydroCoolsAsTauIncreases(t *testing.T) {
	h := IdealHydro{Tau0: 0.1, T0: 0.5}
	early := h.Temperature(0.2)
	late := h.Temperature(2.0)
	if !(early > late) {
		t.Errorf("expected temperature to decrease with tau: T(0.2)=%v T(2.0)=%v", early, late)
	}
}

func TestPowerLawReducesToIdealHydroAtExponentFourThirds(t *testing.T) {
	p := PowerLaw{Tau0: 0.1, T0: 0.5, Exponent: 4.0 / 3.0}
	h := IdealHydro{Tau0: 0.1, T0: 0.5}
	for _, tau := range []float64{0.2, 1.0, 5.0} {
		pv, hv := p.Temperature(tau), h.Temperature(tau)
		if math.Abs(pv-hv) > 1e-12 {
			t.Errorf("PowerLaw(%v) = %v, IdealHydro(%v) = %v, want equal", tau, pv, tau, hv)
		}
	}
}

func TestPowerLawConstantExponentIsFlat(t *testing.T) {
	p := PowerLaw{Tau0: 0.1, T0: 0.5, Exponent: 0}
	if got := p.Temperature(10.0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Temperature(10.0) = %v, want 0.5 at exponent 0", got)
	}
}

// Package temperature supplies T(tau) background-temperature trajectory
// models. The reaction network treats temperature as an externally
// supplied scalar function of proper time; this package is that supply,
// adapted from the ideal hydrodynamic cooling law in the original
// driver's main loop.
package temperature

import "math"

// Model maps proper time tau (fm/c) to a background temperature (GeV).
type Model interface {
	Temperature(tau float64) float64
}

// Constant holds the temperature fixed at T regardless of tau. Useful for
// checking detailed-balance equilibrium against a fixed background.
type Constant struct {
	T float64
}

func (c Constant) Temperature(tau float64) float64 {
	return c.T
}

// IdealHydro implements the ideal 1+1D Bjorken cooling law
// T(tau) = T0 * (tau0/tau)^(4/3), matching the original driver's
// ideal_hydro_temp.
type IdealHydro struct {
	Tau0 float64
	T0   float64
}

func (h IdealHydro) Temperature(tau float64) float64 {
	return h.T0 * math.Pow(h.Tau0/tau, 4.0/3.0)
}

// PowerLaw generalizes IdealHydro to an arbitrary cooling exponent,
// T(tau) = T0 * (tau0/tau)^exponent.
type PowerLaw struct {
	Tau0     float64
	T0       float64
	Exponent float64
}

func (p PowerLaw) Temperature(tau float64) float64 {
	return p.T0 * math.Pow(p.Tau0/tau, p.Exponent)
}

// Package driver implements the thin loop a caller runs a Network
// through: initialize at (tau0, T0), then repeatedly call TimeStep while
// varying the temperature. The integration window, temperature model, and
// any CLI around it live outside the network package itself; this
// package is that outer loop, adapted from the original driver's main()
// loop.
package driver

import (
	"github.com/san-kum/reactionnet/internal/network"
	"github.com/san-kum/reactionnet/internal/temperature"
)

// Sample is one recorded point of a run's trajectory: the proper time,
// the background temperature the step ending at that time was taken at
// (the temperature at the step's start; T0 for the initial sample), and
// every tracked particle's density at that time, keyed by PID.
type Sample struct {
	Tau         float64
	Temperature float64
	Densities   map[int64]float64
}

// Run initializes net at (tau0, model.Temperature(tau0)) and steps it from
// tau0 to tauf in increments of dtau, recording the densities of every
// PID in track after initialization and after every step.
func Run(net *network.Network, model temperature.Model, tau0, dtau, tauf float64, track []int64) []Sample {
	t0 := model.Temperature(tau0)
	net.InitializeSystem(tau0, t0)

	samples := make([]Sample, 0, int((tauf-tau0)/dtau)+2)
	samples = append(samples, sampleAt(net, tau0, t0, track))

	for tau := tau0; tau <= tauf; tau += dtau {
		temp := model.Temperature(tau)
		net.TimeStep(dtau, temp)
		samples = append(samples, sampleAt(net, tau+dtau, temp, track))
	}

	return samples
}

func sampleAt(net *network.Network, tau, temp float64, track []int64) Sample {
	densities := make(map[int64]float64, len(track))
	for _, pid := range track {
		if d, err := net.GetParticleDensity(pid); err == nil {
			densities[pid] = d
		}
	}
	return Sample{Tau: tau, Temperature: temp, Densities: densities}
}

// Package network implements the reaction-network integrator: the
// Particle/Reaction data model, the detailed-balance rate-equation kernel,
// equilibrium-density quadrature, and the four-stage RK4 driver that
// advances every particle's density in lockstep.
//
//   - [Particle]: a node — identity, thermodynamic constants, density,
//     RK4 accumulators.
//   - [Reaction]: an edge — reaction kind, rate, reactants, products.
//   - [Network]: owns every particle, drives [Network.TimeStep].
//
// # Example
//
//	net := network.New()
//	net.AddParticle(pion)
//	pion.AddReaction(decayToPhotons)
//	net.InitializeSystem(tau0, t0)
//	net.TimeStep(dtau, temperature(tau))
//	n, _ := net.GetParticleDensity(111)
//
// # Thread Safety
//
// A Network is not safe for concurrent use. [Network.TimeStep] executes a
// full four-stage sweep as one uninterrupted computation; a parallel
// implementation would need per-thread shadow accumulators reduced at
// stage boundaries, which this package deliberately does not attempt.
package network

package network

// Network owns every particle in the reaction graph and drives the
// four-stage RK4 sweep that advances all of their densities together.
// Reactions are owned by their primary reactant's Particle; Network only
// owns the particle dictionary itself.
type Network struct {
	particles map[int64]*Particle
	// order preserves catalog insertion order so TimeStep's particle
	// pass is deterministic and repeatable across runs.
	order []int64
}

// New returns an empty Network ready to receive particles.
func New() *Network {
	return &Network{
		particles: make(map[int64]*Particle),
	}
}

// AddParticle registers p under its PID. Returns ErrDuplicatePID if a
// particle with the same PID is already registered.
func (n *Network) AddParticle(p *Particle) error {
	if _, exists := n.particles[p.PID]; exists {
		return ErrDuplicatePID
	}
	n.particles[p.PID] = p
	n.order = append(n.order, p.PID)
	return nil
}

// Particle returns the particle registered under pid, or
// (nil, ErrUnknownPID) if none is registered.
func (n *Network) Particle(pid int64) (*Particle, error) {
	p, ok := n.particles[pid]
	if !ok {
		return nil, ErrUnknownPID
	}
	return p, nil
}

// Particles returns every registered particle in catalog insertion order.
func (n *Network) Particles() []*Particle {
	out := make([]*Particle, 0, len(n.order))
	for _, pid := range n.order {
		out = append(out, n.particles[pid])
	}
	return out
}

// GetParticleDensity returns the current density of pid, or
// (0, ErrUnknownPID) if pid is not registered. This is a read-only query:
// it never mutates network state.
func (n *Network) GetParticleDensity(pid int64) (float64, error) {
	p, err := n.Particle(pid)
	if err != nil {
		return 0, err
	}
	return p.Density, nil
}

// InitializeSystem sets every particle's density to its thermal
// equilibrium value at (tau0, t0) and clears all RK4 accumulators. tau0
// is accepted for symmetry with TimeStep's signature; this package's
// kernel has no explicit tau dependence beyond the temperature passed to
// it.
func (n *Network) InitializeSystem(tau0, t0 float64) {
	for _, pid := range n.order {
		p := n.particles[pid]
		p.k1, p.k2, p.k3, p.k4 = 0, 0, 0, 0
		p.eqDensityValid = false
		p.Density = p.EquilibriumDensity(t0)
	}
}

// TimeStep advances every particle's density by one RK4 step of size
// dtau at background temperature temperature. It sweeps all four stages
// in order; within a stage it visits every particle in catalog order and
// every one of that particle's reactions in registration order, so the
// result is deterministic given fixed catalog order. Finalize runs
// automatically once the fourth stage completes.
func (n *Network) TimeStep(dtau, temperature float64) {
	for _, stage := range stages {
		for _, pid := range n.order {
			for _, r := range n.particles[pid].reactions {
				r.Evaluate(dtau, temperature, stage)
			}
		}
	}
	n.finalizeTimeStep()
}

// finalizeTimeStep commits every particle's accumulated RK4 sum and
// resets accumulators to zero, leaving the network ready for the next
// TimeStep call.
func (n *Network) finalizeTimeStep() {
	for _, pid := range n.order {
		n.particles[pid].FinalizeTimeStep()
	}
}

package network

// SpinStat selects which quantum statistics govern a particle's
// equilibrium occupation number.
type SpinStat int

const (
	// MB is classical Maxwell-Boltzmann statistics.
	MB SpinStat = iota
	// FD is Fermi-Dirac statistics (half-integer spin).
	FD
	// BE is Bose-Einstein statistics (integer spin).
	BE
)

func (s SpinStat) String() string {
	switch s {
	case MB:
		return "MB"
	case FD:
		return "FD"
	case BE:
		return "BE"
	default:
		return "unknown"
	}
}

// Particle is a node in the reaction network: a species with fixed
// thermodynamic constants, a mutable density, and the per-stage RK4
// accumulators the network's driver fills in during a time step.
//
// A Particle knows only its own outgoing reactions (the ones where it is
// the primary reactant); it has no reference to the Network that owns it
// or to any other Particle. Reactions hold the cross-particle references.
type Particle struct {
	PID        int64
	Mass       float64 // GeV
	Degeneracy float64
	DecayWidth float64 // GeV
	SpinStat   SpinStat

	Density float64 // fm^-3

	k1, k2, k3, k4 float64

	eqDensity      float64
	eqDensityValid bool

	reactions []*Reaction
}

// NewParticle constructs a Particle with zero density and empty
// accumulators, as required between time steps (invariant I4).
func NewParticle(pid int64, mass, degeneracy, decayWidth float64, spinStat SpinStat) *Particle {
	return &Particle{
		PID:        pid,
		Mass:       mass,
		Degeneracy: degeneracy,
		DecayWidth: decayWidth,
		SpinStat:   spinStat,
	}
}

// AddReaction registers r as a reaction where p is the primary reactant.
// Reactions are owned by their primary reactant's particle.
func (p *Particle) AddReaction(r *Reaction) {
	p.reactions = append(p.reactions, r)
}

// Reactions returns the ordered list of reactions where p is the primary
// reactant. The order is the registration order, which catalog loading
// makes deterministic and repeatable across runs.
func (p *Particle) Reactions() []*Reaction {
	return p.reactions
}

// Update mutates the accumulator for the given RK4 stage by dt*deltaDensity,
// additively. Contributions from every reaction touching this particle
// within a stage land in the same accumulator, so the update must be
// additive, never a plain assignment.
func (p *Particle) Update(deltaDensity, dt float64, stage RK4Stage) {
	switch stage {
	case StageFirst:
		p.k1 += dt * deltaDensity
	case StageSecond:
		p.k2 += dt * deltaDensity
	case StageThird:
		p.k3 += dt * deltaDensity
	case StageFourth:
		p.k4 += dt * deltaDensity
	}
}

// Offset returns the density offset to add to p.Density when evaluating
// the rate-equation RHS at the given RK4 stage: 0 at the first stage,
// half of k1/k2 at the second/third, and the full k3 at the fourth —
// the standard RK4 evaluation points n, n+k1/2, n+k2/2, n+k3.
func (p *Particle) Offset(stage RK4Stage) float64 {
	switch stage {
	case StageFirst:
		return 0
	case StageSecond:
		return p.k1 / 2
	case StageThird:
		return p.k2 / 2
	case StageFourth:
		return p.k3
	default:
		return 0
	}
}

// FinalizeTimeStep commits the weighted RK4 sum to Density, resets every
// accumulator to zero (invariant I4), and invalidates the memoized
// equilibrium density, since the next step's temperature may differ.
func (p *Particle) FinalizeTimeStep() {
	p.Density += (p.k1 + 2*p.k2 + 2*p.k3 + p.k4) / 6.0
	p.k1, p.k2, p.k3, p.k4 = 0, 0, 0, 0
	p.eqDensityValid = false
}


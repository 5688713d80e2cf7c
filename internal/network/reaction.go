package network

// ReactionKind tags the kind of process a Reaction represents. DECAY is
// the only kind realized today; the tagged-variant shape is kept so a
// future kind (2->2 scattering, explicit-rate formation) can add a case
// and a kernel branch without touching the accumulator contract.
type ReactionKind int

const (
	// DECAY is a one-body decay coupled to its inverse via detailed balance.
	DECAY ReactionKind = iota
)

func (k ReactionKind) String() string {
	switch k {
	case DECAY:
		return "DECAY"
	default:
		return "unknown"
	}
}

// Reaction is an edge in the reaction network: a rate, a non-empty list
// of reactants, and a non-empty list of products. Reaction holds
// non-owning references into the Network's particle dictionary — the
// Network is the only owner of any Particle.
//
// MediumSource is an optional per-reaction thermal production term, added
// to the parent's rate of change independent of its own density and not
// taken from the products. It defaults to zero, reproducing a pure
// detailed-balance kernel; a caller may set it to model an external
// medium source without changing the kernel's shape.
type Reaction struct {
	Kind ReactionKind
	Rate float64 // GeV; branching_ratio * parent_width for DECAY

	Reactants []*Particle
	Products  []*Particle

	MediumSource float64
}

// NewDecay builds a DECAY reaction: parent is the sole reactant, daughters
// are the products, and rate is branching_ratio * parent_width.
func NewDecay(parent *Particle, rate float64, daughters []*Particle) (*Reaction, error) {
	if parent == nil {
		return nil, ErrEmptyReactants
	}
	if len(daughters) == 0 {
		return nil, ErrEmptyProducts
	}
	if rate < 0 {
		return nil, ErrNegativeRate
	}
	for _, d := range daughters {
		if d == parent {
			return nil, ErrSelfLoop
		}
	}

	products := make([]*Particle, len(daughters))
	copy(products, daughters)

	return &Reaction{
		Kind:      DECAY,
		Rate:      rate,
		Reactants: []*Particle{parent},
		Products:  products,
	}, nil
}

// Evaluate runs the reaction kernel for one RK4 sub-stage, reading
// endpoint densities (offset by the stage's RK4 accumulator) and pushing
// the resulting delta to every endpoint's accumulator for that stage.
//
// For DECAY, the kernel follows detailed balance:
//
//	dn_parent/dt = -rate * (n_parent - n_parent_eq * prod_i(n_i / n_i_eq))
//
// written as rate * n_parent_eq * (from_inv_decays - from_decays). If any
// n_i_eq underflows to zero, from_inv_decays is set to zero for the whole
// channel rather than dividing by zero; forward decay still proceeds
// normally.
func (r *Reaction) Evaluate(dt, temperature float64, stage RK4Stage) {
	switch r.Kind {
	case DECAY:
		r.evaluateDecay(dt, temperature, stage)
	}
}

func (r *Reaction) evaluateDecay(dt, temperature float64, stage RK4Stage) {
	parent := r.Reactants[0]

	parentDensity := parent.Density + parent.Offset(stage)
	parentEq := parent.EquilibriumDensity(temperature)

	fromDecays := 0.0
	if parentEq != 0 {
		fromDecays = parentDensity / parentEq
	}

	fromInvDecays := 1.0
	for _, product := range r.Products {
		productEq := product.EquilibriumDensity(temperature)
		if productEq == 0 {
			fromInvDecays = 0
			break
		}
		productDensity := product.Density + product.Offset(stage)
		fromInvDecays *= productDensity / productEq
	}

	deltaDensity := r.Rate * parentEq * (fromInvDecays - fromDecays)

	parent.Update(deltaDensity+r.MediumSource, dt, stage)
	for _, product := range r.Products {
		product.Update(-deltaDensity, dt, stage)
	}
}

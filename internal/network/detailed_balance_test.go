package network

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("detailed balance", func() {
	var (
		n        *Network
		parent   *Particle
		daughter *Particle
		temp     float64
	)

	BeforeEach(func() {
		temp = 0.12
		n = New()
		parent = NewParticle(1, 1.0, 2.0, 0.1, MB)
		daughter = NewParticle(2, 0.4, 2.0, 0, MB)
		Expect(n.AddParticle(parent)).To(Succeed())
		Expect(n.AddParticle(daughter)).To(Succeed())

		r, err := NewDecay(parent, 0.1, []*Particle{daughter})
		Expect(err).NotTo(HaveOccurred())
		parent.AddReaction(r)
	})

	When("both species start exactly at equilibrium", func() {
		It("leaves the network at equilibrium after many steps", func() {
			n.InitializeSystem(0.1, temp)
			eqParent := parent.EquilibriumDensity(temp)
			eqDaughter := daughter.EquilibriumDensity(temp)

			for i := 0; i < 100; i++ {
				n.TimeStep(0.01, temp)
			}

			Expect(parent.Density).To(BeNumerically("~", eqParent, eqParent*1e-6))
			Expect(daughter.Density).To(BeNumerically("~", eqDaughter, eqDaughter*1e-6))
		})
	})

	When("the parent starts above equilibrium", func() {
		It("relaxes the parent density toward equilibrium monotonically", func() {
			n.InitializeSystem(0.1, temp)
			parent.Density *= 5.0

			eqParent := parent.EquilibriumDensity(temp)
			prevDistance := math.Abs(parent.Density - eqParent)

			for i := 0; i < 30; i++ {
				n.TimeStep(0.002, temp)
				distance := math.Abs(parent.Density - eqParent)
				Expect(distance).To(BeNumerically("<=", prevDistance+1e-12))
				prevDistance = distance
			}
		})
	})

	It("clears every accumulator once a full RK4 sweep finalizes", func() {
		n.InitializeSystem(0.1, temp)
		n.TimeStep(0.01, temp)

		Expect(parent.k1).To(BeZero())
		Expect(parent.k2).To(BeZero())
		Expect(parent.k3).To(BeZero())
		Expect(parent.k4).To(BeZero())
		Expect(daughter.k1).To(BeZero())
		Expect(daughter.k2).To(BeZero())
		Expect(daughter.k3).To(BeZero())
		Expect(daughter.k4).To(BeZero())
	})
})

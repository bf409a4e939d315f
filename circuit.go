package circuitsim

import (
	"circuitsim/mna"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// branchOwner is implemented by Components that consume a branch-current
// unknown in the augmented MNA system (VoltageSource, Inductor,
// PowerVoltageSource). Circuit assigns each such component its branch's
// absolute row/column index at build time.
type branchOwner interface {
	setBranch(idx int)
}

// needsBranch reports whether a component of kind k introduces a branch
// variable into the augmented system, per spec.md section 3.
func needsBranch(k componentKind) bool {
	switch k {
	case kindVoltageSource, kindInductor, kindPowerVoltageSource:
		return true
	}
	return false
}

// Circuit owns the built topology: nodes, components, the dense MNA
// system, and the two dirty flags spec.md section 3 calls for. Grounded
// on the teacher's root circuit.go (Circuit/WireLink), generalized from
// its Newton-Raphson Simulate() loop into the linear build/step contract
// spec.md section 4.4 describes; the netlist load/export half of the
// teacher's circuit.go has no analogue here (out of scope, see DESIGN.md).
type Circuit struct {
	nodes      []*Node
	components []Component

	solver *mna.Solver
	x      []float64 // last solved vector, nil before the first successful solve

	n int // non-ground node count
	m int // voltage-like branch count

	matrixChanged bool
	rhsChanged    bool

	log *logrus.Entry
}

// newCircuit finalizes node assignment from the builder's union-find and
// the LineCompiler's output, assigns branch indices, allocates the
// solver, and performs the initial full stamp + factor required by
// build() (spec.md section 4.4: "build() ... stamps A, factors A").
func newCircuit(uf *unionFind, components []Component) (*Circuit, error) {
	ground := &Node{index: GroundIndex}
	nodes := []*Node{ground}
	nodeOf := make(map[int]*Node)

	for _, c := range components {
		for _, p := range c.Pins() {
			root := uf.find(p.ufSlot)
			if uf.isGnd[root] {
				p.node = ground
				continue
			}
			n, ok := nodeOf[root]
			if !ok {
				n = &Node{index: len(nodes)}
				nodeOf[root] = n
				nodes = append(nodes, n)
			}
			p.node = n
		}
	}

	n := len(nodes) - 1
	m := 0
	for _, c := range components {
		if !needsBranch(c.kind()) {
			continue
		}
		bo, ok := c.(branchOwner)
		if !ok {
			return nil, errors.Errorf("circuitsim: component kind %d requires a branch but has no branch storage", c.kind())
		}
		bo.setBranch(n + m)
		m++
	}

	circ := &Circuit{
		nodes:         nodes,
		components:    components,
		solver:        mna.NewSolver(n + m),
		n:             n,
		m:             m,
		matrixChanged: true,
		log:           logrus.WithField("package", "circuitsim"),
	}
	for _, c := range components {
		c.attach(circ)
	}
	if err := circ.restamp(); err != nil {
		return nil, err
	}
	return circ, nil
}

// Components returns the Circuit's components: the non-virtual components
// in the order they were added, followed by the Lines that replaced the
// VirtualResistors.
func (c *Circuit) Components() []Component { return c.components }

// Nodes returns the Circuit's nodes, node 0 always being ground.
func (c *Circuit) Nodes() []*Node { return c.nodes }

func (c *Circuit) markMatrixChanged() { c.matrixChanged = true }
func (c *Circuit) markRHSChanged()    { c.rhsChanged = true }

// restamp performs a full structural re-stamp: zero A and b, invoke
// every component's stamp, and re-factor. Used both by build() (the
// initial factorization) and by Step when matrixChanged is set.
func (c *Circuit) restamp() error {
	c.solver.ZeroMatrix()
	c.solver.ZeroRHS()
	for _, comp := range c.components {
		comp.stamp(c)
	}
	if err := c.solver.Factorize(); err != nil {
		if errors.Is(err, mna.ErrSingular) {
			return ErrSingularMatrix
		}
		return err
	}
	c.matrixChanged = false
	c.rhsChanged = false
	return nil
}

// Step advances the simulation by dt, following spec.md section 4.4's
// six-step algorithm. Grounded on the teacher's mna/solve.go Soluv.Solve
// loop, stripped of its Newton-Raphson damping iteration since this core
// is linear per time step.
func (c *Circuit) Step(dt float64) bool {
	if c.matrixChanged {
		if err := c.restamp(); err != nil {
			c.log.WithError(err).Warn("step: restamp failed")
			return false
		}
	} else if c.rhsChanged {
		c.solver.ZeroRHS()
		for _, comp := range c.components {
			comp.updateRHS(c)
		}
		c.rhsChanged = false
	}

	x, err := c.solver.Solve()
	if err != nil {
		if errors.Is(err, mna.ErrNonFinite) {
			c.log.Warn("step: non-finite solution")
		} else {
			c.log.WithError(err).Warn("step: solve failed")
		}
		return false
	}
	c.x = x

	for _, n := range c.nodes {
		if n.IsGround() {
			continue
		}
		n.potential = x[n.matrixIndex()]
	}

	for _, comp := range c.components {
		comp.postStep(c, dt)
	}
	return true
}

// The methods below implement mna.Stamp, letting Circuit itself serve as
// the ctx every Component's stamp/updateRHS/postStep hook receives.

func (c *Circuit) StampMatrix(i, j int, value float64) { c.solver.StampMatrix(i, j, value) }
func (c *Circuit) StampRHS(i int, value float64)       { c.solver.StampRHS(i, value) }

func (c *Circuit) StampImpedance(n1, n2 int, resistance float64) {
	if resistance == 0 {
		return
	}
	c.StampAdmittance(n1, n2, 1/resistance)
}

func (c *Circuit) StampAdmittance(n1, n2 int, admittance float64) {
	c.solver.StampMatrix(n1, n1, admittance)
	c.solver.StampMatrix(n2, n2, admittance)
	c.solver.StampMatrix(n1, n2, -admittance)
	c.solver.StampMatrix(n2, n1, -admittance)
}

func (c *Circuit) StampCurrentSource(n1, n2 int, current float64) {
	c.solver.StampRHS(n1, -current)
	c.solver.StampRHS(n2, current)
}

func (c *Circuit) StampVoltageSource(n1, n2, branch int, voltage float64) {
	c.solver.StampMatrix(n1, branch, 1)
	c.solver.StampMatrix(n2, branch, -1)
	c.solver.StampMatrix(branch, n1, 1)
	c.solver.StampMatrix(branch, n2, -1)
	c.solver.StampRHS(branch, voltage)
}

func (c *Circuit) UpdateVoltageSource(branch int, voltage float64) {
	c.solver.StampRHS(branch, voltage)
}

func (c *Circuit) GetNodeVoltage(i int) float64 {
	if i < 0 || i >= len(c.x) {
		return 0
	}
	return c.x[i]
}

func (c *Circuit) GetBranchCurrent(branch int) float64 {
	if branch < 0 || branch >= len(c.x) {
		return 0
	}
	return c.x[branch]
}

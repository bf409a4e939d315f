package circuitsim

// CircuitBuilder accumulates Components and their pin connections before
// handing a finished topology to build(). Grounded on the teacher's
// WireLink (types/wireLink.go) as the pre-build accumulation stage, with
// the node/ground bookkeeping it inlines pulled out into the explicit
// unionFind (pin.go) spec.md section 4.1 asks for.
type CircuitBuilder struct {
	components []Component
	added      map[Component]bool
	uf         *unionFind
	grounded   bool
	built      bool
}

// NewCircuitBuilder creates an empty builder.
func NewCircuitBuilder() *CircuitBuilder {
	return &CircuitBuilder{
		added: make(map[Component]bool),
		uf:    newUnionFind(),
	}
}

// Add registers c with the builder. Returns (false, nil) if c was already
// added (a no-op, matching spec.md section 4.4), or (false, ErrAlreadyBuilt)
// if build() already ran.
func (cb *CircuitBuilder) Add(c Component) (bool, error) {
	if cb.built {
		return false, ErrAlreadyBuilt
	}
	if cb.added[c] {
		return false, nil
	}
	c.setID(len(cb.components))
	cb.added[c] = true
	cb.components = append(cb.components, c)
	return true, nil
}

// Remove unregisters c. Valid only before build(); callers needing to
// remove a component from a built Circuit must rebuild from scratch, per
// spec.md section 3's lifecycle invariant.
func (cb *CircuitBuilder) Remove(c Component) error {
	if cb.built {
		return ErrAlreadyBuilt
	}
	if !cb.added[c] {
		return nil
	}
	delete(cb.added, c)
	for i, existing := range cb.components {
		if existing == c {
			cb.components = append(cb.components[:i], cb.components[i+1:]...)
			break
		}
	}
	for i, existing := range cb.components {
		existing.setID(i)
	}
	return nil
}

// Connect joins pin i of a to pin j of b, merging their union-find
// classes so they resolve to the same Node at build time.
func (cb *CircuitBuilder) Connect(a Component, i int, b Component, j int) error {
	if cb.built {
		return ErrAlreadyBuilt
	}
	if a == b {
		return ErrSameComponent
	}
	if !cb.added[a] || !cb.added[b] {
		return ErrNotAdded
	}
	pa, err := cb.pin(a, i)
	if err != nil {
		return err
	}
	pb, err := cb.pin(b, j)
	if err != nil {
		return err
	}
	cb.uf.union(pa, pb, a.kind() != kindVirtualResistor, b.kind() != kindVirtualResistor)
	return nil
}

// Ground marks pin pinIndex of c as belonging to the distinguished
// ground node.
func (cb *CircuitBuilder) Ground(c Component, pinIndex int) error {
	if cb.built {
		return ErrAlreadyBuilt
	}
	if !cb.added[c] {
		return ErrNotAdded
	}
	p, err := cb.pin(c, pinIndex)
	if err != nil {
		return err
	}
	cb.uf.markGround(p, c.kind() != kindVirtualResistor)
	cb.grounded = true
	return nil
}

func (cb *CircuitBuilder) pin(c Component, index int) (*Pin, error) {
	pins := c.Pins()
	if index < 0 || index >= len(pins) {
		return nil, wrapf(ErrNotAdded, "pin index %d out of range for component %d", index, c.ComponentID())
	}
	return pins[index], nil
}

// Build finalizes node assignment, runs the LineCompiler, stamps A,
// factors A, and returns a ready-to-step Circuit. build() may be called
// only once per builder.
func (cb *CircuitBuilder) Build() (*Circuit, error) {
	if cb.built {
		return nil, ErrDoubleBuild
	}
	cb.built = true

	if !cb.grounded {
		return nil, ErrFloatingCircuit
	}

	// Every pin of every added component must have a union-find slot,
	// even pins nobody ever connected (they still need a Node).
	for _, c := range cb.components {
		real := c.kind() != kindVirtualResistor
		for _, p := range c.Pins() {
			cb.uf.touch(p, real)
		}
	}

	final, err := compileLines(cb)
	if err != nil {
		return nil, err
	}

	return newCircuit(cb.uf, final)
}

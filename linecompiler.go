package circuitsim

// compileLines runs the LineCompiler: it partitions the builder's
// VirtualResistors into maximal series chains and replaces each chain
// with a single Line component, per spec.md section 4.2. Grounded on the
// wire-joining/node-assignment walk in the teacher's graph/graph.go
// Init, generalized into an explicit chain walk over the pin union-find
// (pin.go) instead of the teacher's inline wireID bookkeeping.
func compileLines(cb *CircuitBuilder) ([]Component, error) {
	var virtuals []*VirtualResistor
	var others []Component
	for _, c := range cb.components {
		if vr, ok := c.(*VirtualResistor); ok {
			virtuals = append(virtuals, vr)
		} else {
			others = append(others, c)
		}
	}
	if len(virtuals) == 0 {
		return others, nil
	}

	visited := make(map[*VirtualResistor]bool, len(virtuals))
	var lines []Component
	for _, vr := range virtuals {
		if visited[vr] {
			continue
		}
		p0, p1 := vr.pins[0], vr.pins[1]
		var entry *Pin
		switch {
		case cb.uf.isBreakPoint(p0):
			entry = p0
		case cb.uf.isBreakPoint(p1):
			entry = p1
		default:
			continue // strictly interior; reached from the chain's other end
		}
		lines = append(lines, walkChain(cb.uf, vr, entry, visited))
	}

	for _, vr := range virtuals {
		if !visited[vr] {
			return nil, wrapf(ErrDanglingChain, "virtual resistor %d", vr.ComponentID())
		}
	}

	return append(others, lines...), nil
}

// walkChain follows a series chain of VirtualResistors starting at entry
// (a pin already known to be a break point) until it reaches another
// break point, accumulating one Part per resistor crossed. A chain of
// exactly one virtual resistor is a degenerate LineGraph: one outer
// resistor, no inner ones. The "anchor" concept from spec.md section 9
// (the first interior virtual resistor, used only to fix sign during
// compilation) has no runtime meaning here: walkChain's own entry/cur
// locals serve that role and nothing is persisted on the resulting Line.
func walkChain(uf *unionFind, start *VirtualResistor, entry *Pin, visited map[*VirtualResistor]bool) *Line {
	posPin := entry
	cur, curEntry := start, entry
	var parts []*Part
	for {
		visited[cur] = true
		parts = append(parts, &Part{resistance: cur.resistance})
		other := cur.otherPin(curEntry)
		if uf.isBreakPoint(other) {
			return newLine(posPin, other, parts)
		}
		next := otherMember(uf.classMembers(other), other)
		cur = next.owner.(*VirtualResistor)
		curEntry = next
	}
}

// otherMember returns the pin in members other than exclude. Interior
// (non-break-point) classes always have exactly two members by
// construction (spec.md section 4.2), so this never returns nil for a
// class walkChain actually visits.
func otherMember(members []*Pin, exclude *Pin) *Pin {
	for _, m := range members {
		if m != exclude {
			return m
		}
	}
	return nil
}

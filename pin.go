package circuitsim

// Pin is a terminal of a Component. Before build, a Pin belongs to a
// disjoint-set class maintained by the owning CircuitBuilder; after
// build, it is bound to exactly one Node (possibly ground).
type Pin struct {
	owner Component
	index int

	node *Node // bound once build() finishes

	// ufSlot indexes this pin into its builder's union-find arrays. -1
	// until the pin is first touched by connect/ground/build.
	ufSlot int
}

// newPin creates a detached pin owned by c at the given pin index.
func newPin(c Component, index int) *Pin {
	return &Pin{owner: c, index: index, ufSlot: -1}
}

// Owner returns the component this pin belongs to.
func (p *Pin) Owner() Component { return p.owner }

// Index returns the pin's position within its owner's pin list.
func (p *Pin) Index() int { return p.index }

// Node returns the Node this pin was bound to at build time, or nil
// before build.
func (p *Pin) Node() *Node { return p.node }

// unionFind is a disjoint-set over Pins with union-by-size and path
// compression. Each root additionally carries two flags (hasReal,
// isGnd), a count of VirtualResistor-owned member pins (vrCount), and a
// members list used to walk a class's pins during chain-compiling.
//
// Grounded on the wire/node-joining bookkeeping in the teacher's
// types/wireLink.go and graph/graph.go, pulled out into a reusable
// structure as spec section 4.1/9 call for.
type unionFind struct {
	parent  []int
	size    []int
	hasReal []bool
	isGnd   []bool
	vrCount []int // count of VirtualResistor pins merged into this class
	members [][]*Pin
}

func newUnionFind() *unionFind { return &unionFind{} }

// touch ensures p has a slot in the union-find, creating a new singleton
// class for it if this is the first time p is seen. real marks whether p
// belongs to a non-virtual-resistor component (ground pins are marked
// separately via markGround).
func (uf *unionFind) touch(p *Pin, real bool) int {
	if p.ufSlot >= 0 {
		return p.ufSlot
	}
	slot := len(uf.parent)
	p.ufSlot = slot
	uf.parent = append(uf.parent, slot)
	uf.size = append(uf.size, 1)
	uf.hasReal = append(uf.hasReal, real)
	uf.isGnd = append(uf.isGnd, false)
	vc := 0
	if !real {
		vc = 1
	}
	uf.vrCount = append(uf.vrCount, vc)
	uf.members = append(uf.members, []*Pin{p})
	return slot
}

// find returns the representative slot of slot's class, compressing the
// path as it walks up.
func (uf *unionFind) find(slot int) int {
	root := slot
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[slot] != root {
		uf.parent[slot], slot = root, uf.parent[slot]
	}
	return root
}

// union merges the classes of pins a and b, OR-ing their metadata bits
// and merging their member lists (smaller list appended into larger, to
// keep total work O(n log n) across a build).
func (uf *unionFind) union(a, b *Pin, aReal, bReal bool) {
	ra, rb := uf.find(uf.touch(a, aReal)), uf.find(uf.touch(b, bReal))
	if ra == rb {
		return
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.hasReal[ra] = uf.hasReal[ra] || uf.hasReal[rb]
	uf.isGnd[ra] = uf.isGnd[ra] || uf.isGnd[rb]
	uf.vrCount[ra] += uf.vrCount[rb]
	uf.members[ra] = append(uf.members[ra], uf.members[rb]...)
	uf.members[rb] = nil
}

// markGround flags p's class as the ground class.
func (uf *unionFind) markGround(p *Pin, real bool) {
	root := uf.find(uf.touch(p, real))
	uf.isGnd[root] = true
	uf.hasReal[root] = true
}

// classSize reports how many pins share p's class.
func (uf *unionFind) classSize(p *Pin) int {
	return uf.size[uf.find(p.ufSlot)]
}

// classMembers returns every pin sharing p's class.
func (uf *unionFind) classMembers(p *Pin) []*Pin {
	return uf.members[uf.find(p.ufSlot)]
}

// isBreakPoint implements spec section 4.2's break-point rule: a class is
// a break point if it is a singleton, contains a real-marked pin, or
// contains three or more virtual-resistor pins (a fork).
func (uf *unionFind) isBreakPoint(p *Pin) bool {
	root := uf.find(p.ufSlot)
	return uf.size[root] == 1 || uf.hasReal[root] || uf.vrCount[root] >= 3
}

package circuitsim

import (
	"fmt"
	"strings"
)

// ToDot renders the current node/component graph as GraphViz, labeling
// nodes with their solved potential. Debug-only, per spec.md section
// 4.4 ("a debug-only method, not part of the numerical contract").
// Grounded on the shape of the teacher's mna/solve.go debug dump,
// reformatted as GraphViz instead of the teacher's plain-text matrix
// listing.
func (c *Circuit) ToDot() string {
	var b strings.Builder
	b.WriteString("graph circuit {\n")
	for _, n := range c.nodes {
		label := fmt.Sprintf("n%d", n.index)
		if n.IsGround() {
			label = "gnd"
		}
		fmt.Fprintf(&b, "  node%d [label=\"%s\\n%.4gV\"];\n", n.index, label, n.potential)
	}
	for _, comp := range c.components {
		pins := comp.Pins()
		if len(pins) != 2 || pins[0].node == nil || pins[1].node == nil {
			continue
		}
		fmt.Fprintf(&b, "  node%d -- node%d [label=\"%s\"];\n",
			pins[0].node.index, pins[1].node.index, componentLabel(comp))
	}
	b.WriteString("}\n")
	return b.String()
}

func componentLabel(c Component) string {
	return fmt.Sprintf("%s%d", componentKindName(c.kind()), c.ComponentID())
}

func componentKindName(k componentKind) string {
	switch k {
	case kindResistor:
		return "R"
	case kindVirtualResistor:
		return "VR"
	case kindVoltageSource:
		return "V"
	case kindCurrentSource:
		return "I"
	case kindCapacitor:
		return "C"
	case kindInductor:
		return "L"
	case kindSwitch:
		return "SW"
	case kindLine:
		return "LN"
	case kindPowerVoltageSource:
		return "PV"
	case kindPowerCurrentSource:
		return "PI"
	default:
		return "?"
	}
}

package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/strata/pkg/domain"
	"github.com/aretw0/strata/pkg/frame"
)

// Overlay selects optional styling passes.
type Overlay struct {
	// Computed styles nodes whose n2 is present.
	Computed bool
}

// GenerateMermaid produces a Mermaid flowchart for the tree rooted at root.
// Children and labels come from the node axis of a chain, so composite kinds render
// with whatever the supplied structure reports for them.
// Shapes:
// - A: ((Circle))
// - C: [[Subroutine]]
// - Composite kinds: [/Parallelogram/]
// - Default: [Rectangle]
func GenerateMermaid(root domain.Node, s frame.Structure, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	if domain.Absent(root) {
		return sb.String()
	}

	var computed []string
	next := 0

	var visit func(n domain.Node) string
	visit = func(n domain.Node) string {
		id := fmt.Sprintf("n%d", next)
		next++

		kind, _ := s.Get.Kind(n)
		opener, closer := "[", "]"
		switch {
		case kind == domain.KindA:
			opener, closer = "((", "))"
		case kind == domain.KindC:
			opener, closer = "[[", "]]"
		case !s.Is.Base(kind):
			opener, closer = "[/", "/]"
		}

		label := fmt.Sprintf("%s n1=%d", kind, n.N1())
		if n2, ok := s.Get.N2(n); ok {
			label = fmt.Sprintf("%s <br/> n2=%d", label, n2)
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, label, closer)

		if s.Is.Computed(n) {
			computed = append(computed, id)
		}

		for _, child := range s.Get.Children(n) {
			childID := visit(child)
			fmt.Fprintf(&sb, "    %s --> %s\n", id, childID)
		}
		return id
	}
	visit(root)

	if overlay != nil && overlay.Computed && len(computed) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef computed fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		fmt.Fprintf(&sb, "    class %s computed;\n", strings.Join(computed, ","))
	}

	return sb.String()
}

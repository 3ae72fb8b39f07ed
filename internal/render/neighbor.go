package render

import "fmt"

// NeighborRule controls how far a block change invalidates adjacent sections.
type NeighborRule int

const (
	// Faces invalidates sections sharing a face with the changed block.
	Faces NeighborRule = iota
	// FacesAndEdges also invalidates sections sharing an edge.
	FacesAndEdges
	// FacesEdgesVertices also invalidates the section sharing a corner.
	FacesEdgesVertices
)

// Edges reports whether edge-sharing sections are invalidated.
func (r NeighborRule) Edges() bool {
	return r == FacesAndEdges || r == FacesEdgesVertices
}

// Vertices reports whether the corner-sharing section is invalidated.
func (r NeighborRule) Vertices() bool {
	return r == FacesEdgesVertices
}

func (r NeighborRule) String() string {
	switch r {
	case Faces:
		return "faces"
	case FacesAndEdges:
		return "faces+edges"
	case FacesEdgesVertices:
		return "faces+edges+vertices"
	default:
		return fmt.Sprintf("NeighborRule(%d)", int(r))
	}
}

// ParseNeighborRule is the inverse of NeighborRule.String.
func ParseNeighborRule(s string) (NeighborRule, error) {
	switch s {
	case "faces":
		return Faces, nil
	case "faces+edges":
		return FacesAndEdges, nil
	case "faces+edges+vertices":
		return FacesEdgesVertices, nil
	}
	return 0, fmt.Errorf("unknown neighbor rule %q", s)
}

func (r NeighborRule) valid() bool {
	return r >= Faces && r <= FacesEdgesVertices
}

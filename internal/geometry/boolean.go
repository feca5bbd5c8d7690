package geometry

import (
	clipper "github.com/go-clipper/clipper2/port"
)

// Union returns a ∪ b. Self-touching input is repaired as a side effect of
// clipper2's Vatti-based boolean engine (make-valid semantics); a failed
// operation yields the empty polygon.
func Union(a, b Polygon) Polygon {
	return booleanTree(clipper.Union, a, b)
}

// Difference returns a \ b: the part of a not covered by b. This is the
// primitive behind the roughing planner's machinable-region computation
// (stock minus the tool-offset-inflated part).
func Difference(a, b Polygon) Polygon {
	return booleanTree(clipper.Difference, a, b)
}

func booleanTree(op clipper.ClipType, a, b Polygon) Polygon {
	if a.IsEmpty() {
		if op == clipper.Difference {
			return Polygon{}
		}
		return b
	}
	if b.IsEmpty() && op != clipper.Union {
		return a
	}

	tree, _, err := clipper.BooleanOp64Tree(op, clipper.NonZero, a.toPaths64(), b.toPaths64())
	if err != nil || tree == nil {
		return Polygon{}
	}
	return polygonFromTree(tree)
}

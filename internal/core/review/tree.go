// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package review

// BuildForest renders a movie's reviews as a forest of [Node] values.
//
// Roots are the reviews whose parent is null; each node embeds its children
// recursively. A review orphaned by a parent deletion (parent nulled, not
// cascaded) satisfies the same null-parent rule and re-attaches at the top
// level with no special handling.
//
// # Ordering
//
// Input order is preserved at every level, so passing reviews sorted by id
// yields creation-ordered siblings throughout the tree.
//
// # Design
//
// The forest is built from the flat row set with an id-grouped lookup table
// and explicit recursion — no self-referential serializer types and no cyclic
// in-memory ownership.
func BuildForest(reviews []*Review) []*Node {
	childrenByParent := make(map[int][]*Review, len(reviews))
	roots := make([]*Review, 0, len(reviews))

	for _, r := range reviews {
		if r.ParentID == nil {
			roots = append(roots, r)
			continue
		}
		childrenByParent[*r.ParentID] = append(childrenByParent[*r.ParentID], r)
	}

	var build func(r *Review) *Node
	build = func(r *Review) *Node {
		node := &Node{
			Name: r.Name,
			Text: r.Text,
			// Empty slice, not nil: leaves must serialize as "children": [].
			Children: []*Node{},
		}
		for _, child := range childrenByParent[r.ID] {
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	forest := make([]*Node, 0, len(roots))
	for _, root := range roots {
		forest = append(forest, build(root))
	}

	return forest
}

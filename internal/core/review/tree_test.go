// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package review_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinoteka/kinoteka/internal/core/review"
	"github.com/kinoteka/kinoteka/pkg/pointer"
)

/*
TestBuildForest_SingleChain verifies a three-level chain nests three deep:
R1(parent=nil) <- R2(parent=R1) <- R3(parent=R2).
*/
func TestBuildForest_SingleChain(t *testing.T) {
	reviews := []*review.Review{
		{ID: 1, Name: "Ann", Text: "root"},
		{ID: 2, Name: "Ben", Text: "reply", ParentID: pointer.To(1)},
		{ID: 3, Name: "Cid", Text: "reply to reply", ParentID: pointer.To(2)},
	}

	forest := review.BuildForest(reviews)

	require.Len(t, forest, 1)
	assert.Equal(t, "Ann", forest[0].Name)

	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Ben", forest[0].Children[0].Name)

	require.Len(t, forest[0].Children[0].Children, 1)
	assert.Equal(t, "Cid", forest[0].Children[0].Children[0].Name)

	// The deepest node is a leaf
	assert.Empty(t, forest[0].Children[0].Children[0].Children)
}

/*
TestBuildForest_OrphanReattachment verifies that when a parent is deleted
(the child's parent nulled, not cascaded), the child becomes a root and its
own subtree stays intact.
*/
func TestBuildForest_OrphanReattachment(t *testing.T) {
	// R1 deleted: R2's parent was nulled by the store, R3 still points at R2.
	reviews := []*review.Review{
		{ID: 2, Name: "Ben", Text: "was a reply"},
		{ID: 3, Name: "Cid", Text: "still nested", ParentID: pointer.To(2)},
	}

	forest := review.BuildForest(reviews)

	require.Len(t, forest, 1)
	assert.Equal(t, "Ben", forest[0].Name)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Cid", forest[0].Children[0].Name)
}

/*
TestBuildForest_SiblingOrder verifies siblings keep creation (id) order at
every level of the tree.
*/
func TestBuildForest_SiblingOrder(t *testing.T) {
	reviews := []*review.Review{
		{ID: 1, Name: "root-a"},
		{ID: 2, Name: "root-b"},
		{ID: 3, Name: "child-1", ParentID: pointer.To(1)},
		{ID: 4, Name: "child-2", ParentID: pointer.To(1)},
		{ID: 5, Name: "child-3", ParentID: pointer.To(1)},
	}

	forest := review.BuildForest(reviews)

	require.Len(t, forest, 2)
	assert.Equal(t, "root-a", forest[0].Name)
	assert.Equal(t, "root-b", forest[1].Name)

	require.Len(t, forest[0].Children, 3)
	assert.Equal(t, "child-1", forest[0].Children[0].Name)
	assert.Equal(t, "child-2", forest[0].Children[1].Name)
	assert.Equal(t, "child-3", forest[0].Children[2].Name)
}

/*
TestBuildForest_JSONShape pins the wire shape: {name, text, children} at every
level, with leaves emitting "children": [] rather than null.
*/
func TestBuildForest_JSONShape(t *testing.T) {
	reviews := []*review.Review{
		{ID: 1, Name: "Ann", Text: "great"},
		{ID: 2, Name: "Ben", Text: "agreed", ParentID: pointer.To(1)},
	}

	payload, err := json.Marshal(review.BuildForest(reviews))
	require.NoError(t, err)

	assert.JSONEq(t,
		`[{"name":"Ann","text":"great","children":[{"name":"Ben","text":"agreed","children":[]}]}]`,
		string(payload),
	)
}

/*
TestBuildForest_Empty verifies an empty input produces an empty (non-nil) forest.
*/
func TestBuildForest_Empty(t *testing.T) {
	forest := review.BuildForest(nil)

	require.NotNil(t, forest)
	assert.Empty(t, forest)

	payload, err := json.Marshal(forest)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(payload))
}

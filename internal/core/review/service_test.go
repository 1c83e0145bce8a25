// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package review_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinoteka/kinoteka/internal/core/review"
	"github.com/kinoteka/kinoteka/internal/platform/apperr"
	"github.com/kinoteka/kinoteka/pkg/pointer"
)

// fakeRepository is an in-memory Repository for service-level tests.
type fakeRepository struct {
	reviews map[int]*review.Review
	nextID  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{reviews: map[int]*review.Review{}, nextID: 1}
}

func (f *fakeRepository) CreateReview(_ context.Context, r *review.Review) error {
	r.ID = f.nextID
	f.nextID++
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeRepository) GetReview(_ context.Context, id int) (*review.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, apperr.NotFound("Review")
	}
	return r, nil
}

func (f *fakeRepository) ListByMovie(_ context.Context, movieID int) ([]*review.Review, error) {
	var out []*review.Review
	for id := 1; id < f.nextID; id++ {
		if r, ok := f.reviews[id]; ok && r.MovieID == movieID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestService(repo review.Repository) *review.Service {
	return review.NewService(repo, slog.Default())
}

/*
TestService_Create_Valid verifies the happy path assigns an id.
*/
func TestService_Create_Valid(t *testing.T) {
	service := newTestService(newFakeRepository())

	created, err := service.Create(context.Background(), review.CreateInput{
		Email:   "ann@example.com",
		Name:    "Ann",
		Text:    "Loved it.",
		MovieID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Nil(t, created.ParentID)
}

/*
TestService_Create_Validation verifies each field rule is reported per field.
*/
func TestService_Create_Validation(t *testing.T) {
	longText := make([]byte, review.MaxTextLen+1)
	for i := range longText {
		longText[i] = 'x'
	}

	tests := []struct {
		name      string
		input     review.CreateInput
		wantField string
	}{
		{
			"bad_email",
			review.CreateInput{Email: "not-an-email", Name: "Ann", Text: "ok", MovieID: 1},
			"email",
		},
		{
			"missing_name",
			review.CreateInput{Email: "ann@example.com", Text: "ok", MovieID: 1},
			"name",
		},
		{
			"text_too_long",
			review.CreateInput{Email: "ann@example.com", Name: "Ann", Text: string(longText), MovieID: 1},
			"text",
		},
		{
			"missing_movie",
			review.CreateInput{Email: "ann@example.com", Name: "Ann", Text: "ok"},
			"movie",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(newFakeRepository())

			_, err := service.Create(context.Background(), tt.input)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.wantField, ae.Details[0].Field)
		})
	}
}

/*
TestService_Create_ParentChecks verifies parent references are validated:
the parent must exist and belong to the same movie.
*/
func TestService_Create_ParentChecks(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	// Seed a root review on movie 1.
	root, err := service.Create(context.Background(), review.CreateInput{
		Email: "ann@example.com", Name: "Ann", Text: "root", MovieID: 1,
	})
	require.NoError(t, err)

	t.Run("missing_parent", func(t *testing.T) {
		_, err := service.Create(context.Background(), review.CreateInput{
			Email: "ben@example.com", Name: "Ben", Text: "reply", MovieID: 1,
			ParentID: pointer.To(999),
		})

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "parent", ae.Details[0].Field)
	})

	t.Run("cross_movie_parent", func(t *testing.T) {
		_, err := service.Create(context.Background(), review.CreateInput{
			Email: "ben@example.com", Name: "Ben", Text: "reply", MovieID: 2,
			ParentID: pointer.To(root.ID),
		})

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "parent", ae.Details[0].Field)
	})

	t.Run("valid_parent", func(t *testing.T) {
		reply, err := service.Create(context.Background(), review.CreateInput{
			Email: "ben@example.com", Name: "Ben", Text: "reply", MovieID: 1,
			ParentID: pointer.To(root.ID),
		})

		require.NoError(t, err)
		require.NotNil(t, reply.ParentID)
		assert.Equal(t, root.ID, *reply.ParentID)
	})
}

/*
TestService_ForestForMovie verifies the service returns the serialized forest
for a movie's review set.
*/
func TestService_ForestForMovie(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	root, err := service.Create(context.Background(), review.CreateInput{
		Email: "ann@example.com", Name: "Ann", Text: "root", MovieID: 7,
	})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), review.CreateInput{
		Email: "ben@example.com", Name: "Ben", Text: "reply", MovieID: 7,
		ParentID: pointer.To(root.ID),
	})
	require.NoError(t, err)

	// A review on another movie must not leak in.
	_, err = service.Create(context.Background(), review.CreateInput{
		Email: "cid@example.com", Name: "Cid", Text: "elsewhere", MovieID: 8,
	})
	require.NoError(t, err)

	forest, err := service.ForestForMovie(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, "Ann", forest[0].Name)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Ben", forest[0].Children[0].Name)
}

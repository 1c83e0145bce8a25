// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package rating_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinoteka/kinoteka/internal/core/rating"
	"github.com/kinoteka/kinoteka/internal/platform/apperr"
)

// ratingKey is the natural key of a vote.
type ratingKey struct {
	ip      string
	movieID int
}

// fakeRepository mirrors the store contract in memory: one row per
// (ip, movie), overwritten on repeat votes.
type fakeRepository struct {
	rows   map[ratingKey]*rating.Rating
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: map[ratingKey]*rating.Rating{}, nextID: 1}
}

func (f *fakeRepository) UpsertRating(_ context.Context, r *rating.Rating) error {
	k := ratingKey{ip: r.IP, movieID: r.MovieID}
	if existing, ok := f.rows[k]; ok {
		existing.StarID = r.StarID
		existing.StarValue = r.StarValue
		r.ID = existing.ID
		return nil
	}
	r.ID = f.nextID
	f.nextID++
	stored := *r
	f.rows[k] = &stored
	return nil
}

func (f *fakeRepository) GetStarByValue(_ context.Context, value int) (*rating.Star, error) {
	if value < 1 || value > 5 {
		return nil, apperr.NotFound("Star")
	}
	// Stars are seeded descending: value 5 has id 1.
	return &rating.Star{ID: 6 - value, Value: value}, nil
}

func (f *fakeRepository) ListStars(_ context.Context) ([]*rating.Star, error) {
	stars := make([]*rating.Star, 0, 5)
	for value := 5; value >= 1; value-- {
		stars = append(stars, &rating.Star{ID: 6 - value, Value: value})
	}
	return stars, nil
}

func newTestService(repo rating.Repository) *rating.Service {
	return rating.NewService(repo, slog.Default())
}

/*
TestService_Record_UpsertIdempotence pins the one-row-per-(ip,movie) contract:
voting 5, 5, then 3 leaves a single row holding star 3.
*/
func TestService_Record_UpsertIdempotence(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)
	ctx := context.Background()

	first, err := service.Record(ctx, "10.0.0.1", rating.RecordInput{Star: 5, MovieID: 1})
	require.NoError(t, err)

	second, err := service.Record(ctx, "10.0.0.1", rating.RecordInput{Star: 5, MovieID: 1})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	third, err := service.Record(ctx, "10.0.0.1", rating.RecordInput{Star: 3, MovieID: 1})
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
	assert.Equal(t, 3, third.StarValue)

	require.Len(t, repo.rows, 1)
	for _, row := range repo.rows {
		assert.Equal(t, 3, row.StarValue)
	}
}

/*
TestService_Record_SeparateCallers verifies distinct IPs produce distinct rows
for the same movie.
*/
func TestService_Record_SeparateCallers(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)
	ctx := context.Background()

	_, err := service.Record(ctx, "10.0.0.1", rating.RecordInput{Star: 4, MovieID: 1})
	require.NoError(t, err)

	_, err = service.Record(ctx, "10.0.0.2", rating.RecordInput{Star: 2, MovieID: 1})
	require.NoError(t, err)

	assert.Len(t, repo.rows, 2)
}

/*
TestService_Record_Validation verifies star and movie input rules.
*/
func TestService_Record_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     rating.RecordInput
		wantField string
	}{
		{"missing_movie", rating.RecordInput{Star: 4}, "movie"},
		{"zero_star", rating.RecordInput{Star: 0, MovieID: 1}, "star"},
		{"unknown_star", rating.RecordInput{Star: 9, MovieID: 1}, "star"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(newFakeRepository())

			_, err := service.Record(context.Background(), "10.0.0.1", tt.input)

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
TestService_Stars verifies the reference values are listed highest first.
*/
func TestService_Stars(t *testing.T) {
	service := newTestService(newFakeRepository())

	stars, err := service.Stars(context.Background())

	require.NoError(t, err)
	require.Len(t, stars, 5)
	assert.Equal(t, 5, stars[0].Value)
	assert.Equal(t, 1, stars[4].Value)
}

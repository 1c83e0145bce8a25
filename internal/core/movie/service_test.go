// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package movie_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinoteka/kinoteka/internal/core/movie"
	"github.com/kinoteka/kinoteka/internal/core/review"
	"github.com/kinoteka/kinoteka/internal/platform/apperr"
)

// fakeRepository records the arguments it was called with so tests can assert
// on what the service forwards to the store.
type fakeRepository struct {
	lastCallerIP string
	lastFilter   movie.Filter
	lastLimit    int
	lastOffset   int

	items  []*movie.ListItem
	total  int
	detail *movie.Detail
}

func (f *fakeRepository) ListMovies(_ context.Context, callerIP string, filter movie.Filter, limit, offset int) ([]*movie.ListItem, int, error) {
	f.lastCallerIP = callerIP
	f.lastFilter = filter
	f.lastLimit = limit
	f.lastOffset = offset
	return f.items, f.total, nil
}

func (f *fakeRepository) GetMovieDetail(_ context.Context, id int) (*movie.Detail, error) {
	if f.detail == nil || f.detail.ID != id {
		return nil, apperr.NotFound("Movie")
	}
	copied := *f.detail
	return &copied, nil
}

// fakeReviewSource returns a canned forest per movie id.
type fakeReviewSource struct {
	forests map[int][]*review.Node
}

func (f *fakeReviewSource) ForestForMovie(_ context.Context, movieID int) ([]*review.Node, error) {
	if forest, ok := f.forests[movieID]; ok {
		return forest, nil
	}
	return []*review.Node{}, nil
}

func newTestService(repo *fakeRepository, reviews *fakeReviewSource) *movie.Service {
	if reviews == nil {
		reviews = &fakeReviewSource{}
	}
	return movie.NewService(repo, reviews, slog.Default())
}

/*
TestService_List_FilterNormalization verifies genre and category filter values
are slug-normalized before they reach the store, so display names and slugs
address the same rows.
*/
func TestService_List_FilterNormalization(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo, nil)

	_, _, err := service.List(context.Background(), "10.0.0.1", movie.Filter{
		Genres:   []string{"Sci-Fi", "drama", "  "},
		Category: "Comédie Française",
	}, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", repo.lastCallerIP)
	assert.Equal(t, []string{"sci-fi", "drama"}, repo.lastFilter.Genres)
	assert.Equal(t, "comedie-francaise", repo.lastFilter.Category)
}

/*
TestService_List_PassesPaging verifies limit and offset flow through untouched.
*/
func TestService_List_PassesPaging(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo, nil)

	_, _, err := service.List(context.Background(), "10.0.0.1", movie.Filter{}, 50, 100)

	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
	assert.Equal(t, 100, repo.lastOffset)
}

/*
TestService_GetDetail_AttachesReviews verifies the review forest is attached
to the detail view, and a movie without reviews carries an empty array.
*/
func TestService_GetDetail_AttachesReviews(t *testing.T) {
	repo := &fakeRepository{detail: &movie.Detail{ID: 7, Title: "Solaris"}}
	reviews := &fakeReviewSource{forests: map[int][]*review.Node{
		7: {{Name: "Ann", Text: "great", Children: []*review.Node{}}},
	}}
	service := newTestService(repo, reviews)

	detail, err := service.GetDetail(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "Ann", detail.Reviews[0].Name)
}

/*
TestService_GetDetail_NotFound verifies a missing id surfaces as NOT_FOUND.
*/
func TestService_GetDetail_NotFound(t *testing.T) {
	service := newTestService(&fakeRepository{}, nil)

	_, err := service.GetDetail(context.Background(), 99)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestListItem_JSONShape pins the wire shape of a listing row: middle_star is
null (not 0) for an unrated movie, and a real average serializes as a number.
*/
func TestListItem_JSONShape(t *testing.T) {
	unrated := movie.ListItem{ID: 1, Title: "Stalker", Tagline: "zone"}
	raw, err := json.Marshal(unrated)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":1,"title":"Stalker","tagline":"zone","category":null,"rating_user":false,"middle_star":null}`,
		string(raw),
	)

	avg := 4.5
	category := "Films"
	rated := movie.ListItem{ID: 2, Title: "Mirror", Category: &category, RatingUser: true, MiddleStar: &avg}
	raw, err = json.Marshal(rated)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":2,"title":"Mirror","tagline":"","category":"Films","rating_user":true,"middle_star":4.5}`,
		string(raw),
	)
}

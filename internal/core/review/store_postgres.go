// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package review

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kinoteka/kinoteka/internal/platform/database/schema"
	"github.com/kinoteka/kinoteka/internal/platform/dberr"
	"github.com/kinoteka/kinoteka/internal/platform/validate"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) CreateReview(context context.Context, r *Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s, %s
	`,
		schema.SocialReview.Table, schema.SocialReview.Email, schema.SocialReview.Name,
		schema.SocialReview.Text, schema.SocialReview.ParentID, schema.SocialReview.MovieID,
		schema.SocialReview.CreatedAt,
		schema.SocialReview.ID, schema.SocialReview.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, r.Email, r.Name, r.Text, r.ParentID, r.MovieID).
		Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		// A foreign key violation means the caller referenced a row that does
		// not exist; report it on the offending input field.
		switch dberr.ConstraintName(err) {
		case "review_movieid_fkey":
			return validate.RequiredError(FieldMovie, "Movie does not exist")
		case "review_parentid_fkey":
			return validate.RequiredError(FieldParent, "Parent review does not exist")
		}
		return dberr.Wrap(err, "create_review")
	}
	return nil
}

func (repository *PostgresRepository) GetReview(context context.Context, id int) (*Review, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.SocialReview.ID, schema.SocialReview.Email, schema.SocialReview.Name,
		schema.SocialReview.Text, schema.SocialReview.ParentID, schema.SocialReview.MovieID,
		schema.SocialReview.CreatedAt,
		schema.SocialReview.Table, schema.SocialReview.ID,
	)

	r := &Review{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&r.ID, &r.Email, &r.Name, &r.Text, &r.ParentID, &r.MovieID, &r.CreatedAt,
	)

	return r, dberr.Wrap(err, "get_review")
}

// ListByMovie returns every review row for the movie ordered by id, which is
// the normative sibling order of the serialized forest.
func (repository *PostgresRepository) ListByMovie(context context.Context, movieID int) ([]*Review, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.SocialReview.ID, schema.SocialReview.Email, schema.SocialReview.Name,
		schema.SocialReview.Text, schema.SocialReview.ParentID, schema.SocialReview.MovieID,
		schema.SocialReview.CreatedAt,
		schema.SocialReview.Table, schema.SocialReview.MovieID, schema.SocialReview.ID,
	)

	rows, err := repository.db.Query(context, query, movieID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		r := &Review{}
		if err := rows.Scan(&r.ID, &r.Email, &r.Name, &r.Text, &r.ParentID, &r.MovieID, &r.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, r)
	}

	return reviews, nil
}

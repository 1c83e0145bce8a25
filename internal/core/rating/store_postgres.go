// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package rating

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

// UpsertRating writes the caller's vote in a single atomic statement.
//
// The unique index on (ip, movieid) turns a concurrent duplicate insert into
// a conflict, and DO UPDATE resolves the conflict by overwriting the star
// reference. Two racing requests from the same caller therefore serialize
// inside Postgres and leave exactly one row.
func (repository *PostgresRepository) UpsertRating(context context.Context, r *Rating) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s
	`,
		schema.SocialRating.Table, schema.SocialRating.IP, schema.SocialRating.StarID,
		schema.SocialRating.MovieID,
		schema.SocialRating.IP, schema.SocialRating.MovieID,
		schema.SocialRating.StarID, schema.SocialRating.StarID,
		schema.SocialRating.ID,
	)

	err := repository.db.QueryRow(context, query, r.IP, r.StarID, r.MovieID).Scan(&r.ID)
	if err != nil {
		if dberr.ConstraintName(err) == "rating_movieid_fkey" {
			return validate.RequiredError(FieldMovie, "Movie does not exist")
		}
		return dberr.Wrap(err, "upsert_rating")
	}
	return nil
}

func (repository *PostgresRepository) GetStarByValue(context context.Context, value int) (*Star, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.SocialRatingStar.ID, schema.SocialRatingStar.Value,
		schema.SocialRatingStar.Table, schema.SocialRatingStar.Value,
	)

	star := &Star{}
	err := repository.db.QueryRow(context, query, value).Scan(&star.ID, &star.Value)

	return star, dberr.Wrap(err, "get_star")
}

// ListStars returns the reference stars ordered by value descending, matching
// the catalogue's presentation order.
func (repository *PostgresRepository) ListStars(context context.Context) ([]*Star, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s DESC`,
		schema.SocialRatingStar.ID, schema.SocialRatingStar.Value,
		schema.SocialRatingStar.Table, schema.SocialRatingStar.Value,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_stars")
	}
	defer rows.Close()

	var stars []*Star
	for rows.Next() {
		star := &Star{}
		if err := rows.Scan(&star.ID, &star.Value); err != nil {
			return nil, dberr.Wrap(err, "scan_star")
		}
		stars = append(stars, star)
	}

	return stars, nil
}

package repository

import (
	"context"
	"time"

	blackhole "github.com/MohnajibG/BlackHole"

	"github.com/jmoiron/sqlx"
)

// Picture is the APOD cache, one row per calendar date.
type Picture interface {
	InsertOne(ctx context.Context, p *blackhole.ApodModel) (int64, error)
	GetByDate(ctx context.Context, date time.Time) (*blackhole.ApodModel, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]blackhole.ApodModel, error)
	DeleteByDate(ctx context.Context, date time.Time) (int64, error)
}

type Repository struct {
	Picture
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Picture: NewPostgres(db),
	}
}

package repository

import (
	"context"
	"time"

	blackhole "github.com/MohnajibG/BlackHole"
	"github.com/MohnajibG/BlackHole/pkg/consts"

	"github.com/jmoiron/sqlx"
)

const (
	queryInsert = `INSERT INTO pictures
				   ("date", title, url, hd_url, thumbnail_url, media_type, copyright, explanation)
				   VALUES($1, $2, $3, $4, $5, $6, $7, $8)
				   ON CONFLICT ("date") DO NOTHING`

	queryGetByDate = `SELECT "date", title, url, hd_url, thumbnail_url, media_type, copyright, explanation
					  FROM pictures WHERE "date" = $1`

	queryGetByDateRange = `SELECT "date", title, url, hd_url, thumbnail_url, media_type, copyright, explanation
						   FROM pictures WHERE "date" >= $1 AND "date" <= $2`

	queryDeleteByDate = `DELETE FROM pictures WHERE "date" = $1`
)

type Actions struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Actions {
	return &Actions{db}
}

func (r *Actions) InsertOne(ctx context.Context, d *blackhole.ApodModel) (int64, error) {

	result, err := r.db.ExecContext(ctx, queryInsert, d.Date, d.Title, d.URL, d.HDURL, d.ThumbURL, d.MediaType, d.Copyright, d.Explanation)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *Actions) GetByDate(ctx context.Context, date time.Time) (*blackhole.ApodModel, error) {

	var pictures []blackhole.ApodModel
	if err := r.db.SelectContext(ctx, &pictures, queryGetByDate, date.Format(consts.TimeFormat)); err != nil {
		return nil, err
	}

	if pictures == nil {
		return nil, nil
	}

	return &pictures[0], nil
}

func (r *Actions) GetByDateRange(ctx context.Context, start, end time.Time) ([]blackhole.ApodModel, error) {

	var pictures []blackhole.ApodModel
	if err := r.db.SelectContext(ctx, &pictures, queryGetByDateRange, start.Format(consts.TimeFormat), end.Format(consts.TimeFormat)); err != nil {
		return nil, err
	}

	return pictures, nil
}

func (r *Actions) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {

	res, err := r.db.ExecContext(ctx, queryDeleteByDate, date.Format(consts.TimeFormat))
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

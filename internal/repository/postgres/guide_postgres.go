package postgres

import (
	"context"
	"database/sql"

	"soscrise/internal/model"
	"soscrise/internal/repository"
)

const (
	qGuideSummaries = `
		SELECT id, title, category, difficulty, estimated_time, description
		FROM guides
		ORDER BY id ASC
	`
	qGuideByID = `
		SELECT id, title, category, difficulty, estimated_time, description, content_md
		FROM guides
		WHERE id = $1
	`
)

// GuidePostgres reads preparedness guides. The list never selects content_md.
type GuidePostgres struct {
	*Table[model.GuideSummary]
	db *sql.DB
}

// NewGuidePostgres creates a new GuidePostgres repository.
func NewGuidePostgres(db *sql.DB) *GuidePostgres {
	return &GuidePostgres{
		Table: NewTable(db, qGuideSummaries, scanGuideSummary),
		db:    db,
	}
}

var _ repository.GuideRepository = (*GuidePostgres)(nil)

// FindByID fetches a single guide with its body. It returns sql.ErrNoRows when missing.
func (r *GuidePostgres) FindByID(ctx context.Context, id int64) (*model.GuideDetail, error) {
	var g model.GuideDetail
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, qGuideByID, id).Scan(
			&g.ID,
			&g.Title,
			&g.Category,
			&g.Difficulty,
			&g.EstimatedTime,
			&g.Description,
			&g.ContentMD,
		)
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func scanGuideSummary(s scanner) (model.GuideSummary, error) {
	var g model.GuideSummary
	if err := s.Scan(
		&g.ID,
		&g.Title,
		&g.Category,
		&g.Difficulty,
		&g.EstimatedTime,
		&g.Description,
	); err != nil {
		return model.GuideSummary{}, err
	}
	return g, nil
}

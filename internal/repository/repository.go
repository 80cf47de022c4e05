package repository

import (
	"context"

	"soscrise/internal/model"
)

// Package repository contains read-only data access abstractions.
// Implementations live in subpackages (e.g., postgres).

// Lister reads every record of one entity with a fixed ordering. No filtering or paging is applied.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// GuideRepository lists guide summaries and looks up a single guide with its body.
type GuideRepository interface {
	Lister[model.GuideSummary]

	// FindByID returns sql.ErrNoRows when no guide has the given id.
	FindByID(ctx context.Context, id int64) (*model.GuideDetail, error)
}

// Repositories bundles one reader per resource collection.
type Repositories struct {
	Alerts        Lister[model.Alert]
	News          Lister[model.News]
	SupportPoints Lister[model.SupportPoint]
	Organizations Lister[model.Organization]
	SupplyNeeds   Lister[model.SupplyNeed]
	VolunteerJobs Lister[model.VolunteerJob]
	Guides        GuideRepository
}

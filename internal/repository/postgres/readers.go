package postgres

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gopkg.in/guregu/null.v3"

	"soscrise/internal/model"
	"soscrise/internal/repository"
)

// DATE and TIME columns are cast to text so they leave the store in ISO form;
// ordering still uses the native column types.
const (
	qAlerts = `
		SELECT id, title, severity, "date"::text, "time"::text, description, location, source, recommendations
		FROM alerts
		ORDER BY "date" DESC, "time" DESC
	`
	qNews = `
		SELECT id, title, summary, "date"::text, source, category, verified, url
		FROM news
		ORDER BY "date" DESC
	`
	qSupportPoints = `
		SELECT id, name, type, address, phone, services, capacity, status, hours, needed_items, latitude, longitude
		FROM support_points
		ORDER BY name ASC
	`
	qOrganizations = `
		SELECT id, name, description, focus, website, verified
		FROM organizations
		ORDER BY name ASC
	`
	qSupplyNeeds = `
		SELECT id, organization, items, urgency, location, contact, delivery_info
		FROM supply_needs
		ORDER BY id ASC
	`
	qVolunteerJobs = `
		SELECT id, organization, role, description, requirements, location, time_commitment, contact, urgent
		FROM volunteer_jobs
		ORDER BY id ASC
	`
)

var (
	_ repository.Lister[model.Alert]        = (*Table[model.Alert])(nil)
	_ repository.Lister[model.News]         = (*Table[model.News])(nil)
	_ repository.Lister[model.SupportPoint] = (*Table[model.SupportPoint])(nil)
	_ repository.Lister[model.Organization] = (*Table[model.Organization])(nil)
	_ repository.Lister[model.SupplyNeed]   = (*Table[model.SupplyNeed])(nil)
	_ repository.Lister[model.VolunteerJob] = (*Table[model.VolunteerJob])(nil)
)

// NewAlerts lists alerts, most recent first (date, then time).
func NewAlerts(db *sql.DB) *Table[model.Alert] {
	return NewTable(db, qAlerts, scanAlert)
}

// NewNews lists news items, most recent date first.
func NewNews(db *sql.DB) *Table[model.News] {
	return NewTable(db, qNews, scanNews)
}

// NewSupportPoints lists support points by name.
func NewSupportPoints(db *sql.DB) *Table[model.SupportPoint] {
	return NewTable(db, qSupportPoints, scanSupportPoint)
}

// NewOrganizations lists organizations by name.
func NewOrganizations(db *sql.DB) *Table[model.Organization] {
	return NewTable(db, qOrganizations, scanOrganization)
}

// NewSupplyNeeds lists supply needs in insertion order.
func NewSupplyNeeds(db *sql.DB) *Table[model.SupplyNeed] {
	return NewTable(db, qSupplyNeeds, scanSupplyNeed)
}

// NewVolunteerJobs lists volunteer opportunities in insertion order.
func NewVolunteerJobs(db *sql.DB) *Table[model.VolunteerJob] {
	return NewTable(db, qVolunteerJobs, scanVolunteerJob)
}

func scanAlert(s scanner) (model.Alert, error) {
	var (
		a    model.Alert
		recs pq.StringArray
	)
	if err := s.Scan(
		&a.ID,
		&a.Title,
		&a.Severity,
		&a.Date,
		&a.Time,
		&a.Description,
		&a.Location,
		&a.Source,
		&recs,
	); err != nil {
		return model.Alert{}, err
	}
	a.Recommendations = []string(recs)
	return a, nil
}

func scanNews(s scanner) (model.News, error) {
	var n model.News
	if err := s.Scan(
		&n.ID,
		&n.Title,
		&n.Summary,
		&n.Date,
		&n.Source,
		&n.Category,
		&n.Verified,
		&n.URL,
	); err != nil {
		return model.News{}, err
	}
	return n, nil
}

func scanSupportPoint(s scanner) (model.SupportPoint, error) {
	var (
		p           model.SupportPoint
		services    pq.StringArray
		neededItems pq.StringArray
		lat, lng    decimal.NullDecimal
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.Address,
		&p.Phone,
		&services,
		&p.Capacity,
		&p.Status,
		&p.Hours,
		&neededItems,
		&lat,
		&lng,
	); err != nil {
		return model.SupportPoint{}, err
	}
	p.Services = []string(services)
	p.NeededItems = []string(neededItems)
	p.Latitude = floatFromDecimal(lat)
	p.Longitude = floatFromDecimal(lng)
	return p, nil
}

func scanOrganization(s scanner) (model.Organization, error) {
	var o model.Organization
	if err := s.Scan(
		&o.ID,
		&o.Name,
		&o.Description,
		&o.Focus,
		&o.Website,
		&o.Verified,
	); err != nil {
		return model.Organization{}, err
	}
	return o, nil
}

func scanSupplyNeed(s scanner) (model.SupplyNeed, error) {
	var (
		n     model.SupplyNeed
		items pq.StringArray
	)
	if err := s.Scan(
		&n.ID,
		&n.Organization,
		&items,
		&n.Urgency,
		&n.Location,
		&n.Contact,
		&n.DeliveryInfo,
	); err != nil {
		return model.SupplyNeed{}, err
	}
	n.Items = []string(items)
	if n.Items == nil {
		n.Items = []string{}
	}
	return n, nil
}

func scanVolunteerJob(s scanner) (model.VolunteerJob, error) {
	var (
		j    model.VolunteerJob
		reqs pq.StringArray
	)
	if err := s.Scan(
		&j.ID,
		&j.Organization,
		&j.Role,
		&j.Description,
		&reqs,
		&j.Location,
		&j.TimeCommitment,
		&j.Contact,
		&j.Urgent,
	); err != nil {
		return model.VolunteerJob{}, err
	}
	j.Requirements = []string(reqs)
	return j, nil
}

// floatFromDecimal coerces a DECIMAL column into a JSON number.
func floatFromDecimal(d decimal.NullDecimal) null.Float {
	if !d.Valid {
		return null.Float{}
	}
	return null.FloatFrom(d.Decimal.InexactFloat64())
}

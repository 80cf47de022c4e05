package model

import "gopkg.in/guregu/null.v3"

// GuideSummary is the list projection of a preparedness guide. It never carries the body.
type GuideSummary struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Category      null.String `json:"category" swaggertype:"string"`
	Difficulty    null.String `json:"difficulty" swaggertype:"string"`
	EstimatedTime null.String `json:"estimated_time" swaggertype:"string"`
	Description   null.String `json:"description" swaggertype:"string"`
}

// GuideDetail is the full guide, including its markdown body.
type GuideDetail struct {
	GuideSummary
	ContentMD null.String `json:"content_md" swaggertype:"string"`
}

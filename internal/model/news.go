package model

import "gopkg.in/guregu/null.v3"

// News is a news item published about the crisis.
type News struct {
	ID       int64       `json:"id"`
	Title    string      `json:"title"`
	Summary  null.String `json:"summary" swaggertype:"string"`
	Date     null.String `json:"date" swaggertype:"string" example:"2024-05-03"`
	Source   null.String `json:"source" swaggertype:"string"`
	Category null.String `json:"category" swaggertype:"string"`
	Verified null.Bool   `json:"verified" swaggertype:"boolean"`
	URL      null.String `json:"url" swaggertype:"string"`
}

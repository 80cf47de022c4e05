package model

import "gopkg.in/guregu/null.v3"

// Alert is an emergency alert. Date is rendered as YYYY-MM-DD and Time as HH:MM:SS.
type Alert struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Severity        null.String `json:"severity" swaggertype:"string"`
	Date            null.String `json:"date" swaggertype:"string" example:"2024-05-03"`
	Time            null.String `json:"time" swaggertype:"string" example:"14:30:00"`
	Description     null.String `json:"description" swaggertype:"string"`
	Location        null.String `json:"location" swaggertype:"string"`
	Source          null.String `json:"source" swaggertype:"string"`
	Recommendations []string    `json:"recommendations"`
}

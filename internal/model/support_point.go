package model

import "gopkg.in/guregu/null.v3"

// SupportPoint is a physical location offering help (shelter, collection point, clinic...).
type SupportPoint struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Address     null.String `json:"address" swaggertype:"string"`
	Phone       null.String `json:"phone" swaggertype:"string"`
	Services    []string    `json:"services"`
	Capacity    null.String `json:"capacity" swaggertype:"string"`
	Status      null.String `json:"status" swaggertype:"string"`
	Hours       null.String `json:"hours" swaggertype:"string"`
	NeededItems []string    `json:"needed_items"`
	Latitude    null.Float  `json:"latitude" swaggertype:"number"`
	Longitude   null.Float  `json:"longitude" swaggertype:"number"`
}

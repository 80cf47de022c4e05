package model

import "gopkg.in/guregu/null.v3"

// SupplyNeed lists the items an organization is asking for. Items is never nil.
type SupplyNeed struct {
	ID           int64       `json:"id"`
	Organization string      `json:"organization"`
	Items        []string    `json:"items"`
	Urgency      null.String `json:"urgency" swaggertype:"string"`
	Location     null.String `json:"location" swaggertype:"string"`
	Contact      null.String `json:"contact" swaggertype:"string"`
	DeliveryInfo null.String `json:"delivery_info" swaggertype:"string"`
}

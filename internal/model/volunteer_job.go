package model

import "gopkg.in/guregu/null.v3"

// VolunteerJob is a volunteer opportunity offered by an organization.
type VolunteerJob struct {
	ID             int64       `json:"id"`
	Organization   string      `json:"organization"`
	Role           string      `json:"role"`
	Description    null.String `json:"description" swaggertype:"string"`
	Requirements   []string    `json:"requirements"`
	Location       null.String `json:"location" swaggertype:"string"`
	TimeCommitment null.String `json:"time_commitment" swaggertype:"string"`
	Contact        null.String `json:"contact" swaggertype:"string"`
	Urgent         null.Bool   `json:"urgent" swaggertype:"boolean"`
}

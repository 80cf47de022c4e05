package model

import "gopkg.in/guregu/null.v3"

type Organization struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description" swaggertype:"string"`
	Focus       null.String `json:"focus" swaggertype:"string"`
	Website     null.String `json:"website" swaggertype:"string"`
	Verified    null.Bool   `json:"verified" swaggertype:"boolean"`
}

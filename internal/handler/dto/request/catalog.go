package request

import "slotbook/internal/usecase/commands"

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
}

func (r CreateServiceRequest) ToInput() commands.CreateServiceInput {
	return commands.CreateServiceInput{
		Name:        r.Name,
		Description: r.Description,
		DurationMin: r.DurationMin,
		PriceCents:  r.PriceCents,
	}
}

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Title    string `json:"title,omitempty"`
	TimeZone string `json:"time_zone,omitempty"`
}

func (r CreateStaffRequest) ToInput() commands.CreateStaffInput {
	return commands.CreateStaffInput{
		Name:     r.Name,
		Title:    r.Title,
		TimeZone: r.TimeZone,
	}
}

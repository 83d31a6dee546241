package dto

import (
	"time"

	"github.com/google/uuid"

	m "messmate_backend/internals/features/organizations/model"
)

/* =============== REQUESTS =============== */

// Partial update of the rate table; only sent fields are applied.
type UpdateMessParametersRequest struct {
	BreakfastRate      *float64 `json:"daily_breakfast_rate" validate:"omitempty,gte=0"`
	LunchRate          *float64 `json:"daily_lunch_rate" validate:"omitempty,gte=0"`
	DinnerRate         *float64 `json:"daily_dinner_rate" validate:"omitempty,gte=0"`
	SpecialItemRate    *float64 `json:"special_item_rate" validate:"omitempty,gte=0"`
	SemesterHostelFee  *float64 `json:"semester_hostel_fee" validate:"omitempty,gte=0"`
	BasicMonthlyCharge *float64 `json:"basic_monthly_charge" validate:"omitempty,gte=0"`
}

func (r UpdateMessParametersRequest) ApplyTo(o *m.OrganizationModel) {
	if r.BreakfastRate != nil {
		o.OrganizationBreakfastRate = *r.BreakfastRate
	}
	if r.LunchRate != nil {
		o.OrganizationLunchRate = *r.LunchRate
	}
	if r.DinnerRate != nil {
		o.OrganizationDinnerRate = *r.DinnerRate
	}
	if r.SpecialItemRate != nil {
		o.OrganizationSpecialItemRate = *r.SpecialItemRate
	}
	if r.SemesterHostelFee != nil {
		o.OrganizationSemesterHostelFee = *r.SemesterHostelFee
	}
	if r.BasicMonthlyCharge != nil {
		o.OrganizationBasicMonthlyCharge = *r.BasicMonthlyCharge
	}
}

/* =============== RESPONSES =============== */

type OrganizationResponse struct {
	OrganizationID      uuid.UUID   `json:"organization_id"`
	OrganizationName    string      `json:"organization_name"`
	OrganizationEmail   string      `json:"organization_email"`
	OrganizationAddress *string     `json:"organization_address,omitempty"`
	MessParameters      m.MessRates `json:"mess_parameters"`
	OrganizationCreatedAt time.Time `json:"organization_created_at"`
}

func FromModel(x m.OrganizationModel) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID:        x.OrganizationID,
		OrganizationName:      x.OrganizationName,
		OrganizationEmail:     x.OrganizationEmail,
		OrganizationAddress:   x.OrganizationAddress,
		MessParameters:        x.Rates(),
		OrganizationCreatedAt: x.OrganizationCreatedAt,
	}
}

func FromModels(list []m.OrganizationModel) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}

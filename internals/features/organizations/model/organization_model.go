package model

import (
	"time"

	"github.com/google/uuid"
)

// MessRates is the organization's rate table, passed by value into token
// pricing and bill computation so those stay pure functions.
type MessRates struct {
	BreakfastRate      float64 `json:"daily_breakfast_rate"`
	LunchRate          float64 `json:"daily_lunch_rate"`
	DinnerRate         float64 `json:"daily_dinner_rate"`
	SpecialItemRate    float64 `json:"special_item_rate"`
	SemesterHostelFee  float64 `json:"semester_hostel_fee"`
	BasicMonthlyCharge float64 `json:"basic_monthly_charge"`
}

type OrganizationModel struct {
	OrganizationID uuid.UUID `gorm:"column:organization_id;type:uuid;default:gen_random_uuid();primaryKey" json:"organization_id"`

	OrganizationName    string `gorm:"column:organization_name;type:text;not null" json:"organization_name"`
	OrganizationEmail   string `gorm:"column:organization_email;size:255;unique;not null" json:"organization_email"`
	OrganizationPassword string `gorm:"column:organization_password;not null" json:"-"`
	OrganizationAddress *string `gorm:"column:organization_address;type:text" json:"organization_address,omitempty"`

	// Rate table. Defaults mirror the standard mess parameters.
	OrganizationBreakfastRate      float64 `gorm:"column:organization_breakfast_rate;not null;default:50" json:"organization_breakfast_rate"`
	OrganizationLunchRate          float64 `gorm:"column:organization_lunch_rate;not null;default:100" json:"organization_lunch_rate"`
	OrganizationDinnerRate         float64 `gorm:"column:organization_dinner_rate;not null;default:100" json:"organization_dinner_rate"`
	OrganizationSpecialItemRate    float64 `gorm:"column:organization_special_item_rate;not null;default:30" json:"organization_special_item_rate"`
	OrganizationSemesterHostelFee  float64 `gorm:"column:organization_semester_hostel_fee;not null;default:500" json:"organization_semester_hostel_fee"`
	OrganizationBasicMonthlyCharge float64 `gorm:"column:organization_basic_monthly_charge;not null;default:2000" json:"organization_basic_monthly_charge"`

	OrganizationCreatedAt time.Time `gorm:"column:organization_created_at;autoCreateTime" json:"organization_created_at"`
}

func (OrganizationModel) TableName() string { return "organizations" }

func (o OrganizationModel) Rates() MessRates {
	return MessRates{
		BreakfastRate:      o.OrganizationBreakfastRate,
		LunchRate:          o.OrganizationLunchRate,
		DinnerRate:         o.OrganizationDinnerRate,
		SpecialItemRate:    o.OrganizationSpecialItemRate,
		SemesterHostelFee:  o.OrganizationSemesterHostelFee,
		BasicMonthlyCharge: o.OrganizationBasicMonthlyCharge,
	}
}

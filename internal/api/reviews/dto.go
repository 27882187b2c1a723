package reviews

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type SubmitReviewRequest struct {
	ScriptID            string          `json:"script_id"`
	Views               float64         `json:"views"`
	RetentionPercentage float64         `json:"retention_percentage"`
	Revenue             decimal.Decimal `json:"revenue"`
	WhatWorked          string          `json:"what_worked"`
	WhatDidntWork       string          `json:"what_didnt_work"`
	ChangesForNextTime  string          `json:"changes_for_next_time"`
}

func (r SubmitReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ScriptID, validation.Required),
		validation.Field(&r.Views, validation.Min(0.0)),
		validation.Field(&r.RetentionPercentage, validation.Min(0.0), validation.Max(100.0)),
	)
}

package ideas

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	domain "scriptpilot/internal/domain/ideas"
)

type CreateIdeaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Topic       string `json:"topic"`
	Format      string `json:"format"`
	HookType    string `json:"hook_type"`
	Priority    string `json:"priority"`
}

func (r CreateIdeaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.HookType, validation.Required),
	)
}

type UpdateIdeaRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Topic       *string `json:"topic"`
	Format      *string `json:"format"`
	HookType    *string `json:"hook_type"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

func (r UpdateIdeaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.By(validStatus)),
	)
}

func validStatus(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	switch *s {
	case domain.StatusCaptured, domain.StatusValidated, domain.StatusPromoted, domain.StatusArchived:
		return nil
	}
	return validation.NewError("validation_unknown_status", "must be one of captured, validated, promoted, archived")
}

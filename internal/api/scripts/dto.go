package scripts

import (
	"time"

	domain "scriptpilot/internal/domain/scripts"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateScriptRequest struct {
	Title    string `json:"title"`
	Stage    string `json:"stage"`
	Topic    string `json:"topic"`
	Format   string `json:"format"`
	HookType string `json:"hook_type"`

	TargetLengthMinutes float64 `json:"target_length_minutes"`
	WordsPerMinute      float64 `json:"words_per_minute"`

	HookContent    string `json:"hook_content"`
	OutlineContent string `json:"outline_content"`
	ScriptContent  string `json:"script_content"`
	NotesContent   string `json:"notes_content"`

	ScheduledDate *time.Time `json:"scheduled_date"`
}

func (r CreateScriptRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Topic, validation.Required),
		validation.Field(&r.Format, validation.Required),
		validation.Field(&r.HookType, validation.Required),
		validation.Field(&r.TargetLengthMinutes, validation.Min(0.1)),
		validation.Field(&r.Stage, validation.By(optionalStage)),
	)
}

// UpdateScriptRequest uses pointers so absent fields stay untouched. Stage is
// deliberately missing: stage moves go through the transition endpoint.
type UpdateScriptRequest struct {
	Title    *string `json:"title"`
	Topic    *string `json:"topic"`
	Format   *string `json:"format"`
	HookType *string `json:"hook_type"`

	TargetLengthMinutes *float64 `json:"target_length_minutes"`
	WordsPerMinute      *float64 `json:"words_per_minute"`

	HookContent    *string `json:"hook_content"`
	OutlineContent *string `json:"outline_content"`
	ScriptContent  *string `json:"script_content"`
	NotesContent   *string `json:"notes_content"`

	ChecklistIntro *bool `json:"checklist_intro"`
	ChecklistBody  *bool `json:"checklist_body"`
	ChecklistCTA   *bool `json:"checklist_cta"`

	ScheduledDate *time.Time `json:"scheduled_date"`
}

type StageRequest struct {
	Stage string `json:"stage"`
}

func (r StageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Stage, validation.Required, validation.By(knownStage)),
	)
}

type AttachmentRequest struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

func (r AttachmentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.URL, validation.Required),
	)
}

type SnapshotRequest struct {
	Label string `json:"label"`
}

func (r SnapshotRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Label, validation.Required),
	)
}

type RestoreRequest struct {
	Index int `json:"index"`
}

func knownStage(value interface{}) error {
	s, _ := value.(string)
	if !domain.Stage(s).Valid() {
		return validation.NewError("validation_unknown_stage", "must be one of idea, draft, editing, ready, published")
	}
	return nil
}

func optionalStage(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	return knownStage(value)
}

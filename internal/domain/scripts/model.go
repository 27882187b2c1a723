package scripts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stage is one of the five fixed pipeline positions a script occupies.
type Stage string

const (
	StageIdea      Stage = "idea"
	StageDraft     Stage = "draft"
	StageEditing   Stage = "editing"
	StageReady     Stage = "ready"
	StagePublished Stage = "published"
)

var Stages = []Stage{StageIdea, StageDraft, StageEditing, StageReady, StagePublished}

func (s Stage) Valid() bool {
	for _, known := range Stages {
		if s == known {
			return true
		}
	}
	return false
}

// Attachment is a descriptor for a file stored by an external collaborator;
// only the reference lives here.
type Attachment struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// Version is a labeled snapshot of the four content fields.
type Version struct {
	Label          string    `json:"label"`
	Timestamp      time.Time `json:"timestamp"`
	HookContent    string    `json:"hook_content"`
	OutlineContent string    `json:"outline_content"`
	ScriptContent  string    `json:"script_content"`
	NotesContent   string    `json:"notes_content"`
}

type Script struct {
	ID      string  `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID string  `gorm:"not null;index" json:"-"`
	IdeaID  *string `gorm:"type:uuid;index" json:"idea_id,omitempty"`

	Title string `gorm:"not null" json:"title"`
	Stage Stage  `gorm:"type:text;not null;default:'idea';index" json:"stage"`

	Topic    string `json:"topic,omitempty"`
	Format   string `json:"format,omitempty"`
	HookType string `json:"hook_type,omitempty"`

	TargetLengthMinutes float64 `gorm:"not null;default:0" json:"target_length_minutes"`
	WordsPerMinute      float64 `gorm:"not null;default:150" json:"words_per_minute"`

	HookContent    string `json:"hook_content,omitempty"`
	OutlineContent string `json:"outline_content,omitempty"`
	ScriptContent  string `json:"script_content,omitempty"`
	NotesContent   string `json:"notes_content,omitempty"`

	ChecklistIntro bool `gorm:"not null;default:false" json:"checklist_intro"`
	ChecklistBody  bool `gorm:"not null;default:false" json:"checklist_body"`
	ChecklistCTA   bool `gorm:"column:checklist_cta;not null;default:false" json:"checklist_cta"`

	Attachments []Attachment `gorm:"serializer:json" json:"attachments"`
	Versions    []Version    `gorm:"serializer:json" json:"versions"`

	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	LastEdited    time.Time  `json:"last_edited"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Script) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.LastEdited.IsZero() {
		s.LastEdited = time.Now()
	}
	return nil
}

// Snapshot appends a labeled copy of the current content fields.
func (s *Script) Snapshot(label string) Version {
	v := Version{
		Label:          label,
		Timestamp:      time.Now(),
		HookContent:    s.HookContent,
		OutlineContent: s.OutlineContent,
		ScriptContent:  s.ScriptContent,
		NotesContent:   s.NotesContent,
	}
	s.Versions = append(s.Versions, v)
	return v
}

// Restore copies a version's content fields back onto the script. The version
// list itself is untouched.
func (s *Script) Restore(v Version) {
	s.HookContent = v.HookContent
	s.OutlineContent = v.OutlineContent
	s.ScriptContent = v.ScriptContent
	s.NotesContent = v.NotesContent
}

package models

import "strings"

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusInReview   TaskStatus = "in_review"
	TaskStatusDone       TaskStatus = "done"
)

// Project is the top-level container for a specification and its plan.
type Project struct {
	ID          int64     `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description *string   `json:"description" yaml:"description"`
	OwnerID     int64     `json:"owner_id" yaml:"owner_id"`
	SpecContent *string   `json:"spec_content,omitempty" yaml:"spec_content,omitempty"`
	CreatedAt   Timestamp `json:"created_at" yaml:"created_at"`
}

// HasSpec reports whether the backend has anything to generate a plan from.
// The backend falls back to the description when no spec was uploaded.
func (p *Project) HasSpec() bool {
	return nonBlank(p.SpecContent) || nonBlank(p.Description)
}

// ProjectCreate is the body of POST /projects. Description is always sent,
// even when empty.
type ProjectCreate struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Epic is the top level of the work breakdown. EstimatedEffort is in story points.
type Epic struct {
	ID              int64     `json:"id" yaml:"id"`
	ProjectID       int64     `json:"project_id" yaml:"project_id"`
	Title           string    `json:"title" yaml:"title"`
	Description     *string   `json:"description" yaml:"description"`
	Priority        Priority  `json:"priority" yaml:"priority"`
	EstimatedEffort *float64  `json:"estimated_effort" yaml:"estimated_effort"`
	CreatedAt       Timestamp `json:"created_at" yaml:"created_at"`
}

type Story struct {
	ID                 int64     `json:"id" yaml:"id"`
	EpicID             int64     `json:"epic_id" yaml:"epic_id"`
	Title              string    `json:"title" yaml:"title"`
	Description        *string   `json:"description" yaml:"description"`
	AcceptanceCriteria *string   `json:"acceptance_criteria" yaml:"acceptance_criteria"`
	Priority           Priority  `json:"priority" yaml:"priority"`
	EstimatedEffort    *float64  `json:"estimated_effort" yaml:"estimated_effort"`
	CreatedAt          Timestamp `json:"created_at" yaml:"created_at"`
}

// Task is the leaf of the work breakdown. Estimates are in hours.
type Task struct {
	ID             int64      `json:"id" yaml:"id"`
	StoryID        int64      `json:"story_id" yaml:"story_id"`
	Title          string     `json:"title" yaml:"title"`
	Description    *string    `json:"description" yaml:"description"`
	Status         TaskStatus `json:"status" yaml:"status"`
	Priority       Priority   `json:"priority" yaml:"priority"`
	EstimatedHours *float64   `json:"estimated_hours" yaml:"estimated_hours"`
	ActualHours    *float64   `json:"actual_hours" yaml:"actual_hours"`
	Assignee       *string    `json:"assignee" yaml:"assignee"`
	CreatedAt      Timestamp  `json:"created_at" yaml:"created_at"`
}

// UploadResult acknowledges an uploaded specification.
type UploadResult struct {
	Message       string `json:"message" yaml:"message"`
	ContentLength int    `json:"content_length" yaml:"content_length"`
}

func nonBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

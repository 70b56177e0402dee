package models

// Sprint is a named group of tasks with optional scheduling dates.
type Sprint struct {
	ID             int64      `json:"id"`
	ProjectID      int64      `json:"project_id"`
	Name           string     `json:"name"`
	StartDate      *Timestamp `json:"start_date"`
	EndDate        *Timestamp `json:"end_date"`
	Velocity       *float64   `json:"velocity"`
	ActualVelocity *float64   `json:"actual_velocity"`
	CreatedAt      Timestamp  `json:"created_at"`
}

// SprintCreate is the body of POST /sprints.
type SprintCreate struct {
	Name      string     `json:"name"`
	TaskIDs   []int64    `json:"task_ids"`
	StartDate *Timestamp `json:"start_date,omitempty"`
	EndDate   *Timestamp `json:"end_date,omitempty"`
}

// GenerationResult summarises a generated sprint plan.
type GenerationResult struct {
	ProjectID          int64          `json:"project_id"`
	Epics              int            `json:"epics"`
	Stories            int            `json:"stories"`
	Tasks              int            `json:"tasks"`
	TotalEffort        float64        `json:"total_effort"`
	PredictedVelocity  float64        `json:"predicted_velocity"`
	EstimatedSprints   int            `json:"estimated_sprints"`
	Timeline           map[string]any `json:"timeline,omitempty"`
	VelocityPrediction map[string]any `json:"velocity_prediction,omitempty"`
}

package domain

import (
	"context"
	"time"
)

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
	JobStatusDraft    JobStatus = "draft"
)

// JobTypes are the options offered by the admin job form.
var JobTypes = []string{"Full-time", "Part-time", "Contract", "Remote"}

type Job struct {
	ID          int64     `json:"id,omitempty"`
	Logo        string    `json:"logo"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	Type        string    `json:"type"`
	Description []string  `json:"description"`
	Status      JobStatus `json:"status,omitempty"`
	CreatedAt   string    `json:"createdAt,omitempty"`
}

// DisplayStatus treats jobs stored without a status as active.
func (j Job) DisplayStatus() JobStatus {
	if j.Status == "" {
		return JobStatusActive
	}
	return j.Status
}

// DisplayCreatedAt falls back to today's date for jobs stored without one.
func (j Job) DisplayCreatedAt() string {
	if j.CreatedAt == "" {
		return time.Now().Format("2006-01-02")
	}
	return j.CreatedAt
}

// CanToggle reports whether the active/inactive switch applies; drafts have none.
func (j Job) CanToggle() bool {
	return j.DisplayStatus() != JobStatusDraft
}

type JobAction string

const (
	JobActionPublish JobAction = "publish"
	JobActionDraft   JobAction = "draft"
)

// JobForm is the admin "create a new job" form.
type JobForm struct {
	JobName        string `form:"job_name"`
	JobType        string `form:"job_type"`
	JobDescription string `form:"job_description"`
	NumCandidates  string `form:"num_candidates"`
	MinSalary      string `form:"min_salary"`
	MaxSalary      string `form:"max_salary"`
}

type JobRepository = Repository[Job]

type JobUsecase interface {
	ListJobs(ctx context.Context, activeOnly bool) ([]Job, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	CreateJob(ctx context.Context, form *JobForm, action JobAction) (*Job, error)
	ToggleStatus(ctx context.Context, id int64, status JobStatus) (*Job, error)
}

package domain

import (
	"context"
	"strconv"
	"time"
)

// Domicile options offered by the application form.
var Domiciles = []string{"Jakarta", "Bandung", "Surabaya", "Medan", "Yogyakarta", "Other"}

// Gender options offered by the application form.
var Genders = []string{"female", "male"}

type JobApplication struct {
	ID        int64  `json:"id,omitempty"`
	JobID     int64  `json:"jobId" validate:"required"`
	Name      string `json:"name" form:"name" validate:"required"`
	Birth     string `json:"birth" form:"birth" validate:"required"`
	Gender    string `json:"gender" form:"gender" validate:"required"`
	Domicile  string `json:"domicile" form:"domicile" validate:"required"`
	Phone     string `json:"phone" form:"phone" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required"`
	Linkedin  string `json:"linkedin" form:"linkedin" validate:"required"`
	Photo     string `json:"photo,omitempty" form:"photo"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// BirthDisplay renders the birth date as d/m/yyyy, or as stored when it does not parse.
func (a JobApplication) BirthDisplay() string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, a.Birth); err == nil {
			return strconv.Itoa(t.Day()) + "/" + strconv.Itoa(int(t.Month())) + "/" + strconv.Itoa(t.Year())
		}
	}
	return a.Birth
}

// LinkedinDisplay is the roster label for the profile link: the first 30
// characters followed by an ellipsis.
func (a JobApplication) LinkedinDisplay() string {
	runes := []rune(a.Linkedin)
	if len(runes) > 30 {
		runes = runes[:30]
	}
	return string(runes) + "..."
}

type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportCSV  ExportFormat = "csv"
)

// ExportFile is a rendered applicant roster ready to be downloaded.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ApplicationRepository = Repository[JobApplication]

type ApplicationUsecase interface {
	Submit(ctx context.Context, app *JobApplication) (*JobApplication, error)
	ListByJob(ctx context.Context, jobID int64) ([]JobApplication, error)
	Export(ctx context.Context, job *Job, format ExportFormat) (*ExportFile, error)
}

package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/pkg/apperror"
	"go-jobboard-portal/pkg/logger"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	MsgJobsLoadFailed      = "Gagal memuat data lowongan"
	MsgJobNameRequired     = "Job Name is required"
	MsgJobDescRequired     = "Job Description is required"
	MsgPublishFailed       = "Failed to publish job. Please try again."
	MsgDraftFailed         = "Failed to save draft. Please try again."
	MsgJobCreated          = "Job vacancy successfully created"
	MsgJobStatusUpdated    = "Job status updated"
	MsgJobStatusFailed     = "Failed to update job status"
	MsgDraftStatusReadOnly = "Cannot change draft status"
	MsgJobNotFound         = "Job not found"
)

// JobDefaults are stamped on every job created from the admin form.
type JobDefaults struct {
	Company  string
	Location string
	Logo     string
	// Now is used for createdAt; defaults to time.Now.
	Now func() time.Time
}

type jobUsecase struct {
	jobRepo  domain.JobRepository
	defaults JobDefaults
}

func NewJobUsecase(jobRepo domain.JobRepository, defaults JobDefaults) domain.JobUsecase {
	if defaults.Now == nil {
		defaults.Now = time.Now
	}
	return &jobUsecase{jobRepo: jobRepo, defaults: defaults}
}

func (u *jobUsecase) ListJobs(ctx context.Context, activeOnly bool) ([]domain.Job, error) {
	// Always unfiltered: jobs stored without a status count as active and an
	// equality filter on the store would drop them.
	jobs, err := u.jobRepo.List(ctx, nil)
	if err != nil {
		logger.Log.Error("Failed to load jobs", "error", err)
		return nil, apperror.BadGateway(MsgJobsLoadFailed, err)
	}
	if !activeOnly {
		return jobs, nil
	}

	active := jobs[:0]
	for _, job := range jobs {
		if job.DisplayStatus() == domain.JobStatusActive {
			active = append(active, job)
		}
	}
	return active, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound(MsgJobNotFound)
	}
	if err != nil {
		logger.Log.Error("Failed to load job", "job_id", id, "error", err)
		return nil, apperror.BadGateway(MsgJobsLoadFailed, err)
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, form *domain.JobForm, action domain.JobAction) (*domain.Job, error) {
	if strings.TrimSpace(form.JobName) == "" {
		return nil, apperror.BadRequest(MsgJobNameRequired)
	}
	if action == domain.JobActionPublish && strings.TrimSpace(form.JobDescription) == "" {
		return nil, apperror.BadRequest(MsgJobDescRequired)
	}

	job := u.buildJob(form)
	if action == domain.JobActionDraft {
		job.Status = domain.JobStatusDraft
	}

	created, err := u.jobRepo.Create(ctx, job)
	if err != nil {
		msg := MsgPublishFailed
		if action == domain.JobActionDraft {
			msg = MsgDraftFailed
		}
		logger.Log.Error("Failed to create job", "action", action, "error", err)
		return nil, apperror.BadGateway(msg, err)
	}
	return created, nil
}

func (u *jobUsecase) ToggleStatus(ctx context.Context, id int64, status domain.JobStatus) (*domain.Job, error) {
	if status != domain.JobStatusActive && status != domain.JobStatusInactive {
		return nil, apperror.BadRequest(MsgJobStatusFailed)
	}

	job, err := u.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.CanToggle() {
		return nil, apperror.BadRequest(MsgDraftStatusReadOnly)
	}

	updated, err := u.jobRepo.Patch(ctx, id, map[string]interface{}{"status": status})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(MsgJobNotFound)
		}
		logger.Log.Error("Failed to update job status", "job_id", id, "status", status, "error", err)
		return nil, apperror.BadGateway(MsgJobStatusFailed, err)
	}
	return updated, nil
}

// buildJob derives the stored job from the form. A job goes live only when
// both salary bounds are filled and at least one candidate is wanted.
func (u *jobUsecase) buildJob(form *domain.JobForm) *domain.Job {
	minSalary := strings.TrimSpace(form.MinSalary)
	maxSalary := strings.TrimSpace(form.MaxSalary)
	candidates, _ := leadingInt(form.NumCandidates)

	status := domain.JobStatusDraft
	if minSalary != "" && maxSalary != "" && candidates > 0 {
		status = domain.JobStatusActive
	}

	var salary string
	if minSalary != "" && maxSalary != "" {
		salary = FormatSalaryRange(minSalary, maxSalary)
	}

	return &domain.Job{
		Logo:        u.defaults.Logo,
		Title:       form.JobName,
		Company:     u.defaults.Company,
		Location:    u.defaults.Location,
		Salary:      salary,
		Type:        form.JobType,
		Description: DescriptionLines(form.JobDescription),
		Status:      status,
		CreatedAt:   u.defaults.Now().UTC().Format("2006-01-02"),
	}
}

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatSalaryRange renders "Rp7.000.000 - Rp8.000.000" from raw inputs.
func FormatSalaryRange(minSalary, maxSalary string) string {
	return formatRupiah(minSalary) + " - " + formatRupiah(maxSalary)
}

func formatRupiah(raw string) string {
	n, ok := leadingInt(raw)
	if !ok {
		return "Rp" + strings.TrimSpace(raw)
	}
	return "Rp" + idPrinter.Sprintf("%d", n)
}

// leadingInt parses the integer prefix of s, ignoring anything after it.
func leadingInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DescriptionLines splits a textarea into its non-blank lines.
func DescriptionLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// FilterByTitle keeps jobs whose title contains q, ignoring case.
func FilterByTitle(jobs []domain.Job, q string) []domain.Job {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return jobs
	}
	out := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if strings.Contains(strings.ToLower(job.Title), q) {
			out = append(out, job)
		}
	}
	return out
}

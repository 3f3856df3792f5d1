package web

import (
	"fmt"
	"net/http"
	"net/url"

	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/internal/usecase"
	"go-jobboard-portal/pkg/apperror"
	"go-jobboard-portal/pkg/media"

	"github.com/gin-gonic/gin"
)

const thumbnailSize = 64

type adminJobsView struct {
	Page
	Jobs      []domain.Job
	Total     int
	Query     string
	LoadError string
	Form      domain.JobForm
	FormOpen  bool
	JobTypes  []string
}

type candidateRow struct {
	domain.JobApplication
	Thumbnail string
}

type manageJobView struct {
	Page
	Job        *domain.Job
	NotFound   bool
	Candidates []candidateRow
	LoadError  string
}

type AdminHandler struct {
	*handler
	jobUC domain.JobUsecase
	appUC domain.ApplicationUsecase
}

func NewAdminHandler(base *handler, jobUC domain.JobUsecase, appUC domain.ApplicationUsecase) *AdminHandler {
	return &AdminHandler{handler: base, jobUC: jobUC, appUC: appUC}
}

func (h *AdminHandler) List(c *gin.Context) {
	view := h.listView(c, domain.JobForm{JobType: domain.JobTypes[0], NumCandidates: "1"})
	c.HTML(http.StatusOK, "admin_jobs.html", view)
}

func (h *AdminHandler) listView(c *gin.Context, form domain.JobForm) adminJobsView {
	view := adminJobsView{
		Page:     h.page(c, "Job List"),
		Query:    c.Query("q"),
		Form:     form,
		JobTypes: domain.JobTypes,
	}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), false)
	if err != nil {
		view.LoadError = messageOf(err)
		return view
	}
	view.Total = len(jobs)
	view.Jobs = usecase.FilterByTitle(jobs, view.Query)
	return view
}

// Create handles both buttons of the new job form.
func (h *AdminHandler) Create(c *gin.Context) {
	var form domain.JobForm
	_ = bindForm(c, &form)

	action := domain.JobActionPublish
	if c.PostForm("action") == string(domain.JobActionDraft) {
		action = domain.JobActionDraft
	}

	if _, err := h.jobUC.CreateJob(c.Request.Context(), &form, action); err != nil {
		view := h.listView(c, form)
		view.FormOpen = true
		view.Error = messageOf(err)
		c.HTML(apperror.CodeOf(err), "admin_jobs.html", view)
		return
	}

	h.flash(c, flashSuccess, usecase.MsgJobCreated)
	c.Redirect(http.StatusSeeOther, "/admin/jobs")
}

// ToggleStatus persists the new status, then sends the browser back to a
// list freshly loaded from the store.
func (h *AdminHandler) ToggleStatus(c *gin.Context) {
	target := "/admin/jobs"
	if q := c.PostForm("q"); q != "" {
		target += "?" + url.Values{"q": {q}}.Encode()
	}

	id, ok := parseID(c.Param("id"))
	if !ok {
		h.flash(c, flashError, usecase.MsgJobNotFound)
		c.Redirect(http.StatusSeeOther, target)
		return
	}

	status := domain.JobStatus(c.PostForm("status"))
	if _, err := h.jobUC.ToggleStatus(c.Request.Context(), id, status); err != nil {
		h.flash(c, flashError, messageOf(err))
		c.Redirect(http.StatusSeeOther, target)
		return
	}

	h.flash(c, flashSuccess, usecase.MsgJobStatusUpdated)
	c.Redirect(http.StatusSeeOther, target)
}

func (h *AdminHandler) ManageJob(c *gin.Context) {
	view := manageJobView{Page: h.page(c, "Manage Candidate")}

	job, err := h.loadJob(c)
	if err != nil {
		view.NotFound = isNotFound(err)
		view.Error = messageOf(err)
		c.HTML(apperror.CodeOf(err), "manage_job.html", view)
		return
	}
	view.Job = job
	view.Title = job.Title

	apps, err := h.appUC.ListByJob(c.Request.Context(), job.ID)
	if err != nil {
		view.LoadError = messageOf(err)
		c.HTML(http.StatusOK, "manage_job.html", view)
		return
	}

	view.Candidates = make([]candidateRow, 0, len(apps))
	for _, app := range apps {
		view.Candidates = append(view.Candidates, candidateRow{JobApplication: app, Thumbnail: thumbnail(app.Photo)})
	}
	c.HTML(http.StatusOK, "manage_job.html", view)
}

// Export downloads the applicant roster as xlsx (default) or csv.
func (h *AdminHandler) Export(c *gin.Context) {
	job, err := h.loadJob(c)
	if err != nil {
		h.renderError(c, err, "/admin/jobs")
		return
	}

	file, err := h.appUC.Export(c.Request.Context(), job, domain.ExportFormat(c.DefaultQuery("format", string(domain.ExportXLSX))))
	if err != nil {
		h.renderError(c, err, fmt.Sprintf("/admin/manage-job/%d", job.ID))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func (h *AdminHandler) loadJob(c *gin.Context) (*domain.Job, error) {
	id, ok := parseID(c.Param("jobId"))
	if !ok {
		return nil, apperror.NotFound(usecase.MsgJobNotFound)
	}
	return h.jobUC.GetJob(c.Request.Context(), id)
}

// thumbnail shrinks a stored photo for the roster, falling back to the
// original when it cannot be decoded.
func thumbnail(photo string) string {
	if photo == "" {
		return ""
	}
	thumb, err := media.ThumbnailDataURI(photo, thumbnailSize)
	if err != nil {
		return photo
	}
	return thumb
}

package web

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go-jobboard-portal/internal/delivery/http/middleware"
	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/pkg/apperror"
	"go-jobboard-portal/pkg/logger"
	"go-jobboard-portal/pkg/media"
	"go-jobboard-portal/pkg/validation"

	"github.com/gin-gonic/gin"
)

// noSelection is the cursor value that deselects every job.
const noSelection = "none"

// MsgFormUnreadable is shown when an upload arrives malformed or truncated.
const MsgFormUnreadable = "Formulir tidak dapat dibaca, silakan coba lagi"

type jobsView struct {
	Page
	Jobs       []domain.Job
	Selected   *domain.Job
	SelectedID int64
	LoadError  string
}

type applyView struct {
	Page
	JobID     int64
	Job       *domain.Job
	NotFound  bool
	Form      domain.JobApplication
	Genders   []string
	Domiciles []string
}

type successView struct {
	Page
	RedirectSecs int
}

type JobHandler struct {
	*handler
	jobUC        domain.JobUsecase
	appUC        domain.ApplicationUsecase
	activeOnly   bool
	redirectSecs int
}

func NewJobHandler(base *handler, jobUC domain.JobUsecase, appUC domain.ApplicationUsecase, activeOnly bool, redirectSecs int) *JobHandler {
	return &JobHandler{handler: base, jobUC: jobUC, appUC: appUC, activeOnly: activeOnly, redirectSecs: redirectSecs}
}

// List renders the job list with one selected job. ?job=<id> moves the
// cursor, ?job=none clears it and no parameter selects the first job.
func (h *JobHandler) List(c *gin.Context) {
	view := jobsView{Page: h.page(c, "Job List")}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), h.activeOnly)
	if err != nil {
		view.LoadError = messageOf(err)
		c.HTML(http.StatusOK, "jobs.html", view)
		return
	}
	view.Jobs = jobs

	view.Selected = selectJob(jobs, c.Query("job"))
	if view.Selected != nil {
		view.SelectedID = view.Selected.ID
	}
	c.HTML(http.StatusOK, "jobs.html", view)
}

func selectJob(jobs []domain.Job, cursor string) *domain.Job {
	if len(jobs) == 0 || cursor == noSelection {
		return nil
	}
	if cursor == "" {
		return &jobs[0]
	}
	id, ok := parseID(cursor)
	if !ok {
		return nil
	}
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i]
		}
	}
	return nil
}

func (h *JobHandler) ShowApply(c *gin.Context) {
	view := h.loadApplyView(c)
	if view.Job == nil {
		h.renderApply(c, view)
		return
	}
	c.HTML(http.StatusOK, "apply.html", view)
}

// Apply handles both buttons of the application form: "photo" turns the
// uploaded picture into a preview and keeps the other fields, "submit"
// creates the application.
func (h *JobHandler) Apply(c *gin.Context) {
	view := h.loadApplyView(c)
	if view.Job == nil {
		h.renderApply(c, view)
		return
	}

	if err := bindForm(c, &view.Form); err != nil {
		view.Form.JobID = view.JobID
		view.Error = MsgFormUnreadable
		c.HTML(http.StatusBadRequest, "apply.html", view)
		return
	}
	view.Form.JobID = view.JobID

	if fh, err := c.FormFile("photo_file"); err == nil && fh.Size > 0 {
		uri, err := readPhoto(fh)
		if err != nil {
			logger.Log.Warn("Failed to read uploaded photo", "error", err)
		} else {
			view.Form.Photo = uri
		}
	}

	if c.PostForm("action") == "photo" {
		c.HTML(http.StatusOK, "apply.html", view)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.appUC.Submit(ctx, &view.Form); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest && appErr.Err != nil {
			h.secLog.LogValidationFailed(ctx, "application", c.ClientIP(), middleware.GetRequestID(c), validation.FormatValidationErrors(appErr.Err))
		}
		view.Error = messageOf(err)
		c.HTML(apperror.CodeOf(err), "apply.html", view)
		return
	}

	c.Redirect(http.StatusSeeOther, "/success")
}

// loadApplyView resolves the job named in the path. A nil Job means the page
// shows an empty state instead of the form.
func (h *JobHandler) loadApplyView(c *gin.Context) applyView {
	view := applyView{
		Page:      h.page(c, "Apply"),
		Genders:   domain.Genders,
		Domiciles: domain.Domiciles,
	}

	id, ok := parseID(c.Param("id"))
	if !ok {
		view.NotFound = true
		return view
	}
	view.JobID = id

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		view.NotFound = isNotFound(err)
		view.Error = messageOf(err)
		return view
	}
	view.Job = job
	view.Title = "Apply " + job.Title
	return view
}

func (h *JobHandler) renderApply(c *gin.Context, view applyView) {
	status := http.StatusBadGateway
	if view.NotFound {
		status = http.StatusNotFound
	}
	c.HTML(status, "apply.html", view)
}

func readPhoto(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return media.EncodeDataURI(raw), nil
}

// Success confirms the application and sends the browser back to the job list.
func (h *JobHandler) Success(c *gin.Context) {
	c.Header("Refresh", fmt.Sprintf("%d; url=/jobs", h.redirectSecs))
	c.HTML(http.StatusOK, "success.html", successView{
		Page:         h.page(c, "Application Sent"),
		RedirectSecs: h.redirectSecs,
	})
}

package web

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"go-jobboard-portal/internal/delivery/http/middleware"
	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/internal/session"
	"go-jobboard-portal/pkg/apperror"
	"go-jobboard-portal/pkg/logger"
	"go-jobboard-portal/pkg/security"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	flashSuccess = "success"
	flashError   = "error"
)

// Page carries what every template needs.
type Page struct {
	Title     string
	Session   domain.Session
	CSRFToken string
	Flash     *session.Flash
	Error     string
}

// errorView backs the generic error and 404 page.
type errorView struct {
	Page
	Heading string
	Message string
	BackURL string
}

var templateFuncs = template.FuncMap{
	"statusLabel": statusLabel,
	"isActive":    func(s domain.JobStatus) bool { return s == domain.JobStatusActive },
	"imageURI":    imageURI,
}

// statusLabel title-cases a job status. Casers keep state, so each call gets its own.
func statusLabel(s domain.JobStatus) string {
	return cases.Title(language.English).String(string(s))
}

// imageURI lets inline image data URIs through html/template, which would
// otherwise replace them in src attributes. Anything else renders empty.
func imageURI(uri string) template.URL {
	if strings.HasPrefix(uri, "data:image/") {
		return template.URL(uri)
	}
	return ""
}

// handler holds what the portal handlers share.
type handler struct {
	sessions *session.Manager
	secLog   *security.SecurityLogger
}

// page builds the common view model. It consumes the pending flash, so it
// must run before anything is written to the response.
func (h *handler) page(c *gin.Context, title string) Page {
	return Page{
		Title:     title,
		Session:   middleware.CurrentSession(c),
		CSRFToken: middleware.CSRFToken(c),
		Flash:     h.sessions.PopFlash(c),
	}
}

func (h *handler) flash(c *gin.Context, kind, message string) {
	if err := h.sessions.Flash(c, kind, message); err != nil {
		logger.Log.Error("Failed to store flash message", "error", err)
	}
}

func (h *handler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", errorView{
		Page:    h.page(c, "Not Found"),
		Heading: "404 - Not Found",
		BackURL: "/",
	})
}

func (h *handler) renderError(c *gin.Context, err error, backURL string) {
	c.HTML(apperror.CodeOf(err), "error.html", errorView{
		Page:    h.page(c, "Error"),
		Heading: messageOf(err),
		BackURL: backURL,
	})
}

// bindForm fills obj from the request form. Forms carry no binding rules, so
// an error here means the body itself could not be read or converted.
func bindForm(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBind(obj); err != nil {
		logger.Log.Debug("Failed to bind form", "path", c.FullPath(), "request_id", middleware.GetRequestID(c), "error", err)
		return err
	}
	return nil
}

// messageOf is the user-facing text of err.
func messageOf(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}

func isNotFound(err error) bool {
	return apperror.CodeOf(err) == http.StatusNotFound
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

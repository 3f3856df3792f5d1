package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"go-jobboard-portal/config"
	"go-jobboard-portal/internal/delivery/http/middleware"
	"go-jobboard-portal/internal/delivery/http/response"
	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/internal/session"
	"go-jobboard-portal/internal/usecase"
	"go-jobboard-portal/pkg/metrics"
	"go-jobboard-portal/pkg/security"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	HealthUC      usecase.HealthUsecase
	Sessions      *session.Manager
	SecurityLog   *security.SecurityLogger
	Metrics       *metrics.HTTP
	Config        *config.Config
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"))
}

// NewRouter builds the server-rendered portal.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(Templates())

	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.CookieSecure))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/healthz", func(c *gin.Context) {
		if deps.HealthUC == nil {
			response.Health(c, nil, true)
			return
		}
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		response.Health(c, status, healthy)
	})

	// Everything below reads the browser session.
	r.Use(deps.Sessions.Middleware())
	if deps.Config.CSRFEnabled {
		r.Use(middleware.CSRFMiddleware(deps.Config.CookieSecure))
	}
	r.Use(middleware.SessionContext(deps.Sessions))

	base := &handler{sessions: deps.Sessions, secLog: deps.SecurityLog}
	auth := NewAuthHandler(base, deps.AuthUC)
	jobs := NewJobHandler(base, deps.JobUC, deps.ApplicationUC, deps.Config.PublicJobsActiveOnly, deps.Config.SuccessRedirectSecs)
	admin := NewAdminHandler(base, deps.JobUC, deps.ApplicationUC)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.GET("/register", auth.ShowRegister)
	r.POST("/register", auth.Register)
	r.POST("/logout", auth.Logout)

	user := r.Group("/")
	user.Use(middleware.RequireAuth(deps.SecurityLog))
	{
		user.GET("/jobs", jobs.List)
		user.GET("/apply/:id", jobs.ShowApply)
		user.POST("/apply/:id", jobs.Apply)
		user.GET("/success", jobs.Success)
	}

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(deps.SecurityLog))
	{
		adminGroup.GET("/jobs", admin.List)
		adminGroup.POST("/jobs", admin.Create)
		adminGroup.POST("/jobs/:id/status", admin.ToggleStatus)
		adminGroup.GET("/manage-job/:jobId", admin.ManageJob)
		adminGroup.GET("/manage-job/:jobId/export", admin.Export)
	}

	r.NoRoute(base.notFound)

	return r
}

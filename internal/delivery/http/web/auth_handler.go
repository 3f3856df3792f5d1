package web

import (
	"net/http"

	"go-jobboard-portal/internal/delivery/http/middleware"
	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/internal/usecase"
	"go-jobboard-portal/pkg/apperror"
	"go-jobboard-portal/pkg/logger"

	"github.com/gin-gonic/gin"
)

type loginView struct {
	Page
	Email string
}

type registerView struct {
	Page
	Form domain.RegisterRequest
}

type AuthHandler struct {
	*handler
	authUC domain.AuthUsecase
}

func NewAuthHandler(base *handler, authUC domain.AuthUsecase) *AuthHandler {
	return &AuthHandler{handler: base, authUC: authUC}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", loginView{Page: h.page(c, "Masuk ke Rakamin")})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var creds domain.Credentials
	_ = bindForm(c, &creds)

	ctx := c.Request.Context()
	reqID := middleware.GetRequestID(c)

	res, err := h.authUC.Login(ctx, creds)
	if err != nil {
		h.secLog.LogLoginFailed(ctx, creds.Email, c.ClientIP(), c.Request.UserAgent(), reqID, messageOf(err))
		view := loginView{Page: h.page(c, "Masuk ke Rakamin"), Email: creds.Email}
		view.Error = messageOf(err)
		c.HTML(apperror.CodeOf(err), "login.html", view)
		return
	}

	if err := h.sessions.Login(c, res); err != nil {
		logger.Log.Error("Failed to store session", "error", err)
		view := loginView{Page: h.page(c, "Masuk ke Rakamin"), Email: creds.Email}
		view.Error = usecase.MsgLoginFailed
		c.HTML(http.StatusInternalServerError, "login.html", view)
		return
	}
	h.flash(c, flashSuccess, res.Message)
	h.secLog.LogLoginSuccess(ctx, creds.Email, string(res.Role), c.ClientIP(), reqID)

	c.Redirect(http.StatusSeeOther, res.RedirectTo())
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", registerView{Page: h.page(c, "Bergabung dengan Rakamin")})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	_ = bindForm(c, &req)

	ctx := c.Request.Context()
	msg, err := h.authUC.Register(ctx, &req)
	if err != nil {
		h.secLog.LogRegisterFailed(ctx, req.Email, c.ClientIP(), middleware.GetRequestID(c), messageOf(err))
		// Passwords are never echoed back into the form.
		view := registerView{
			Page: h.page(c, "Bergabung dengan Rakamin"),
			Form: domain.RegisterRequest{Name: req.Name, Email: req.Email},
		}
		view.Error = messageOf(err)
		c.HTML(apperror.CodeOf(err), "register.html", view)
		return
	}

	h.flash(c, flashSuccess, msg)
	c.Redirect(http.StatusSeeOther, "/login")
}

// Logout clears the session for users and admins alike.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := h.sessions.Clear(c); err != nil {
		logger.Log.Error("Failed to clear session", "error", err)
	}

	email := ""
	if sess.User != nil {
		email = sess.User.Email
	}
	h.secLog.LogLogout(c.Request.Context(), email, c.ClientIP(), middleware.GetRequestID(c))

	c.Redirect(http.StatusSeeOther, "/login")
}

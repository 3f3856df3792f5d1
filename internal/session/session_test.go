package session_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var opts = session.Options{CookieName: "test_session", TTL: time.Hour}

func newServer(t *testing.T, provider session.Provider) (*httptest.Server, *http.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := session.NewManager(provider)
	r := gin.New()
	r.Use(m.Middleware())

	r.POST("/login", func(c *gin.Context) {
		err := m.Login(c, &domain.LoginResult{
			Token: "mock-token-1",
			User:  domain.UserSummary{ID: 1, Name: "Admin", Email: "admin@example.com"},
			Role:  domain.Role(c.Query("role")),
		})
		assert.NoError(t, err)
		c.Status(http.StatusNoContent)
	})
	r.POST("/logout", func(c *gin.Context) {
		assert.NoError(t, m.Clear(c))
		c.Status(http.StatusNoContent)
	})
	r.POST("/flash", func(c *gin.Context) {
		assert.NoError(t, m.Flash(c, "success", "Job status updated"))
		c.Status(http.StatusNoContent)
	})
	r.GET("/me", func(c *gin.Context) {
		sess := m.Load(c)
		flash := m.PopFlash(c)
		msg := ""
		if flash != nil {
			msg = flash.Kind + ":" + flash.Message
		}
		c.JSON(http.StatusOK, gin.H{
			"token": sess.Token,
			"role":  string(sess.Role),
			"name":  sess.DisplayName(),
			"admin": sess.IsAdmin(),
			"flash": msg,
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func get(t *testing.T, client *http.Client, u string) string {
	t.Helper()
	resp, err := client.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func post(t *testing.T, client *http.Client, u string) {
	t.Helper()
	resp, err := client.PostForm(u, url.Values{})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func exerciseProvider(t *testing.T, provider session.Provider) {
	srv, client := newServer(t, provider)

	t.Run("Should start anonymous", func(t *testing.T) {
		body := get(t, client, srv.URL+"/me")
		assert.JSONEq(t, `{"token":"","role":"user","name":"User","admin":false,"flash":""}`, body)
	})

	t.Run("Should keep the login across requests", func(t *testing.T) {
		post(t, client, srv.URL+"/login?role=admin")
		body := get(t, client, srv.URL+"/me")
		assert.JSONEq(t, `{"token":"mock-token-1","role":"admin","name":"Admin","admin":true,"flash":""}`, body)
	})

	t.Run("Should show a flash once", func(t *testing.T) {
		post(t, client, srv.URL+"/flash")
		assert.Contains(t, get(t, client, srv.URL+"/me"), `"flash":"success:Job status updated"`)
		assert.Contains(t, get(t, client, srv.URL+"/me"), `"flash":""`)
	})

	t.Run("Should clear token, user and role on logout", func(t *testing.T) {
		post(t, client, srv.URL+"/logout")
		body := get(t, client, srv.URL+"/me")
		assert.JSONEq(t, `{"token":"","role":"user","name":"User","admin":false,"flash":""}`, body)
	})
}

func TestCookieProvider(t *testing.T) {
	exerciseProvider(t, session.NewCookieProvider("test-secret-test-secret", opts))
}

func TestCookieProviderRejectsTampering(t *testing.T) {
	srv, client := newServer(t, session.NewCookieProvider("test-secret-test-secret", opts))
	u, _ := url.Parse(srv.URL)
	client.Jar.SetCookies(u, []*http.Cookie{{Name: opts.CookieName, Value: "forged-value", Path: "/"}})

	body := get(t, client, srv.URL+"/me")
	assert.Contains(t, body, `"token":""`)
}

func TestServerProvider(t *testing.T) {
	backend := session.NewMemoryBackend(time.Hour)
	exerciseProvider(t, session.NewServerProvider(backend, opts))

	t.Run("Should drop the server entry once empty", func(t *testing.T) {
		assert.Zero(t, backend.Len())
	})
}

func TestServerProviderIgnoresUnknownIDs(t *testing.T) {
	backend := session.NewMemoryBackend(time.Hour)
	srv, client := newServer(t, session.NewServerProvider(backend, opts))
	u, _ := url.Parse(srv.URL)
	client.Jar.SetCookies(u, []*http.Cookie{{Name: opts.CookieName, Value: "4f3c1b8e-1d2a-4c55-9a8e-3f0e5d6c7b8a", Path: "/"}})

	body := get(t, client, srv.URL+"/me")
	assert.Contains(t, body, `"token":""`)

	post(t, client, srv.URL+"/login?role=user")
	assert.Equal(t, 1, backend.Len())
	assert.Contains(t, get(t, client, srv.URL+"/me"), `"role":"user"`)
}

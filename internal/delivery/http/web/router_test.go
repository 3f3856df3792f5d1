package web_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-jobboard-portal/config"
	v1 "go-jobboard-portal/internal/delivery/http/v1"
	"go-jobboard-portal/internal/delivery/http/web"
	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/internal/repository/memory"
	"go-jobboard-portal/internal/resource"
	"go-jobboard-portal/internal/session"
	"go-jobboard-portal/internal/usecase"
	"go-jobboard-portal/pkg/logger"
	"go-jobboard-portal/pkg/media"
	"go-jobboard-portal/pkg/metrics"
	"go-jobboard-portal/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type portal struct {
	t       *testing.T
	url     string
	client  *http.Client
	records domain.RecordUsecase
}

func seedData() map[string][]domain.Record {
	return map[string][]domain.Record{
		"users": {
			{"id": 1, "email": "admin@example.com", "password": "123456", "name": "Admin"},
			{"id": 2, "email": "jane@example.com", "password": "secret1", "name": "Jane"},
		},
		"jobs": {
			{"id": 1, "title": "Frontend Engineer", "company": "Rakamin", "location": "Jakarta", "salary": "Rp7.000.000 - Rp8.000.000", "type": "Full-time", "description": []interface{}{"Build pages", "Review code"}, "status": "active", "createdAt": "2025-01-10"},
			{"id": 2, "title": "Backend Engineer", "company": "Rakamin", "location": "Bandung", "type": "Contract", "description": []interface{}{"Design APIs"}, "status": "inactive"},
			{"id": 3, "title": "Data Analyst", "company": "Rakamin", "location": "Jakarta", "type": "Part-time", "status": "draft"},
		},
	}
}

func newPortal(t *testing.T, mutate func(cfg *config.Config)) *portal {
	t.Helper()
	gin.SetMode(gin.TestMode)

	records := usecase.NewRecordUsecase(memory.NewRecordRepository(), []string{resource.Users, resource.Jobs, resource.JobApplications})
	require.NoError(t, records.Seed(context.Background(), seedData()))
	store := httptest.NewServer(v1.NewRouter(v1.RouterDeps{RecordUC: records, AllowedOrigins: []string{"http://localhost:8080"}}))
	t.Cleanup(store.Close)

	cfg := &config.Config{
		AdminEmail:          "admin@example.com",
		AdminPassword:       "123456",
		SessionTokenPrefix:  "mock-token-",
		SuccessRedirectSecs: 5,
		DefaultCompany:      "Rakamin",
		DefaultLocation:     "Jakarta",
		DefaultLogo:         "/static/logo.svg",
	}
	if mutate != nil {
		mutate(cfg)
	}

	client := resource.NewClient(store.URL, store.Client())
	validate := validator.New()
	opts := session.Options{CookieName: "jobboard_session", TTL: time.Hour}

	router := web.NewRouter(web.RouterDeps{
		AuthUC: usecase.NewAuthUsecase(resource.NewUserRepository(client), usecase.AuthConfig{
			AdminEmail:    cfg.AdminEmail,
			AdminPassword: cfg.AdminPassword,
			TokenPrefix:   cfg.SessionTokenPrefix,
		}, validate),
		JobUC: usecase.NewJobUsecase(resource.NewJobRepository(client), usecase.JobDefaults{
			Company:  cfg.DefaultCompany,
			Location: cfg.DefaultLocation,
			Logo:     cfg.DefaultLogo,
		}),
		ApplicationUC: usecase.NewApplicationUsecase(resource.NewApplicationRepository(client), validate),
		Sessions:      session.NewManager(session.NewServerProvider(session.NewMemoryBackend(time.Hour), opts)),
		SecurityLog:   security.NewSecurityLogger(zap.NewNop(), "portal-test", "test"),
		Metrics:       metrics.NewHTTP("portal-test"),
		Config:        cfg,
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	browser := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &portal{t: t, url: server.URL, client: browser, records: records}
}

func (p *portal) get(path string) (*http.Response, string) {
	p.t.Helper()
	resp, err := p.client.Get(p.url + path)
	require.NoError(p.t, err)
	return resp, readBody(p.t, resp)
}

func (p *portal) post(path string, form url.Values) (*http.Response, string) {
	p.t.Helper()
	resp, err := p.client.PostForm(p.url+path, form)
	require.NoError(p.t, err)
	return resp, readBody(p.t, resp)
}

func (p *portal) postMultipart(path string, fields map[string]string, photo []byte) (*http.Response, string) {
	p.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(p.t, w.WriteField(k, v))
	}
	if photo != nil {
		part, err := w.CreateFormFile("photo_file", "me.png")
		require.NoError(p.t, err)
		_, err = part.Write(photo)
		require.NoError(p.t, err)
	}
	require.NoError(p.t, w.Close())

	resp, err := p.client.Post(p.url+path, w.FormDataContentType(), &buf)
	require.NoError(p.t, err)
	return resp, readBody(p.t, resp)
}

func (p *portal) login(email, password string) *http.Response {
	p.t.Helper()
	resp, _ := p.post("/login", url.Values{"email": {email}, "password": {password}})
	return resp
}

func (p *portal) count(collection string) int {
	p.t.Helper()
	recs, err := p.records.List(context.Background(), collection, nil)
	require.NoError(p.t, err)
	return len(recs)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func pngPhoto(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 120, 80))
	for x := 0; x < 120; x++ {
		for y := 0; y < 80; y++ {
			img.Set(x, y, color.RGBA{R: 1, G: 149, B: 159, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// oversizedPNG carries only a header declaring a 40000×40000 image.
func oversizedPNG() []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], 40000)
	binary.BigEndian.PutUint32(ihdr[4:], 40000)
	ihdr[8], ihdr[9] = 8, 6

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func completeApplication() map[string]string {
	return map[string]string{
		"action":   "submit",
		"name":     "Jane Doe",
		"birth":    "1999-03-07",
		"gender":   "female",
		"domicile": "Bandung",
		"phone":    "81234567890",
		"email":    "jane@example.com",
		"linkedin": "https://linkedin.com/in/jane-doe-example",
	}
}

func TestRouteGuards(t *testing.T) {
	p := newPortal(t, nil)

	t.Run("Should redirect root to login", func(t *testing.T) {
		resp, _ := p.get("/")
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	})

	for _, path := range []string{"/jobs", "/apply/1", "/success", "/admin/jobs", "/admin/manage-job/1"} {
		t.Run("Should send anonymous visitors of "+path+" to login", func(t *testing.T) {
			resp, _ := p.get(path)
			assert.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Equal(t, "/login", resp.Header.Get("Location"))
		})
	}

	t.Run("Should keep regular users out of admin pages", func(t *testing.T) {
		require.Equal(t, "/jobs", p.login("jane@example.com", "secret1").Header.Get("Location"))

		resp, _ := p.get("/jobs")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = p.get("/admin/jobs")
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	})

	t.Run("Should render the not found page for unknown routes", func(t *testing.T) {
		resp, body := p.get("/nowhere")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "404 - Not Found")
	})
}

func TestAuthPages(t *testing.T) {
	t.Run("Should log the admin in and land on the admin job list", func(t *testing.T) {
		p := newPortal(t, nil)

		resp := p.login("admin@example.com", "123456")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/admin/jobs", resp.Header.Get("Location"))

		resp, body := p.get("/admin/jobs")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Login berhasil")
		assert.Contains(t, body, "Frontend Engineer")

		_, body = p.get("/admin/jobs")
		assert.NotContains(t, body, "Login berhasil")
	})

	t.Run("Should reject wrong credentials", func(t *testing.T) {
		p := newPortal(t, nil)

		resp, body := p.post("/login", url.Values{"email": {"admin@example.com"}, "password": {"nope"}})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, body, "Email atau password salah")
		assert.Contains(t, body, `value="admin@example.com"`)
	})

	t.Run("Should refuse short passwords without touching the store", func(t *testing.T) {
		p := newPortal(t, nil)

		resp, body := p.post("/register", url.Values{
			"name": {"Budi"}, "email": {"budi@example.com"},
			"password": {"abc"}, "password_confirmation": {"abc"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "Password minimal 6 karakter")
		assert.Equal(t, 2, p.count(resource.Users))
	})

	t.Run("Should refuse an email that is already registered", func(t *testing.T) {
		p := newPortal(t, nil)

		resp, body := p.post("/register", url.Values{
			"name": {"Jane"}, "email": {"jane@example.com"},
			"password": {"secret1"}, "password_confirmation": {"secret1"},
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, body, "Email sudah terdaftar")
		assert.Equal(t, 2, p.count(resource.Users))
	})

	t.Run("Should register and allow the new user to log in", func(t *testing.T) {
		p := newPortal(t, nil)

		resp, _ := p.post("/register", url.Values{
			"name": {"Budi"}, "email": {"budi@example.com"},
			"password": {"rahasia"}, "password_confirmation": {"rahasia"},
		})
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))

		_, body := p.get("/login")
		assert.Contains(t, body, "Pendaftaran berhasil. Silakan login.")

		user, err := p.records.Get(context.Background(), resource.Users, 3)
		require.NoError(t, err)
		assert.Equal(t, "budi@example.com", user["email"])

		assert.Equal(t, "/jobs", p.login("budi@example.com", "rahasia").Header.Get("Location"))
	})

	t.Run("Should clear the session on logout", func(t *testing.T) {
		p := newPortal(t, nil)
		p.login("admin@example.com", "123456")

		resp, _ := p.post("/logout", nil)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

		resp, _ = p.get("/admin/jobs")
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		resp, _ = p.get("/jobs")
		assert.Equal(t, http.StatusFound, resp.StatusCode)
	})
}

func TestJobListPage(t *testing.T) {
	p := newPortal(t, nil)
	p.login("jane@example.com", "secret1")

	t.Run("Should select the first job by default", func(t *testing.T) {
		_, body := p.get("/jobs")
		assert.Contains(t, body, "Build pages")
		assert.Contains(t, body, `href="/apply/1"`)
		assert.Contains(t, body, "Jane")
	})

	t.Run("Should move the cursor to the requested job", func(t *testing.T) {
		_, body := p.get("/jobs?job=2")
		assert.Contains(t, body, "Design APIs")
		assert.NotContains(t, body, "Build pages")
		assert.Contains(t, body, "detail-pane")
		assert.Contains(t, body, "Back to Jobs")
	})

	t.Run("Should show the placeholder without a selection", func(t *testing.T) {
		_, body := p.get("/jobs?job=none")
		assert.Contains(t, body, "Select a job to view details")
		assert.NotContains(t, body, "detail-pane")
	})

	t.Run("Should list only active jobs when configured", func(t *testing.T) {
		active := newPortal(t, func(cfg *config.Config) { cfg.PublicJobsActiveOnly = true })
		active.login("jane@example.com", "secret1")

		_, body := active.get("/jobs")
		assert.Contains(t, body, "Frontend Engineer")
		assert.NotContains(t, body, "Backend Engineer")
		assert.NotContains(t, body, "Data Analyst")
	})

	t.Run("Should treat jobs without a status as active", func(t *testing.T) {
		active := newPortal(t, func(cfg *config.Config) { cfg.PublicJobsActiveOnly = true })
		_, err := active.records.Create(context.Background(), resource.Jobs, domain.Record{"title": "Operations Lead", "company": "Rakamin"})
		require.NoError(t, err)
		active.login("jane@example.com", "secret1")

		_, body := active.get("/jobs")
		assert.Contains(t, body, "Frontend Engineer")
		assert.Contains(t, body, "Operations Lead")
		assert.NotContains(t, body, "Backend Engineer")
	})
}

func TestApplyPage(t *testing.T) {
	t.Run("Should render an empty state for unknown jobs", func(t *testing.T) {
		p := newPortal(t, nil)
		p.login("jane@example.com", "secret1")

		resp, body := p.get("/apply/99")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "Job not found")
	})

	t.Run("Should keep fields and preview the photo", func(t *testing.T) {
		p := newPortal(t, nil)
		p.login("jane@example.com", "secret1")

		resp, body := p.postMultipart("/apply/1", map[string]string{"action": "photo", "name": "Jane Doe"}, pngPhoto(t))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "data:image/png;base64,")
		assert.Contains(t, body, `value="Jane Doe"`)
		assert.Equal(t, 0, p.count(resource.JobApplications))
	})

	t.Run("Should require every field before creating anything", func(t *testing.T) {
		p := newPortal(t, nil)
		p.login("jane@example.com", "secret1")

		fields := completeApplication()
		fields["linkedin"] = ""
		resp, body := p.postMultipart("/apply/1", fields, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "Semua field harus diisi")
		assert.Equal(t, 0, p.count(resource.JobApplications))
	})

	t.Run("Should report a malformed upload instead of missing fields", func(t *testing.T) {
		p := newPortal(t, nil)
		p.login("jane@example.com", "secret1")

		var logs bytes.Buffer
		previous := logger.Log
		logger.Log = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		t.Cleanup(func() { logger.Log = previous })

		resp, err := p.client.Post(p.url+"/apply/1", "multipart/form-data; boundary=cut", strings.NewReader("--cut\r\nContent-Disposition: form-data; name=\"name\"\r\n\r\nJane"))
		require.NoError(t, err)
		body := readBody(t, resp)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, web.MsgFormUnreadable)
		assert.NotContains(t, body, "Semua field harus diisi")
		assert.Contains(t, logs.String(), "Failed to bind form")
		assert.Equal(t, 0, p.count(resource.JobApplications))
	})

	t.Run("Should submit a complete application and confirm it", func(t *testing.T) {
		p := newPortal(t, nil)
		p.login("jane@example.com", "secret1")

		resp, _ := p.postMultipart("/apply/1", completeApplication(), pngPhoto(t))
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/success", resp.Header.Get("Location"))

		apps, err := p.records.List(context.Background(), resource.JobApplications, nil)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		id, _ := domain.Record{"id": apps[0]["jobId"]}.ID()
		assert.Equal(t, int64(1), id)
		assert.True(t, strings.HasPrefix(apps[0]["photo"].(string), "data:image/png;base64,"))
		assert.NotEmpty(t, apps[0]["createdAt"])

		resp, body := p.get("/success")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "5; url=/jobs", resp.Header.Get("Refresh"))
		assert.Contains(t, body, "Back to Job List")
	})
}

func TestAdminPages(t *testing.T) {
	newAdmin := func(t *testing.T) *portal {
		p := newPortal(t, nil)
		require.Equal(t, "/admin/jobs", p.login("admin@example.com", "123456").Header.Get("Location"))
		p.get("/admin/jobs")
		return p
	}

	t.Run("Should search jobs by title", func(t *testing.T) {
		p := newAdmin(t)

		_, body := p.get("/admin/jobs?q=engineer")
		assert.Contains(t, body, "Frontend Engineer")
		assert.Contains(t, body, "Backend Engineer")
		assert.NotContains(t, body, "Data Analyst")
	})

	t.Run("Should publish a job with salary and candidates as active", func(t *testing.T) {
		p := newAdmin(t)

		resp, _ := p.post("/admin/jobs", url.Values{
			"action": {"publish"}, "job_name": {"QA Engineer"}, "job_type": {"Remote"},
			"job_description": {"Write tests\n\nAutomate"}, "num_candidates": {"1"},
			"min_salary": {"7000000"}, "max_salary": {"8000000"},
		})
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

		_, body := p.get("/admin/jobs")
		assert.Contains(t, body, "Job vacancy successfully created")

		job, err := p.records.Get(context.Background(), resource.Jobs, 4)
		require.NoError(t, err)
		assert.Equal(t, "active", job["status"])
		assert.Equal(t, "Rp7.000.000 - Rp8.000.000", job["salary"])
		assert.Equal(t, []interface{}{"Write tests", "Automate"}, job["description"])
	})

	t.Run("Should store a draft whatever the salary", func(t *testing.T) {
		p := newAdmin(t)

		p.post("/admin/jobs", url.Values{
			"action": {"draft"}, "job_name": {"Designer"}, "num_candidates": {"2"},
			"min_salary": {"1"}, "max_salary": {"2"},
		})

		job, err := p.records.Get(context.Background(), resource.Jobs, 4)
		require.NoError(t, err)
		assert.Equal(t, "draft", job["status"])
	})

	t.Run("Should re-render the form when the job name is missing", func(t *testing.T) {
		p := newAdmin(t)

		resp, body := p.post("/admin/jobs", url.Values{"action": {"publish"}, "job_description": {"Something"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "Job Name is required")
		assert.Contains(t, body, "Something")
		assert.Equal(t, 3, p.count(resource.Jobs))
	})

	t.Run("Should toggle published jobs and refuse drafts", func(t *testing.T) {
		p := newAdmin(t)

		resp, _ := p.post("/admin/jobs/1/status", url.Values{"status": {"inactive"}})
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		_, body := p.get("/admin/jobs")
		assert.Contains(t, body, "Job status updated")
		job, err := p.records.Get(context.Background(), resource.Jobs, 1)
		require.NoError(t, err)
		assert.Equal(t, "inactive", job["status"])

		p.post("/admin/jobs/1/status", url.Values{"status": {"active"}})
		job, err = p.records.Get(context.Background(), resource.Jobs, 1)
		require.NoError(t, err)
		assert.Equal(t, "active", job["status"])

		p.post("/admin/jobs/3/status", url.Values{"status": {"active"}})
		_, body = p.get("/admin/jobs")
		assert.Contains(t, body, "Cannot change draft status")
		job, err = p.records.Get(context.Background(), resource.Jobs, 3)
		require.NoError(t, err)
		assert.Equal(t, "draft", job["status"])
	})

	t.Run("Should show and export the candidate roster", func(t *testing.T) {
		p := newAdmin(t)

		_, body := p.get("/admin/manage-job/1")
		assert.Contains(t, body, "No candidates found")

		_, err := p.records.Create(context.Background(), resource.JobApplications, domain.Record{
			"jobId": 1, "name": "Jane Doe", "birth": "1999-03-07", "gender": "female", "domicile": "Bandung",
			"phone": "81234567890", "email": "jane@example.com", "linkedin": "https://linkedin.com/in/jane-doe-example",
		})
		require.NoError(t, err)
		_, err = p.records.Create(context.Background(), resource.JobApplications, domain.Record{"jobId": 2, "name": "Other Person"})
		require.NoError(t, err)

		_, body = p.get("/admin/manage-job/1")
		assert.Contains(t, body, "Jane Doe")
		assert.Contains(t, body, "7/3/1999")
		assert.Contains(t, body, "https://linkedin.com/in/jane-d...")
		assert.NotContains(t, body, "Other Person")

		resp, body := p.get("/admin/manage-job/1/export?format=csv")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "applicants_job_1_")
		lines := strings.Split(strings.TrimSpace(body), "\n")
		assert.Len(t, lines, 2)

		resp, _ = p.get("/admin/manage-job/1/export?format=pdf")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Should keep the stored photo when it is too large to thumbnail", func(t *testing.T) {
		p := newAdmin(t)
		photo := media.EncodeDataURI(oversizedPNG())
		_, err := p.records.Create(context.Background(), resource.JobApplications, domain.Record{
			"jobId": 1, "name": "Huge Photo", "photo": photo,
		})
		require.NoError(t, err)

		resp, body := p.get("/admin/manage-job/1")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Huge Photo")
		assert.Contains(t, body, `src="data:image/png;base64,`)
		assert.NotContains(t, body, "data:image/jpeg")
	})

	t.Run("Should show an empty state for unknown jobs", func(t *testing.T) {
		p := newAdmin(t)

		resp, body := p.get("/admin/manage-job/42")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "Job not found")
	})
}

func TestCSRFProtection(t *testing.T) {
	p := newPortal(t, func(cfg *config.Config) { cfg.CSRFEnabled = true })

	_, body := p.get("/login")
	assert.Contains(t, body, `name="csrf_token"`)

	t.Run("Should reject forms without the token", func(t *testing.T) {
		resp := p.login("admin@example.com", "123456")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Should accept forms echoing the cookie token", func(t *testing.T) {
		u, err := url.Parse(p.url)
		require.NoError(t, err)
		var token string
		for _, c := range p.client.Jar.Cookies(u) {
			if c.Name == "csrf_token" {
				token = c.Value
			}
		}
		require.NotEmpty(t, token)

		resp, _ := p.post("/login", url.Values{"email": {"admin@example.com"}, "password": {"123456"}, "csrf_token": {token}})
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/admin/jobs", resp.Header.Get("Location"))
	})
}

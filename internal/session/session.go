package session

import (
	"net/http"
	"time"

	"go-jobboard-portal/internal/domain"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Keys held in every browser session.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyRole  = "role"
	KeyFlash = "flash"
)

// Storage is the key-value state of one browser session for the current request.
type Storage interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
	Save() error
}

// Provider attaches session storage to requests.
type Provider interface {
	// Middleware must run before Open is called for a request.
	Middleware() gin.HandlerFunc
	Open(c *gin.Context) Storage
}

// Options configure the session cookie.
type Options struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

func (o Options) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     o.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   o.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    string `json:"kind"` // success or error
	Message string `json:"message"`
}

// Manager maps domain sessions onto provider storage.
type Manager struct {
	provider Provider
}

func NewManager(provider Provider) *Manager {
	return &Manager{provider: provider}
}

func (m *Manager) Middleware() gin.HandlerFunc {
	return m.provider.Middleware()
}

// Load reads the session. A malformed user entry is ignored; the token and
// role alone decide access.
func (m *Manager) Load(c *gin.Context) domain.Session {
	st := m.provider.Open(c)
	sess := domain.Session{
		Token: st.Get(KeyToken),
		Role:  domain.ParseRole(st.Get(KeyRole)),
	}
	if raw := st.Get(KeyUser); raw != "" {
		var user domain.UserSummary
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			sess.User = &user
		}
	}
	return sess
}

// Login stores the token, user summary and role of a successful login.
func (m *Manager) Login(c *gin.Context, res *domain.LoginResult) error {
	user, err := json.Marshal(res.User)
	if err != nil {
		return err
	}
	st := m.provider.Open(c)
	st.Set(KeyToken, res.Token)
	st.Set(KeyUser, string(user))
	st.Set(KeyRole, string(res.Role))
	return st.Save()
}

// Clear removes the token, user and role whatever the role was.
func (m *Manager) Clear(c *gin.Context) error {
	st := m.provider.Open(c)
	st.Delete(KeyToken)
	st.Delete(KeyUser)
	st.Delete(KeyRole)
	return st.Save()
}

func (m *Manager) Flash(c *gin.Context, kind, message string) error {
	raw, err := json.Marshal(Flash{Kind: kind, Message: message})
	if err != nil {
		return err
	}
	st := m.provider.Open(c)
	st.Set(KeyFlash, string(raw))
	return st.Save()
}

// PopFlash returns and removes the pending flash, if any.
func (m *Manager) PopFlash(c *gin.Context) *Flash {
	st := m.provider.Open(c)
	raw := st.Get(KeyFlash)
	if raw == "" {
		return nil
	}
	st.Delete(KeyFlash)
	_ = st.Save()

	var f Flash
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return nil
	}
	return &f
}

package session

import (
	"context"
	"net/http"
	"sync"

	"go-jobboard-portal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const storageKey = "session.storage"

// Backend persists session values server side, keyed by an opaque id.
type Backend interface {
	Load(ctx context.Context, sid string) (map[string]string, error)
	Save(ctx context.Context, sid string, values map[string]string) error
	Delete(ctx context.Context, sid string) error
}

// sidProvider sends only a random session id to the browser.
type sidProvider struct {
	backend Backend
	opts    Options
}

func NewServerProvider(backend Backend, opts Options) Provider {
	return &sidProvider{backend: backend, opts: opts}
}

func (p *sidProvider) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := &sidStorage{provider: p, c: c, values: map[string]string{}}
		if cookie, err := c.Cookie(p.opts.CookieName); err == nil {
			if _, err := uuid.Parse(cookie); err == nil {
				values, err := p.backend.Load(c.Request.Context(), cookie)
				if err != nil {
					logger.Log.Error("Failed to load session", "error", err)
				} else if values != nil {
					st.sid = cookie
					st.values = values
				}
			}
		}
		c.Set(storageKey, st)
		c.Next()
	}
}

func (p *sidProvider) Open(c *gin.Context) Storage {
	return c.MustGet(storageKey).(*sidStorage)
}

type sidStorage struct {
	mu       sync.Mutex
	provider *sidProvider
	c        *gin.Context
	sid      string
	values   map[string]string
}

func (st *sidStorage) Get(key string) string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.values[key]
}

func (st *sidStorage) Set(key, value string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.values[key] = value
}

func (st *sidStorage) Delete(key string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.values, key)
}

// Save writes the values, or drops the server-side entry once nothing is left.
func (st *sidStorage) Save() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	ctx := st.c.Request.Context()
	opts := st.provider.opts

	if len(st.values) == 0 {
		if st.sid == "" {
			return nil
		}
		err := st.provider.backend.Delete(ctx, st.sid)
		st.sid = ""
		http.SetCookie(st.c.Writer, opts.cookie("", -1))
		return err
	}

	if st.sid == "" {
		st.sid = uuid.NewString()
		http.SetCookie(st.c.Writer, opts.cookie(st.sid, int(opts.TTL.Seconds())))
	}
	return st.provider.backend.Save(ctx, st.sid, st.values)
}

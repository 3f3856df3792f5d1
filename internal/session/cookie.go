package session

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// cookieProvider keeps the whole session in an HMAC-signed cookie.
type cookieProvider struct {
	name  string
	store sessions.Store
}

func NewCookieProvider(secret string, opts Options) Provider {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.TTL.Seconds()),
		Secure:   opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return &cookieProvider{name: opts.CookieName, store: store}
}

func (p *cookieProvider) Middleware() gin.HandlerFunc {
	return sessions.Sessions(p.name, p.store)
}

func (p *cookieProvider) Open(c *gin.Context) Storage {
	return cookieStorage{s: sessions.Default(c)}
}

type cookieStorage struct {
	s sessions.Session
}

func (st cookieStorage) Get(key string) string {
	v, _ := st.s.Get(key).(string)
	return v
}

func (st cookieStorage) Set(key, value string) { st.s.Set(key, value) }

func (st cookieStorage) Delete(key string) { st.s.Delete(key) }

func (st cookieStorage) Save() error { return st.s.Save() }

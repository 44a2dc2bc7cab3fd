package session

import (
	"net/http"
	"time"
)

// Jar abstracts cookie access for one request/response pair so the service
// layer never touches http.ResponseWriter directly.
type Jar interface {
	// Get returns the value of the named request cookie and whether it was
	// present.
	Get(name string) (string, bool)

	// Set writes a response cookie. A zero ttl produces a session cookie;
	// a positive ttl sets Max-Age accordingly.
	Set(name, value string, ttl time.Duration)

	// Clear expires the named cookie on the client.
	Clear(name string)
}

// httpJar is the production [Jar]. Every cookie it writes is HttpOnly with
// SameSite=Lax and Path=/.
type httpJar struct {
	w      http.ResponseWriter
	r      *http.Request
	secure bool
}

// NewJar wraps a request/response pair in a [Jar]. secure marks written
// cookies Secure, which deployments behind TLS should enable.
func NewJar(w http.ResponseWriter, r *http.Request, secure bool) Jar {
	return &httpJar{w: w, r: r, secure: secure}
}

func (j *httpJar) Get(name string) (string, bool) {
	cookie, err := j.r.Cookie(name)
	if err != nil {
		return "", false
	}

	return cookie.Value, true
}

func (j *httpJar) Set(name, value string, ttl time.Duration) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	}

	http.SetCookie(j.w, cookie)
}

func (j *httpJar) Clear(name string) {
	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

package portal

import "net/http"

// Session is the explicit authentication state of one portal login: the base
// URL, the CSRF token scraped from the login page, and the cookie set
// accumulated across the handshake and every later request.
//
// A Session lives for at most one run and is never persisted.
type Session struct {
	BaseURL   string
	CSRFToken string

	cookies map[string]*http.Cookie
	order   []string
}

// NewSession returns an empty session for baseURL.
func NewSession(baseURL string) *Session {
	return &Session{
		BaseURL: baseURL,
		cookies: make(map[string]*http.Cookie),
	}
}

// SetCookie inserts or replaces a cookie by name.
func (s *Session) SetCookie(name, value string) {
	s.merge(&http.Cookie{Name: name, Value: value})
}

// Merge folds the cookies of a response into the session. A cookie with a
// name already present replaces the previous value; cookies are never removed.
func (s *Session) Merge(cookies []*http.Cookie) {
	for _, c := range cookies {
		s.merge(c)
	}
}

func (s *Session) merge(c *http.Cookie) {
	if c == nil || c.Name == "" {
		return
	}
	if _, ok := s.cookies[c.Name]; !ok {
		s.order = append(s.order, c.Name)
	}
	s.cookies[c.Name] = c
}

// Cookies returns the accumulated cookie set in first-seen order, ready to be
// attached to a request.
func (s *Session) Cookies() []*http.Cookie {
	out := make([]*http.Cookie, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.cookies[name])
	}
	return out
}

// Cookie returns the current value of a cookie, or "" when absent.
func (s *Session) Cookie(name string) string {
	if c, ok := s.cookies[name]; ok {
		return c.Value
	}
	return ""
}

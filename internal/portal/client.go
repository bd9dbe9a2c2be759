package portal

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/automailer/internal/config"
	"github.com/MKhiriev/automailer/internal/logger"
)

const (
	loginPath           = "/client_portal/client_accesses/sign_in"
	clientSelectionPath = "/client_portal/client_selection"
	listingPath         = "/client-portal-api/billing-items"
	downloadPathPrefix  = "/client-portal-api/billing-items/"

	// The portal refuses the handshake without this pre-seeded cookie.
	sessionExpirationCookie = "client-portal-session-expiration_time"
	sessionExpirationValue  = "86400"

	statementType   = "superbill"
	listingPageSize = "10"
)

// Static headers required by the portal's private API endpoints.
var apiHeaders = map[string]string{
	"api-version":               "2019-01-17",
	"application-platform":      "web",
	"application-build-version": "0.0.0+85ec7a61",
}

type httpPortalClient struct {
	client  *resty.Client
	login   config.Login
	urlName string
	logger  *logger.Logger
}

// NewHTTPPortalClient builds a [Client] for the portal at cfg.URL. Every
// outbound request carries the supplied timeout; redirects are never
// followed, because a 302 is a success terminal of the handshake whose
// Set-Cookie headers must be harvested, not chased.
func NewHTTPPortalClient(cfg config.Website, timeout time.Duration, log *logger.Logger) (Client, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse portal url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(timeout).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}))
	cli.SetCookieJar(nil) // cookies live in the explicit Session value

	return &httpPortalClient{
		client: cli,
		login:  cfg.Login,
		// the portal expects the tenant label, i.e. the first host segment
		urlName: strings.Split(u.Hostname(), ".")[0],
		logger:  log,
	}, nil
}

func (h *httpPortalClient) Login(ctx context.Context) (*Session, error) {
	session := NewSession(h.client.BaseURL)
	session.SetCookie(sessionExpirationCookie, sessionExpirationValue)

	h.logger.Info().Str("url_name", h.urlName).Msg("accessing portal")

	resp, err := h.client.R().
		SetContext(ctx).
		SetCookies(session.Cookies()).
		Get(loginPath)
	if err != nil {
		return nil, fmt.Errorf("%w: load login page: %v", ErrAuth, err)
	}
	if !acceptStatus(resp.StatusCode()) {
		return nil, fmt.Errorf("%w: load login page: unexpected status %d", ErrAuth, resp.StatusCode())
	}
	session.Merge(resp.Cookies())

	token, err := extractCSRFToken(resp.Body())
	if err != nil {
		return nil, err
	}
	session.CSRFToken = token
	h.logger.Debug().Msg("got csrf token")

	resp, err = h.client.R().
		SetContext(ctx).
		SetCookies(session.Cookies()).
		SetFormData(map[string]string{
			"utf8":                                  "✓",
			"authenticity_token":                    token,
			"commit":                                "Log in",
			"client_portal_client_access[email]":    h.login.Email,
			"client_portal_client_access[password]": h.login.Password,
			"client_portal_client_access[url_name]": h.urlName,
		}).
		Post(loginPath)
	if err != nil {
		return nil, fmt.Errorf("%w: submit credentials: %v", ErrAuth, err)
	}
	if !acceptStatus(resp.StatusCode()) {
		return nil, fmt.Errorf("%w: submit credentials: unexpected status %d", ErrAuth, resp.StatusCode())
	}
	session.Merge(resp.Cookies())

	h.logger.Info().Msg("getting client scope set")

	resp, err = h.client.R().
		SetContext(ctx).
		SetCookies(session.Cookies()).
		Get(clientSelectionPath)
	if err != nil {
		return nil, fmt.Errorf("%w: client selection: %v", ErrAuth, err)
	}
	if !acceptStatus(resp.StatusCode()) {
		return nil, fmt.Errorf("%w: client selection: unexpected status %d", ErrAuth, resp.StatusCode())
	}
	session.Merge(resp.Cookies())

	return session, nil
}

// acceptStatus reports whether a gated portal request succeeded. The portal
// answers 302 on success for browser-style navigation, so both 200 and 302
// are terminal success codes.
func acceptStatus(code int) bool {
	return code == http.StatusOK || code == http.StatusFound
}

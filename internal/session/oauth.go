package session

import (
	"context"
	"net/url"
	"strings"

	"github.com/vactrack/clinic-gateway/internal/model"
)

// Post-login destinations. Admins land in the back-office, everyone else on
// the home page.
const (
	RedirectAdmin = "/admin-vactrack"
	RedirectHome  = "/"
	RedirectLogin = "/login"
)

// Localized messages shown by the redirect page; kept verbatim from the
// product copy.
const (
	msgUserFetchFailed = "Không thể lấy dữ liệu người dùng. Vui lòng thử lại."
	msgExchangeFailed  = "Lỗi xử lý xác thực OAuth. Vui lòng thử lại sau."
	msgNoCredentials   = "Không có thông tin xác thực."
)

// OAuthError is the single failure path for the whole redirect flow: every
// network or provider error funnels into one of these, and the only recovery
// is the user logging in again manually.
type OAuthError struct {
	Message string
}

func (e *OAuthError) Error() string {
	return e.Message
}

// OAuthResult is a completed redirect: an active session plus the
// role-dependent destination.
type OAuthResult struct {
	Session    *model.Session
	RedirectTo string
}

// CompleteOAuthRedirect interprets a post-redirect URL carrying either a
// direct token, an authorization code, or an error, and finishes the session
// setup. The provider for the code exchange is chosen from the callback path.
func (m *Manager) CompleteOAuthRedirect(ctx context.Context, callbackPath string, query url.Values) (*OAuthResult, error) {
	token := query.Get("token")
	code := query.Get("code")
	oauthErr := query.Get("error")

	switch {
	case token != "":
		return m.finishWithToken(ctx, token)

	case code != "":
		provider := "google"
		if strings.Contains(callbackPath, "/facebook/callback") {
			provider = "facebook"
		}
		redirectURI := query.Get("redirect_uri")

		exchanged, err := m.api.ExchangeOAuthCode(ctx, provider, code, redirectURI)
		if err != nil {
			m.log.Error(err, "oauth code exchange failed", "provider", provider)
			return nil, &OAuthError{Message: msgExchangeFailed}
		}
		return m.finishWithToken(ctx, exchanged)

	case oauthErr != "":
		return nil, &OAuthError{Message: oauthErr}

	default:
		return nil, &OAuthError{Message: msgNoCredentials}
	}
}

func (m *Manager) finishWithToken(ctx context.Context, token string) (*OAuthResult, error) {
	sess, err := m.Complete(ctx, token)
	if err != nil {
		m.log.Error(err, "failed to complete oauth session")
		return nil, &OAuthError{Message: msgUserFetchFailed}
	}

	redirect := RedirectHome
	if sess.IsAdmin() {
		redirect = RedirectAdmin
	}
	return &OAuthResult{Session: sess, RedirectTo: redirect}, nil
}

// PostLoginTarget resolves where a fresh login should land: the originally
// requested path when there is one, otherwise the role default.
func PostLoginTarget(sess *model.Session, requested string) string {
	if requested != "" && requested != RedirectHome {
		return requested
	}
	if sess.IsAdmin() {
		return RedirectAdmin
	}
	return RedirectHome
}

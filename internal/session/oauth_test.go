package session

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vactrack/clinic-gateway/internal/model"
)

func TestOAuthRedirectWithToken(t *testing.T) {
	api := &fakeAPI{user: testUser("USER")}
	m := newTestManager(api)

	res, err := m.CompleteOAuthRedirect(context.Background(), "/oauth2/redirect", url.Values{
		"token": {"tok-oauth"},
	})
	require.NoError(t, err)
	assert.Equal(t, RedirectHome, res.RedirectTo)
	assert.Equal(t, "tok-oauth", res.Session.Token)
}

func TestOAuthRedirectAdminLandsInBackOffice(t *testing.T) {
	api := &fakeAPI{user: testUser("ADMIN")}
	m := newTestManager(api)

	res, err := m.CompleteOAuthRedirect(context.Background(), "/oauth2/redirect", url.Values{
		"token": {"tok-admin"},
	})
	require.NoError(t, err)
	assert.Equal(t, RedirectAdmin, res.RedirectTo)
}

func TestOAuthRedirectWithCodeExchanges(t *testing.T) {
	api := &fakeAPI{exchanged: "tok-exchanged", user: testUser("USER")}
	m := newTestManager(api)

	res, err := m.CompleteOAuthRedirect(context.Background(), "/auth/google/callback", url.Values{
		"code":         {"auth-code"},
		"redirect_uri": {"http://localhost/auth/google/callback"},
	})
	require.NoError(t, err)
	assert.Equal(t, "google", api.lastProvider)
	assert.Equal(t, "tok-exchanged", res.Session.Token)
}

func TestOAuthProviderFromCallbackPath(t *testing.T) {
	api := &fakeAPI{exchanged: "tok", user: testUser("USER")}
	m := newTestManager(api)

	_, err := m.CompleteOAuthRedirect(context.Background(), "/auth/facebook/callback", url.Values{
		"code": {"auth-code"},
	})
	require.NoError(t, err)
	assert.Equal(t, "facebook", api.lastProvider)
}

func TestOAuthExchangeFailure(t *testing.T) {
	api := &fakeAPI{exchangeErr: errors.New("upstream down")}
	m := newTestManager(api)

	_, err := m.CompleteOAuthRedirect(context.Background(), "/auth/google/callback", url.Values{
		"code": {"auth-code"},
	})
	var oauthErr *OAuthError
	require.ErrorAs(t, err, &oauthErr)
	assert.Equal(t, "Lỗi xử lý xác thực OAuth. Vui lòng thử lại sau.", oauthErr.Message)
}

func TestOAuthUserFetchFailure(t *testing.T) {
	api := &fakeAPI{userErr: errors.New("boom")}
	m := newTestManager(api)

	_, err := m.CompleteOAuthRedirect(context.Background(), "/oauth2/redirect", url.Values{
		"token": {"tok"},
	})
	var oauthErr *OAuthError
	require.ErrorAs(t, err, &oauthErr)
	assert.Equal(t, "Không thể lấy dữ liệu người dùng. Vui lòng thử lại.", oauthErr.Message)
}

func TestOAuthProviderError(t *testing.T) {
	m := newTestManager(&fakeAPI{})

	_, err := m.CompleteOAuthRedirect(context.Background(), "/oauth2/redirect", url.Values{
		"error": {"access_denied"},
	})
	var oauthErr *OAuthError
	require.ErrorAs(t, err, &oauthErr)
	assert.Equal(t, "access_denied", oauthErr.Message)
}

func TestOAuthNoCredentials(t *testing.T) {
	m := newTestManager(&fakeAPI{})

	_, err := m.CompleteOAuthRedirect(context.Background(), "/oauth2/redirect", url.Values{})
	var oauthErr *OAuthError
	require.ErrorAs(t, err, &oauthErr)
	assert.Equal(t, "Không có thông tin xác thực.", oauthErr.Message)
}

func TestPostLoginTarget(t *testing.T) {
	admin := &model.Session{Token: "t", User: testUser("ADMIN")}
	user := &model.Session{Token: "t", User: testUser("USER")}

	assert.Equal(t, RedirectAdmin, PostLoginTarget(admin, ""))
	assert.Equal(t, RedirectHome, PostLoginTarget(user, ""))
	assert.Equal(t, "/booking", PostLoginTarget(user, "/booking"))
	assert.Equal(t, "/booking", PostLoginTarget(admin, "/booking"))
	assert.Equal(t, RedirectAdmin, PostLoginTarget(admin, "/"))
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/airline-reservation/internal/utils"
)

const testSecret = "test-secret"

func runProtected(t *testing.T, authHeader string, mws ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	require.NoError(t, handler(c))
	return rec
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, "CUSTOMER", 5)
	require.NoError(t, err)

	rec := runProtected(t, "Bearer "+tok.Token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	rec := runProtected(t, "", JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = runProtected(t, "Bearer not-a-jwt", JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	tok, err := utils.NewAccessToken("other-secret", 7, "CUSTOMER", 5)
	require.NoError(t, err)
	rec = runProtected(t, "Bearer "+tok.Token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	staff, err := utils.NewAccessToken(testSecret, 1, "STAFF", 5)
	require.NoError(t, err)
	customer, err := utils.NewAccessToken(testSecret, 2, "CUSTOMER", 5)
	require.NoError(t, err)

	rec := runProtected(t, "Bearer "+staff.Token, JWTAuth(testSecret), RequireRole("STAFF"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = runProtected(t, "Bearer "+customer.Token, JWTAuth(testSecret), RequireRole("STAFF"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = runProtected(t, "Bearer "+customer.Token, JWTAuth(testSecret), RequireRole("CUSTOMER", "STAFF"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

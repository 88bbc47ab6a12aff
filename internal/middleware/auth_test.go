package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrebktas/modpack-assistant/internal/domain"
	"github.com/emrebktas/modpack-assistant/internal/infrastructure/security"
)

type stubUserRepo struct {
	user *domain.User
}

func (r *stubUserRepo) Save(context.Context, *domain.User) error { return nil }

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return r.user, nil
}

func (r *stubUserRepo) FindByUsername(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsername(context.Context, string) (bool, error) { return false, nil }

func (r *stubUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

func (r *stubUserRepo) ResolveStatus(context.Context, string, domain.Status) (bool, error) {
	return false, nil
}

func newAuthRouter(tokens domain.TokenService, users domain.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(tokens, users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAllowsApprovedUser(t *testing.T) {
	tokens := security.NewJWTService("test-secret", 1)
	user := domain.NewUser("user-1", "steve", "steve@example.com", "hash")
	user.Status = domain.StatusApproved

	token, _, err := tokens.Generate(user)
	require.NoError(t, err)

	w := doRequest(newAuthRouter(tokens, &stubUserRepo{user: user}), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	tokens := security.NewJWTService("test-secret", 1)
	r := newAuthRouter(tokens, &stubUserRepo{})

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer not-a-token").Code)
}

func TestAuthRejectsPendingUser(t *testing.T) {
	tokens := security.NewJWTService("test-secret", 1)
	user := domain.NewUser("user-1", "steve", "steve@example.com", "hash")

	token, _, err := tokens.Generate(user)
	require.NoError(t, err)

	// The token echoed at registration is valid but the account is still
	// PENDING, so protected routes stay closed.
	w := doRequest(newAuthRouter(tokens, &stubUserRepo{user: user}), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthRejectsUnknownUser(t *testing.T) {
	tokens := security.NewJWTService("test-secret", 1)
	user := domain.NewUser("ghost", "ghost", "ghost@example.com", "hash")

	token, _, err := tokens.Generate(user)
	require.NoError(t, err)

	w := doRequest(newAuthRouter(tokens, &stubUserRepo{}), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

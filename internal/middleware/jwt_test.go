package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidya-cue/teacher-api/internal/models"
	"github.com/vidya-cue/teacher-api/internal/repository"
	"github.com/vidya-cue/teacher-api/internal/service"
	"github.com/vidya-cue/teacher-api/internal/store"
)

func newGuardedRouter(t *testing.T, expiry time.Duration) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	coll, err := store.NewCollection[models.Teacher](t.TempDir(), "teachers")
	require.NoError(t, err)
	repo := repository.NewTeacherRepository(coll)
	authSvc := service.NewAuthService(repo, nil, nil, service.AuthConfig{TokenSecret: "secret", TokenExpiry: expiry})

	r := gin.New()
	r.GET("/protected", JWT(authSvc), func(c *gin.Context) {
		claims := c.MustGet(ContextUserKey).(*models.JWTClaims)
		c.JSON(http.StatusOK, gin.H{"id": claims.ID})
	})
	return r, authSvc
}

func registerAndToken(t *testing.T, svc *service.AuthService) (string, string) {
	t.Helper()
	res, err := svc.Register(context.Background(), models.RegisterRequest{
		Name: "T", Email: "t@x.com", Password: "hunter22", Department: "Math",
	})
	require.NoError(t, err)
	return res.Token, res.Teacher.ID
}

func TestJWTMiddlewareRejectsMissingToken(t *testing.T) {
	r, _ := newGuardedRouter(t, time.Hour)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization denied")
}

func TestJWTMiddlewareRejectsMalformedHeader(t *testing.T) {
	r, _ := newGuardedRouter(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddlewareRejectsGarbageToken(t *testing.T) {
	r, _ := newGuardedRouter(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is not valid")
}

func TestJWTMiddlewareRejectsExpiredToken(t *testing.T) {
	r, svc := newGuardedRouter(t, -time.Minute)
	token, _ := registerAndToken(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	r, svc := newGuardedRouter(t, time.Hour)
	token, teacherID := registerAndToken(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), teacherID)
}

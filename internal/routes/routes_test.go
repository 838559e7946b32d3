package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"luvo_backend/database"
	"luvo_backend/internal/auth"
	"luvo_backend/internal/email"
	"luvo_backend/internal/handlers"
	"luvo_backend/internal/models"
	"luvo_backend/internal/services"
	"luvo_backend/internal/validator"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	tokens := auth.NewTokenManager("test-secret", 60)
	sc := services.NewServiceContainer(db, tokens, email.NewNoopProvider(), models.DefaultCoinBalance)
	appHandlers := handlers.NewAppHandlers(sc, validator.New())

	router := gin.New()
	RegisterRoutes(router, appHandlers, tokens)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func signupAs(t *testing.T, router *gin.Engine, emailAddr, role string) string {
	t.Helper()

	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    emailAddr,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &signup))

	rec, _ = doJSON(t, router, http.MethodPut, "/api/role/update", signup.Token, gin.H{"role": role})
	require.Equal(t, http.StatusOK, rec.Code)

	// Role claims live in the token, so re-login after picking one.
	rec, env = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    emailAddr,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	return login.Token
}

func TestMissingTokenRejectedWithEnvelope(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodGet, "/api/role/current", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Authentication required", env.Message)
}

func TestGarbageTokenRejected(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodGet, "/api/role/current", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
}

func TestSignupThenRoleFlow(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "flow@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var signup struct {
		Token string `json:"token"`
		User  struct {
			Role *string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &signup))
	assert.Nil(t, signup.User.Role)

	rec, env = doJSON(t, router, http.MethodGet, "/api/role/current", signup.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"role":null}`, string(env.Data))

	rec, env = doJSON(t, router, http.MethodPut, "/api/role/update", signup.Token, gin.H{"role": "candidate"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"role":"candidate"}`, string(env.Data))
}

func TestRoleUpdateRejectsUnknownRole(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "badrole@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &signup))

	rec, env = doJSON(t, router, http.MethodPut, "/api/role/update", signup.Token, gin.H{"role": "admin"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestCandidateRoutesEnforceRole(t *testing.T) {
	router := newTestRouter(t)
	recruiterToken := signupAs(t, router, "recruiter@example.com", "recruiter")

	rec, env := doJSON(t, router, http.MethodGet, "/api/candidate/coins", recruiterToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, env.Success)
}

func TestCandidateCoinEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := signupAs(t, router, "cand@example.com", "candidate")

	rec, env := doJSON(t, router, http.MethodGet, "/api/candidate/coins", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"coins":100,"score":0}`, string(env.Data))
}

func TestRecruiterJobLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	recruiterToken := signupAs(t, router, "recruiter@example.com", "recruiter")
	candidateToken := signupAs(t, router, "cand@example.com", "candidate")

	rec, env := doJSON(t, router, http.MethodPost, "/api/recruiter/jobs", recruiterToken, gin.H{
		"title":    "Go Developer",
		"company":  "Acme",
		"type":     "full-time",
		"coinCost": 10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var job struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &job))
	require.NotEmpty(t, job.ID)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/candidate/applications/"+job.ID, candidateToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, router, http.MethodGet, "/api/candidate/coins", candidateToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"coins":90,"score":0}`, string(env.Data))

	// Applying twice is rejected and never charged again.
	rec, env = doJSON(t, router, http.MethodPost, "/api/candidate/applications/"+job.ID, candidateToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "You have already applied for this job", env.Message)
}

func TestValidationErrorsReturnEnvelope(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "not-an-email",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

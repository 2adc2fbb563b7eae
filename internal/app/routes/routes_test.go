package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/learnhub/internal/app/controllers"
	"github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/app/services"
	"github.com/oguzk/learnhub/internal/middleware"
	pkgAuth "github.com/oguzk/learnhub/internal/pkg/auth"
	"github.com/oguzk/learnhub/internal/seed"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := repositories.NewRepositories()
	require.NoError(t, seed.CreateDefaultData(context.Background(), repos, zerolog.Nop()))

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})

	authService := services.NewAuthService(repos.UserRepository, jwtService, zerolog.Nop())
	courseService := services.NewCourseService(repos.CourseRepository)
	enrollmentService := services.NewEnrollmentService(repos.EnrollmentRepository)
	progressService := services.NewProgressService(repos.ProgressRepository)
	reminderService := services.NewReminderService(repos.ReminderRepository)
	userService := services.NewUserService(repos.UserRepository, repos.EnrollmentRepository)

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(authService, zerolog.Nop()),
		controllers.NewCourseController(courseService),
		controllers.NewEnrollmentController(enrollmentService, zerolog.Nop()),
		controllers.NewProgressController(progressService),
		controllers.NewReminderController(reminderService),
		controllers.NewUserController(userService),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers ...map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func registerUser(t *testing.T, router *gin.Engine, email string) (userID, token string) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[map[string]json.RawMessage](t, rec)
	var user struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp["user"], &user))
	var tok struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(resp["token"], &tok))
	return user.ID, tok.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterEndpoint(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password", "password hash must never leak")
	assert.NotContains(t, rec.Body.String(), "hunter22")

	t.Run("duplicate email", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
			"name":     "Imposter",
			"email":    "ada@example.com",
			"password": "whatever",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := decode[map[string]any](t, rec)
		assert.Equal(t, "User already exists", body["message"])
		assert.Len(t, body, 1, "error body carries only a message field")
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{"name": "No Email"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
			"name":     "Shorty",
			"email":    "short@example.com",
			"password": "abc",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	router := setupRouter(t)
	registerUser(t, router, "ada@example.com")

	t.Run("valid credentials", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
			"email":    "ada@example.com",
			"password": "hunter22",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
			"email":    "ada@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
			"email":    "ghost@example.com",
			"password": "hunter22",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMeEndpoint(t *testing.T) {
	router := setupRouter(t)
	userID, token := registerUser(t, router, "ada@example.com")

	t.Run("with token", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil,
			map[string]string{"Authorization": "Bearer " + token})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), userID)
	})

	t.Run("without token", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil,
			map[string]string{"Authorization": "Bearer not-a-jwt"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCourseEndpoints(t *testing.T) {
	router := setupRouter(t)

	t.Run("full catalog", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/courses", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		courses := decode[[]map[string]any](t, rec)
		assert.Len(t, courses, 6)
	})

	t.Run("category filter", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/courses?category=web-development", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		courses := decode[[]map[string]any](t, rec)
		ids := make(map[string]bool)
		for _, course := range courses {
			ids[course["id"].(string)] = true
		}
		assert.Equal(t, map[string]bool{
			"js-course-2024":     true,
			"react-masterclass":  true,
			"fullstack-bootcamp": true,
		}, ids)
	})

	t.Run("category and level", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/courses?category=web-development&level=intermediate", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		courses := decode[[]map[string]any](t, rec)
		require.Len(t, courses, 1)
		assert.Equal(t, "react-masterclass", courses[0]["id"])
	})

	t.Run("single course", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/courses/js-course-2024", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		course := decode[map[string]any](t, rec)
		assert.Equal(t, "Complete JavaScript Course 2024", course["title"])
	})

	t.Run("unknown course", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/courses/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, "Course not found", body["message"])
	})
}

func TestEnrollmentEndpoints(t *testing.T) {
	router := setupRouter(t)
	userID, _ := registerUser(t, router, "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/enrollments", gin.H{
		"userId":   userID,
		"courseId": "js-course-2024",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	enrollment := decode[map[string]any](t, rec)
	enrollmentID := enrollment["id"].(string)
	assert.Equal(t, 0.0, enrollment["progress"])

	t.Run("duplicate enrollment is 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/enrollments", gin.H{
			"userId":   userID,
			"courseId": "js-course-2024",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, "Already enrolled in this course", body["message"])
	})

	t.Run("list user enrollments", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/users/"+userID+"/enrollments", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		enrollments := decode[[]map[string]any](t, rec)
		assert.Len(t, enrollments, 1)
	})

	t.Run("patch clamps progress and derives completed", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPatch, "/api/enrollments/"+enrollmentID, gin.H{
			"progress": 150,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		updated := decode[map[string]any](t, rec)
		assert.Equal(t, 100.0, updated["progress"])
		assert.Equal(t, true, updated["completed"])
	})

	t.Run("patch unknown enrollment", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPatch, "/api/enrollments/missing", gin.H{"progress": 10})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProgressEndpoints(t *testing.T) {
	router := setupRouter(t)
	userID, _ := registerUser(t, router, "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/progress", gin.H{
		"userId":    userID,
		"courseId":  "js-course-2024",
		"lessonId":  "Variables and Data Types",
		"completed": true,
		"timeSpent": 20,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	record := decode[map[string]any](t, rec)
	assert.NotNil(t, record["completedAt"])

	t.Run("course scoped list", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/users/"+userID+"/courses/js-course-2024/progress", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		records := decode[[]map[string]any](t, rec)
		assert.Len(t, records, 1)

		rec = doJSON(t, router, http.MethodGet, "/api/users/"+userID+"/courses/react-masterclass/progress", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		records = decode[[]map[string]any](t, rec)
		assert.Empty(t, records)
	})

	t.Run("patch unknown record", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPatch, "/api/progress/missing", gin.H{"completed": true})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReminderEndpoints(t *testing.T) {
	router := setupRouter(t)
	userID, _ := registerUser(t, router, "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/reminders", gin.H{
		"userId":       userID,
		"courseId":     "js-course-2024",
		"reminderTime": "18:30",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	reminder := decode[map[string]any](t, rec)
	assert.Equal(t, true, reminder["enabled"])
	reminderID := reminder["id"].(string)

	t.Run("malformed time", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/reminders", gin.H{
			"userId":       userID,
			"courseId":     "js-course-2024",
			"reminderTime": "half past six",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list user reminders", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/users/"+userID+"/reminders", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		reminders := decode[[]map[string]any](t, rec)
		assert.Len(t, reminders, 1)
	})

	t.Run("disable reminder", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPatch, "/api/reminders/"+reminderID, gin.H{"enabled": false})
		require.Equal(t, http.StatusOK, rec.Code)
		updated := decode[map[string]any](t, rec)
		assert.Equal(t, false, updated["enabled"])
	})
}

func TestStatsEndpoint(t *testing.T) {
	router := setupRouter(t)
	userID, _ := registerUser(t, router, "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/enrollments", gin.H{
		"userId":   userID,
		"courseId": "js-course-2024",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	enrollment := decode[map[string]any](t, rec)
	enrollmentID := enrollment["id"].(string)

	rec = doJSON(t, router, http.MethodPatch, "/api/enrollments/"+enrollmentID, gin.H{
		"progress":  100,
		"timeSpent": 130,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/users/"+userID+"/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decode[map[string]any](t, rec)
	assert.Equal(t, 1.0, stats["coursesCompleted"])
	assert.Equal(t, 1.0, stats["certificates"])
	assert.Equal(t, 2.0, stats["totalHours"], "130 minutes floors to 2 hours")

	t.Run("unknown user", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/users/missing/stats", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// Package client is a typed Go client for the LearnHub API. It keeps a
// file-backed local cache of the session user and the course, enrollment,
// progress and reminder lists. The server stays authoritative: reads go
// through the cache, writes go to the server and invalidate the cached lists.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/pkg/client/localstore"
)

var (
	// ErrLoginRequired is returned by operations that need a session user.
	ErrLoginRequired = errors.New("login required")
	// ErrAlreadyEnrolled is returned when the user already has an enrollment
	// for the course.
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
)

// APIError carries a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to a LearnHub server and caches reads locally.
type Client struct {
	http  *resty.Client
	store *localstore.Store
}

// NewClient creates a client for the given base URL (e.g.
// "http://localhost:3001") backed by the given local store.
func NewClient(baseURL string, store *localstore.Store) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Client{http: httpClient, store: store}
}

// session is the cached login state.
type session struct {
	User  models.User `json:"user"`
	Token string      `json:"token,omitempty"`
}

// Register creates an account and starts a session.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	return c.authenticate(ctx, "/api/auth/register", dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
}

// Login starts a session with existing credentials.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	return c.authenticate(ctx, "/api/auth/login", dto.LoginRequest{
		Email:    email,
		Password: password,
	})
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*models.User, error) {
	var out dto.AuthResponse
	if err := c.post(ctx, path, body, &out); err != nil {
		return nil, err
	}

	sess := session{User: *out.User}
	if out.Token != nil {
		sess.Token = out.Token.AccessToken
		c.http.SetAuthToken(out.Token.AccessToken)
	}
	if err := c.store.Save(localstore.KeyUser, sess); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Logout drops the session and every cached value.
func (c *Client) Logout() error {
	c.http.SetAuthToken("")
	return c.store.Clear()
}

// CurrentUser returns the cached session user, if any.
func (c *Client) CurrentUser() (*models.User, bool, error) {
	var sess session
	ok, err := c.store.Load(localstore.KeyUser, &sess)
	if err != nil || !ok {
		return nil, false, err
	}
	if sess.Token != "" {
		c.http.SetAuthToken(sess.Token)
	}
	return &sess.User, true, nil
}

// Courses returns the course catalog, served from the cache when present.
func (c *Client) Courses(ctx context.Context) ([]models.Course, error) {
	var cached []models.Course
	if ok, err := c.store.Load(localstore.KeyCourses, &cached); err != nil {
		return nil, err
	} else if ok {
		return cached, nil
	}

	var courses []models.Course
	if err := c.get(ctx, "/api/courses", &courses); err != nil {
		return nil, err
	}
	if err := c.store.Save(localstore.KeyCourses, courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Course fetches a single course by id, bypassing the cache.
func (c *Client) Course(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := c.get(ctx, "/api/courses/"+id, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// FilterCourses narrows a course list with a case-insensitive substring query
// over title, description and instructor, AND'd with optional category and
// level equality filters. Empty arguments do not filter.
func FilterCourses(courses []models.Course, query, category, level string) []models.Course {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if query != "" {
			haystack := strings.ToLower(course.Title + " " + course.Description + " " + course.Instructor)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		if category != "" && string(course.Category) != category {
			continue
		}
		if level != "" && string(course.Level) != level {
			continue
		}
		out = append(out, course)
	}
	return out
}

// Enroll enrolls the session user in a course. It fails with
// ErrLoginRequired without a session and ErrAlreadyEnrolled on a duplicate.
func (c *Client) Enroll(ctx context.Context, courseID string) (*models.Enrollment, error) {
	user, ok, err := c.CurrentUser()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLoginRequired
	}

	var enrollment models.Enrollment
	err = c.post(ctx, "/api/enrollments", dto.CreateEnrollmentRequest{
		UserID:   user.ID,
		CourseID: courseID,
	}, &enrollment)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest &&
			strings.Contains(strings.ToLower(apiErr.Message), "enrolled") {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	if err := c.store.Remove(localstore.KeyEnrollments); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Enrollments returns the session user's enrollments, served from the cache
// when present.
func (c *Client) Enrollments(ctx context.Context) ([]models.Enrollment, error) {
	user, ok, err := c.CurrentUser()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLoginRequired
	}

	var cached []models.Enrollment
	if ok, err := c.store.Load(localstore.KeyEnrollments, &cached); err != nil {
		return nil, err
	} else if ok {
		return cached, nil
	}

	var enrollments []models.Enrollment
	if err := c.get(ctx, "/api/users/"+user.ID+"/enrollments", &enrollments); err != nil {
		return nil, err
	}
	if err := c.store.Save(localstore.KeyEnrollments, enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// RecordStudySession advances an enrollment: progress is the new percentage
// (the server clamps it to [0,100] and derives completion) and minutes are
// added on top of the enrollment's accumulated time.
func (c *Client) RecordStudySession(ctx context.Context, enrollmentID string, progress float64, minutes int) (*models.Enrollment, error) {
	enrollments, err := c.Enrollments(ctx)
	if err != nil {
		return nil, err
	}

	current := 0
	for _, enrollment := range enrollments {
		if enrollment.ID == enrollmentID {
			current = enrollment.TimeSpent
			break
		}
	}
	total := current + minutes

	var updated models.Enrollment
	err = c.patch(ctx, "/api/enrollments/"+enrollmentID, dto.UpdateEnrollmentRequest{
		Progress:  &progress,
		TimeSpent: &total,
	}, &updated)
	if err != nil {
		return nil, err
	}

	if err := c.store.Remove(localstore.KeyEnrollments); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CompleteLesson records a finished lesson for the session user.
func (c *Client) CompleteLesson(ctx context.Context, courseID, lessonID string, minutes int) (*models.Progress, error) {
	user, ok, err := c.CurrentUser()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLoginRequired
	}

	var progress models.Progress
	err = c.post(ctx, "/api/progress", dto.CreateProgressRequest{
		UserID:    user.ID,
		CourseID:  courseID,
		LessonID:  lessonID,
		Completed: true,
		TimeSpent: minutes,
	}, &progress)
	if err != nil {
		return nil, err
	}

	if err := c.store.Remove(localstore.KeyProgress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// CourseProgress returns the session user's lesson records for one course,
// served from the cache when present.
func (c *Client) CourseProgress(ctx context.Context, courseID string) ([]models.Progress, error) {
	user, ok, err := c.CurrentUser()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLoginRequired
	}

	key := localstore.KeyProgress + ":" + courseID
	var cached []models.Progress
	if ok, err := c.store.Load(key, &cached); err != nil {
		return nil, err
	} else if ok {
		return cached, nil
	}

	var records []models.Progress
	if err := c.get(ctx, "/api/users/"+user.ID+"/courses/"+courseID+"/progress", &records); err != nil {
		return nil, err
	}
	if err := c.store.Save(key, records); err != nil {
		return nil, err
	}
	return records, nil
}

// Reminders returns the session user's study reminders, served from the
// cache when present.
func (c *Client) Reminders(ctx context.Context) ([]models.StudyReminder, error) {
	user, ok, err := c.CurrentUser()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLoginRequired
	}

	var cached []models.StudyReminder
	if ok, err := c.store.Load(localstore.KeyReminders, &cached); err != nil {
		return nil, err
	} else if ok {
		return cached, nil
	}

	var reminders []models.StudyReminder
	if err := c.get(ctx, "/api/users/"+user.ID+"/reminders", &reminders); err != nil {
		return nil, err
	}
	if err := c.store.Save(localstore.KeyReminders, reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// ScheduleReminder creates a daily study reminder at an "HH:MM" wall-clock
// time for the session user.
func (c *Client) ScheduleReminder(ctx context.Context, courseID, reminderTime string) (*models.StudyReminder, error) {
	user, ok, err := c.CurrentUser()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLoginRequired
	}

	var reminder models.StudyReminder
	err = c.post(ctx, "/api/reminders", dto.CreateReminderRequest{
		UserID:       user.ID,
		CourseID:     courseID,
		ReminderTime: reminderTime,
	}, &reminder)
	if err != nil {
		return nil, err
	}

	if err := c.store.Remove(localstore.KeyReminders); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// Stats returns the session user's aggregate learning statistics.
func (c *Client) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	user, ok, err := c.CurrentUser()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLoginRequired
	}

	var stats dto.StatsResponse
	if err := c.get(ctx, "/api/users/"+user.ID+"/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(&dto.ErrorResponse{}).
		Get(path)
	return checkResponse(resp, err)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(out).
		SetError(&dto.ErrorResponse{}).
		Post(path)
	return checkResponse(resp, err)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(out).
		SetError(&dto.ErrorResponse{}).
		Patch(path)
	return checkResponse(resp, err)
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		message := http.StatusText(resp.StatusCode())
		if body, ok := resp.Error().(*dto.ErrorResponse); ok && body.Message != "" {
			message = body.Message
		}
		return &APIError{StatusCode: resp.StatusCode(), Message: message}
	}
	return nil
}

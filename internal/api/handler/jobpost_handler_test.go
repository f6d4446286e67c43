package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ianglenncurilan/web-quickwork/internal/core/domain"
	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
)

const testUserID = "7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"

// stubJobPosts is a hand-written ports.JobPostStore with canned state.
type stubJobPosts struct {
	items []domain.JobPost
	err   error

	created *domain.JobPost
	updated *domain.JobPost
	deleted bool
}

func (s *stubJobPosts) FetchAll(context.Context) {}

func (s *stubJobPosts) FetchByUser(_ context.Context, userID string) []domain.JobPost {
	out := []domain.JobPost{}
	for _, p := range s.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

func (s *stubJobPosts) FetchByID(_ context.Context, id int64) *domain.JobPost {
	return s.ByID(id)
}

func (s *stubJobPosts) Create(context.Context, ports.CreateJobPostInput) *domain.JobPost {
	return s.created
}

func (s *stubJobPosts) Update(context.Context, int64, ports.UpdateJobPostInput) *domain.JobPost {
	return s.updated
}

func (s *stubJobPosts) Delete(context.Context, int64) bool { return s.deleted }

func (s *stubJobPosts) ByID(id int64) *domain.JobPost {
	for i := range s.items {
		if s.items[i].ID == id {
			p := s.items[i]
			return &p
		}
	}
	return nil
}

func (s *stubJobPosts) Items() []domain.JobPost { return s.items }
func (s *stubJobPosts) Loading() bool           { return false }
func (s *stubJobPosts) Err() error              { return s.err }

func boardPost(id int64, userID string) domain.JobPost {
	return domain.JobPost{
		ID:             id,
		JobName:        "tutor",
		JobDescription: "desc",
		UserID:         userID,
		MonthlyRate:    500,
		JobType:        domain.JobTypePartTime,
		PostedAt:       time.Now().UTC(),
		CreatedAt:      time.Now().UTC(),
	}
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestJobPostList_ReturnsBoard(t *testing.T) {
	store := &stubJobPosts{items: []domain.JobPost{boardPost(2, "u1"), boardPost(1, "u2")}}
	h := NewJobPostHandler(store)

	c, rec := newTestContext(t, http.MethodGet, "/v1/jobs", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":2`) {
		t.Fatalf("missing post in body: %s", rec.Body.String())
	}
}

func TestJobPostList_ServesStaleCacheOnRefreshFailure(t *testing.T) {
	store := &stubJobPosts{
		items: []domain.JobPost{boardPost(1, "u1")},
		err:   errors.New("backend down"),
	}
	h := NewJobPostHandler(store)

	c, rec := newTestContext(t, http.MethodGet, "/v1/jobs", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("stale cache must still serve, got %d", rec.Code)
	}
}

func TestJobPostList_EmptyCacheAndFailureIs502(t *testing.T) {
	store := &stubJobPosts{err: errors.New("backend down")}
	h := NewJobPostHandler(store)

	c, _ := newTestContext(t, http.MethodGet, "/v1/jobs", "")
	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %v", err)
	}
}

func TestJobPostGet_NotFound(t *testing.T) {
	h := NewJobPostHandler(&stubJobPosts{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/jobs/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestJobPostGet_InvalidID(t *testing.T) {
	h := NewJobPostHandler(&stubJobPosts{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/jobs/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestJobPostCreate_RequiresClaims(t *testing.T) {
	h := NewJobPostHandler(&stubJobPosts{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/jobs", `{"job_name":"x"}`)
	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestJobPostCreate_RejectsUnknownJobType(t *testing.T) {
	h := NewJobPostHandler(&stubJobPosts{})

	body := `{"job_name":"tutor","job_description":"desc","monthly_rate":500,"job_type":"weekend"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/jobs", body)
	c.Set("user_id", testUserID)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestJobPostCreate_ReturnsPersistedPost(t *testing.T) {
	created := boardPost(7, testUserID)
	h := NewJobPostHandler(&stubJobPosts{created: &created})

	body := `{"job_name":"tutor","job_description":"desc","monthly_rate":500,"job_type":"part-time"}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/jobs", body)
	c.Set("user_id", testUserID)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":7`) {
		t.Fatalf("missing created post: %s", rec.Body.String())
	}
}

func TestJobPostDelete_ForbiddenForNonOwner(t *testing.T) {
	store := &stubJobPosts{items: []domain.JobPost{boardPost(1, "someone-else")}, deleted: true}
	h := NewJobPostHandler(store)

	c, _ := newTestContext(t, http.MethodDelete, "/v1/jobs/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set("user_id", testUserID)

	err := h.Delete(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestJobPostDelete_OwnerSucceeds(t *testing.T) {
	store := &stubJobPosts{items: []domain.JobPost{boardPost(1, testUserID)}, deleted: true}
	h := NewJobPostHandler(store)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/jobs/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set("user_id", testUserID)

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

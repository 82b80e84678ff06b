package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmendes/taskvault/internal/api"
	"github.com/pmendes/taskvault/internal/api/shared"
	"github.com/pmendes/taskvault/internal/domain"
	"github.com/pmendes/taskvault/internal/mocks"
	"github.com/pmendes/taskvault/internal/service"
)

type taskFixture struct {
	tasks  *mocks.MockTaskStore
	router http.Handler
	userID int64
}

// newTaskFixture builds a router with the task routes behind a stub session
// gate that authenticates every request as the fixture's user.
func newTaskFixture() *taskFixture {
	f := &taskFixture{
		tasks:  mocks.NewMockTaskStore(),
		userID: 1,
	}

	handler := api.NewTaskHandler(service.NewTaskService(f.tasks))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user := &domain.User{ID: f.userID, UserName: "alice", EmailID: "alice@example.com"}
			next.ServeHTTP(w, req.WithContext(shared.WithUser(req.Context(), user)))
		})
	})
	r.Get("/tasks", handler.List)
	r.Post("/tasks", handler.Create)
	r.Get("/tasks/{id}", handler.Get)
	r.Put("/tasks/{id}", handler.Update)
	r.Delete("/tasks/{id}", handler.Delete)

	f.router = r
	return f
}

func (f *taskFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func (f *taskFixture) seed(t *testing.T, userID int64, count int, completed ...int64) {
	t.Helper()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < count; i++ {
		task, err := domain.NewTask(userID, fmt.Sprintf("Task %d", i+1), "")
		require.NoError(t, err)
		task.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, f.tasks.Create(context.Background(), task))
	}
	for _, id := range completed {
		f.tasks.Tasks[id].Completed = true
	}
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []api.TaskResponse {
	t.Helper()
	var resp []api.TaskResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestTaskHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("defaults to first page of ten", func(t *testing.T) {
		t.Parallel()

		f := newTaskFixture()
		f.seed(t, 1, 12)

		rr := f.do(http.MethodGet, "/tasks", "")
		require.Equal(t, http.StatusOK, rr.Code)

		// The body is a bare JSON array, not an object wrapping one.
		assert.True(t, strings.HasPrefix(strings.TrimSpace(rr.Body.String()), "["))

		resp := decodeList(t, rr)
		require.Len(t, resp, 10)
		assert.Equal(t, "Task 1", resp[0].Title)
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()

		f := newTaskFixture()
		f.seed(t, 1, 5)

		rr := f.do(http.MethodGet, "/tasks?limit=2&page=2", "")
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeList(t, rr)
		require.Len(t, resp, 2)
		assert.Equal(t, "Task 3", resp[0].Title)
		assert.Equal(t, "Task 4", resp[1].Title)

		// A page past the end is an empty array, not an error or null.
		rr = f.do(http.MethodGet, "/tasks?limit=2&page=9", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
	})

	t.Run("malformed query values fall back to defaults", func(t *testing.T) {
		t.Parallel()

		f := newTaskFixture()
		f.seed(t, 1, 3)

		rr := f.do(http.MethodGet, "/tasks?limit=abc&page=-2&show_completed=banana", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeList(t, rr), 3)
	})

	t.Run("absurd page numbers stay in range", func(t *testing.T) {
		t.Parallel()

		f := newTaskFixture()
		f.seed(t, 1, 3)

		// A page large enough to overflow (page-1)*limit must not turn into
		// a negative offset; it is just an empty page.
		rr := f.do(http.MethodGet, "/tasks?page=9223372036854775807", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
	})

	t.Run("show_completed filters to completed tasks", func(t *testing.T) {
		t.Parallel()

		f := newTaskFixture()
		f.seed(t, 1, 4, 2, 3)

		resp := decodeList(t, f.do(http.MethodGet, "/tasks?show_completed=true", ""))
		require.Len(t, resp, 2)
		for _, task := range resp {
			assert.True(t, task.Completed)
		}

		// Default view includes everything.
		assert.Len(t, decodeList(t, f.do(http.MethodGet, "/tasks", "")), 4)
	})

	t.Run("never shows another user's tasks", func(t *testing.T) {
		t.Parallel()

		f := newTaskFixture()
		f.seed(t, 2, 5)

		assert.Empty(t, decodeList(t, f.do(http.MethodGet, "/tasks", "")))
	})
}

func TestTaskHandler_Get(t *testing.T) {
	t.Parallel()

	f := newTaskFixture()
	f.seed(t, 1, 1)
	f.seed(t, 2, 1)

	rr := f.do(http.MethodGet, "/tasks/1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var task api.TaskResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &task))
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "Task 1", task.Title)

	// Task 2 belongs to another user; it reads as missing.
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/tasks/2", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/tasks/99", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/tasks/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/tasks/-1", "").Code)
}

func TestTaskHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		f := newTaskFixture()
		rr := f.do(http.MethodPost, "/tasks", `{"title":"Buy groceries","description":"Milk"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Message string           `json:"message"`
			Task    api.TaskResponse `json:"task"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Task created successfully", resp.Message)
		assert.NotZero(t, resp.Task.ID)
		assert.False(t, resp.Task.Completed)

		stored := f.tasks.Tasks[resp.Task.ID]
		require.NotNil(t, stored)
		assert.Equal(t, int64(1), stored.UserID)
	})

	t.Run("invalid payloads", func(t *testing.T) {
		t.Parallel()

		f := newTaskFixture()
		assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/tasks", `{"title":`).Code)
		assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/tasks", `{"description":"no title"}`).Code)
		assert.Equal(t, http.StatusBadRequest,
			f.do(http.MethodPost, "/tasks", fmt.Sprintf(`{"title":%q}`, strings.Repeat("t", 256))).Code)
	})
}

func TestTaskHandler_Update(t *testing.T) {
	t.Parallel()

	f := newTaskFixture()
	f.seed(t, 1, 1)
	f.seed(t, 2, 1)

	rr := f.do(http.MethodPut, "/tasks/1", `{"title":"Renamed","description":"New"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Task updated successfully")
	assert.Equal(t, "Renamed", f.tasks.Tasks[1].Title)

	// A miss reports the same success without touching anything.
	rr = f.do(http.MethodPut, "/tasks/99", `{"title":"Ghost","description":""}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = f.do(http.MethodPut, "/tasks/2", `{"title":"Hijack","description":""}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEqual(t, "Hijack", f.tasks.Tasks[2].Title, "other user's task stays untouched")

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPut, "/tasks/1", `{"description":"no title"}`).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPut, "/tasks/abc", `{"title":"x"}`).Code)
}

func TestTaskHandler_Delete(t *testing.T) {
	t.Parallel()

	f := newTaskFixture()
	f.seed(t, 1, 1)
	f.seed(t, 2, 1)

	rr := f.do(http.MethodDelete, "/tasks/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Task deleted successfully")
	assert.NotContains(t, f.tasks.Tasks, int64(1))

	// Misses and cross-user deletes are silent successes.
	assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/tasks/1", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/tasks/2", "").Code)
	assert.Contains(t, f.tasks.Tasks, int64(2), "other user's task survives")

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodDelete, "/tasks/0", "").Code)
}

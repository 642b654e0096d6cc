package message

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchcms/internal/database"
	"churchcms/internal/domain/coordinator"
	"churchcms/internal/pkg/pagination"
	"churchcms/internal/pkg/testutil"
)

type fixture struct {
	router        *gin.Engine
	coordinators  *coordinator.Service
	coordinatorID string
}

func setupTestRouter(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := database.OpenTest(t, &coordinator.Coordinator{}, &Message{})
	m, _ := testutil.NewMedia()
	coordinators := coordinator.NewService(db, m)
	co, err := coordinators.Create(context.Background(), coordinator.CreateCoordinatorRequest{
		Name: "Paul", Occupation: "Elder", PhoneNumber: "555-0102", About: "Men's fellowship",
		ImageURL: "https://cdn.example.org/coordinators/paul.jpg",
	}, nil)
	require.NoError(t, err)

	r := gin.New()
	NewHandler(NewService(db, coordinators)).RegisterRoutes(r.Group("/api"))
	return &fixture{router: r, coordinators: coordinators, coordinatorID: co.ID}
}

func (f *fixture) post(t *testing.T, body map[string]any) Message {
	t.Helper()
	if _, ok := body["coordinatorId"]; !ok {
		body["coordinatorId"] = f.coordinatorID
	}
	rr := testutil.Serve(f.router, testutil.JSON(http.MethodPost, "/api/messages", body))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return testutil.Data[Message](t, testutil.Decode(t, rr))
}

func TestCreate_DefaultsAndCoordinator(t *testing.T) {
	f := setupTestRouter(t)

	m := f.post(t, map[string]any{"title": "Hope", "content": "<p>Hold fast to hope.</p>"})
	assert.True(t, m.IsPublished)
	assert.False(t, m.DatePublished.IsZero())
	assert.Equal(t, "Hold fast to hope.", m.Excerpt)
	require.NotNil(t, m.Coordinator)
	assert.Equal(t, "Paul", m.Coordinator.Name)
	assert.Equal(t, "https://cdn.example.org/coordinators/paul.jpg", m.Coordinator.ImageURL)

	draft := f.post(t, map[string]any{"title": "Draft", "content": "wip", "isPublished": false})
	assert.False(t, draft.IsPublished)
}

func TestCreate_UnknownCoordinator(t *testing.T) {
	f := setupTestRouter(t)
	rr := testutil.Serve(f.router, testutil.JSON(http.MethodPost, "/api/messages", map[string]any{
		"title": "Lost", "content": "x", "coordinatorId": "missing",
	}))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Coordinator does not exist", testutil.Decode(t, rr).Message)
}

func TestList_PublishedFilterAndPagination(t *testing.T) {
	f := setupTestRouter(t)
	f.post(t, map[string]any{"title": "Old", "content": "a", "datePublished": "2024-01-01"})
	f.post(t, map[string]any{"title": "New", "content": "b", "datePublished": "2024-06-01"})
	f.post(t, map[string]any{"title": "Hidden", "content": "c", "isPublished": false})

	rr := testutil.Serve(f.router, testutil.JSON(http.MethodGet, "/api/messages?isPublished=true&limit=1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	env := testutil.Decode(t, rr)
	var meta pagination.MessageMeta
	require.NoError(t, json.Unmarshal(env.Pagination, &meta))
	assert.Equal(t, int64(2), meta.TotalMessages)
	assert.True(t, meta.HasNextPage)
	items := testutil.Data[[]Message](t, env)
	require.Len(t, items, 1)
	assert.Equal(t, "New", items[0].Title)

	rr = testutil.Serve(f.router, testutil.JSON(http.MethodGet, "/api/messages", nil))
	require.NoError(t, json.Unmarshal(testutil.Decode(t, rr).Pagination, &meta))
	assert.Equal(t, int64(3), meta.TotalMessages)

	rr = testutil.Serve(f.router, testutil.JSON(http.MethodGet, "/api/messages/coordinator/"+f.coordinatorID+"?isPublished=false", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	hidden := testutil.Data[[]Message](t, testutil.Decode(t, rr))
	require.Len(t, hidden, 1)
	assert.Equal(t, "Hidden", hidden[0].Title)
}

func TestLatest(t *testing.T) {
	f := setupTestRouter(t)

	rr := testutil.Serve(f.router, testutil.JSON(http.MethodGet, "/api/messages/latest", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "No published messages found", testutil.Decode(t, rr).Message)

	f.post(t, map[string]any{"title": "Old", "content": "a", "datePublished": "2024-01-01"})
	f.post(t, map[string]any{"title": "Unpublished", "content": "b", "datePublished": "2025-01-01", "isPublished": false})
	f.post(t, map[string]any{"title": "Recent", "content": "c", "datePublished": "2024-12-01"})

	rr = testutil.Serve(f.router, testutil.JSON(http.MethodGet, "/api/messages/latest", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Recent", testutil.Data[Message](t, testutil.Decode(t, rr)).Title)
}

func TestCoordinatorDeletedLater_PopulatesNull(t *testing.T) {
	f := setupTestRouter(t)
	m := f.post(t, map[string]any{"title": "Hope", "content": "text"})

	_, err := f.coordinators.Delete(context.Background(), f.coordinatorID)
	require.NoError(t, err)

	rr := testutil.Serve(f.router, testutil.JSON(http.MethodGet, "/api/messages/"+m.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	got := testutil.Data[Message](t, testutil.Decode(t, rr))
	assert.Nil(t, got.Coordinator)
	assert.Equal(t, f.coordinatorID, got.CoordinatorID)
}

func TestUpdateAndDelete(t *testing.T) {
	f := setupTestRouter(t)
	m := f.post(t, map[string]any{"title": "Hope", "content": "text"})

	rr := testutil.Serve(f.router, testutil.JSON(http.MethodPut, "/api/messages/"+m.ID, map[string]any{"isPublished": false}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := testutil.Data[Message](t, testutil.Decode(t, rr))
	assert.False(t, updated.IsPublished)
	assert.Equal(t, "Hope", updated.Title)

	rr = testutil.Serve(f.router, testutil.JSON(http.MethodDelete, "/api/messages/"+m.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	rr = testutil.Serve(f.router, testutil.JSON(http.MethodDelete, "/api/messages/"+m.ID, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

package memory

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchcms/internal/database"
	"churchcms/internal/domain/activity"
	"churchcms/internal/pkg/pagination"
	"churchcms/internal/pkg/testutil"
	"churchcms/internal/storage"
)

type fixture struct {
	router     *gin.Engine
	store      *storage.MemoryStore
	activityID string
}

func setupTestRouter(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := database.OpenTest(t, &activity.Activity{}, &Memory{})
	m, store := testutil.NewMedia()
	activities := activity.NewService(db)
	a, err := activities.Create(context.Background(), activity.CreateActivityRequest{
		Name: "Harvest", Date: "2024-09-01", Description: "Harvest thanksgiving",
	})
	require.NoError(t, err)

	r := gin.New()
	NewHandler(NewService(db, activities, m)).RegisterRoutes(r.Group("/api"))
	return &fixture{router: r, store: store, activityID: a.ID}
}

func (f *fixture) upload(t *testing.T, w, h int) Memory {
	t.Helper()
	part := testutil.Part{Field: "image", Name: "photo.png", ContentType: "image/png", Data: testutil.PNG(w, h)}
	rr := testutil.Serve(f.router, testutil.Multipart(t, http.MethodPost, "/api/memory/with-image",
		map[string]string{"activityId": f.activityID}, part))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return testutil.Data[Memory](t, testutil.Decode(t, rr))
}

func TestCreateWithImage_RecordsDimensions(t *testing.T) {
	f := setupTestRouter(t)

	m := f.upload(t, 8, 5)
	assert.Equal(t, 8, m.Width)
	assert.Equal(t, 5, m.Height)
	assert.Equal(t, "image/png", m.ImgType)
	assert.Contains(t, m.ImageURL, "/memories/")
	assert.True(t, f.store.Has(m.ImageURL))
}

func TestCreateWithImage_ImageIsRequired(t *testing.T) {
	f := setupTestRouter(t)

	rr := testutil.Serve(f.router, testutil.Multipart(t, http.MethodPost, "/api/memory/with-image",
		map[string]string{"activityId": f.activityID}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, f.store.Len())
}

func TestCreateWithImage_UnknownActivity(t *testing.T) {
	f := setupTestRouter(t)
	part := testutil.Part{Field: "image", Name: "photo.png", ContentType: "image/png", Data: testutil.PNG(2, 2)}

	rr := testutil.Serve(f.router, testutil.Multipart(t, http.MethodPost, "/api/memory/with-image",
		map[string]string{"activityId": "no-such-activity"}, part))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Activity does not exist", testutil.Decode(t, rr).Message)
	assert.Zero(t, f.store.Len())
}

func TestUpdateWithImage_RecomputesDimensions(t *testing.T) {
	f := setupTestRouter(t)
	old := f.upload(t, 8, 5)

	part := testutil.Part{Field: "image", Name: "wide.png", ContentType: "image/png", Data: testutil.PNG(16, 9)}
	rr := testutil.Serve(f.router, testutil.Multipart(t, http.MethodPut, "/api/memory/"+old.ID+"/with-image", nil, part))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	updated := testutil.Data[Memory](t, testutil.Decode(t, rr))
	assert.Equal(t, 16, updated.Width)
	assert.Equal(t, 9, updated.Height)
	assert.NotEqual(t, old.ImageURL, updated.ImageURL)
	assert.False(t, f.store.Has(old.ImageURL))
	assert.Equal(t, 1, f.store.Len())
}

func TestUpdateWithImage_FormURLIgnoredWhenFileSent(t *testing.T) {
	f := setupTestRouter(t)
	target := f.upload(t, 4, 4)
	other := f.upload(t, 6, 6)

	part := testutil.Part{Field: "image", Name: "new.png", ContentType: "image/png", Data: testutil.PNG(3, 3)}
	rr := testutil.Serve(f.router, testutil.Multipart(t, http.MethodPut, "/api/memory/"+target.ID+"/with-image",
		map[string]string{"imageUrl": other.ImageURL}, part))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	updated := testutil.Data[Memory](t, testutil.Decode(t, rr))
	assert.NotEqual(t, other.ImageURL, updated.ImageURL)
	assert.True(t, f.store.Has(other.ImageURL))
	assert.False(t, f.store.Has(target.ImageURL))
	assert.Equal(t, []string{target.ImageURL}, f.store.Deleted())
}

func TestByActivity(t *testing.T) {
	f := setupTestRouter(t)
	for i := 0; i < 3; i++ {
		f.upload(t, 2, 2)
	}

	rr := testutil.Serve(f.router, testutil.JSON(http.MethodGet, "/api/memory/activity/"+f.activityID, nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	env := testutil.Decode(t, rr)

	var meta pagination.Meta
	require.NoError(t, json.Unmarshal(env.Pagination, &meta))
	assert.Equal(t, int64(3), meta.TotalItems)
	assert.Equal(t, 20, meta.ItemsPerPage)
	assert.Len(t, testutil.Data[[]Memory](t, env), 3)

	rr = testutil.Serve(f.router, testutil.JSON(http.MethodGet, "/api/memory/activity/missing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Activity not found", testutil.Decode(t, rr).Message)
}

func TestGallery(t *testing.T) {
	f := setupTestRouter(t)
	for i := 0; i < 6; i++ {
		f.upload(t, 2, 2)
	}

	rr := testutil.Serve(f.router, testutil.JSON(http.MethodGet, "/api/memory/by-events", nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	gallery := testutil.Data[[]EventGallery](t, testutil.Decode(t, rr))
	require.Len(t, gallery, 1)
	assert.Equal(t, "Harvest", gallery[0].Name)
	assert.Equal(t, int64(6), gallery[0].MemoryCount)
	assert.Len(t, gallery[0].PreviewMemories, previewSize)
}

func TestListFilterAndDelete(t *testing.T) {
	f := setupTestRouter(t)
	m := f.upload(t, 2, 2)

	rr := testutil.Serve(f.router, testutil.JSON(http.MethodGet, "/api/memory?activityId=other", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, testutil.Data[[]Memory](t, testutil.Decode(t, rr)))

	rr = testutil.Serve(f.router, testutil.JSON(http.MethodDelete, "/api/memory/"+m.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, f.store.Has(m.ImageURL))

	rr = testutil.Serve(f.router, testutil.JSON(http.MethodGet, "/api/memory/"+m.ID, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

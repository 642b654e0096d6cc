package pastor

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchcms/internal/database"
	"churchcms/internal/pkg/testutil"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(database.OpenTest(t, &Pastor{}))).RegisterRoutes(r.Group("/api"))
	return r
}

func pastorBody(name string) map[string]any {
	return map[string]any{
		"name":           name,
		"title":          "Senior Pastor",
		"welcomeMessage": "Welcome home.",
		"image":          "https://cdn.example.org/pastors/" + name + ".jpg",
	}
}

func TestActivePastor(t *testing.T) {
	r := setupTestRouter(t)

	rr := testutil.Serve(r, testutil.JSON(http.MethodGet, "/api/pastors/active", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "No active pastor found", testutil.Decode(t, rr).Message)

	inactive := pastorBody("emeritus")
	inactive["isActive"] = false
	rr = testutil.Serve(r, testutil.JSON(http.MethodPost, "/api/pastors", inactive))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.False(t, testutil.Data[Pastor](t, testutil.Decode(t, rr)).IsActive)

	rr = testutil.Serve(r, testutil.JSON(http.MethodGet, "/api/pastors/active", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = testutil.Serve(r, testutil.JSON(http.MethodPost, "/api/pastors", pastorBody("john")))
	require.Equal(t, http.StatusCreated, rr.Code)
	created := testutil.Data[Pastor](t, testutil.Decode(t, rr))
	assert.True(t, created.IsActive)

	rr = testutil.Serve(r, testutil.JSON(http.MethodGet, "/api/pastors/active", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, created.ID, testutil.Data[Pastor](t, testutil.Decode(t, rr)).ID)
}

func TestPastorCRUD(t *testing.T) {
	r := setupTestRouter(t)

	rr := testutil.Serve(r, testutil.JSON(http.MethodPost, "/api/pastors", map[string]any{"name": "x"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Len(t, testutil.Decode(t, rr).Errors, 3)

	rr = testutil.Serve(r, testutil.JSON(http.MethodPost, "/api/pastors", pastorBody("john")))
	created := testutil.Data[Pastor](t, testutil.Decode(t, rr))

	rr = testutil.Serve(r, testutil.JSON(http.MethodPatch, "/api/pastors/"+created.ID, map[string]any{"title": "Lead Pastor"}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Lead Pastor", testutil.Data[Pastor](t, testutil.Decode(t, rr)).Title)

	rr = testutil.Serve(r, testutil.JSON(http.MethodDelete, "/api/pastors/"+created.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	rr = testutil.Serve(r, testutil.JSON(http.MethodGet, "/api/pastors/"+created.ID, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

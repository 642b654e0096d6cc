package app

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchcms/internal/domain/audiomessage"
	"churchcms/internal/domain/coordinator"
	"churchcms/internal/pkg/logger"
	"churchcms/internal/pkg/testutil"
	"churchcms/internal/storage"
)

func TestE2E_FailedBlobDeleteIsRetriedByWorker(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	store := a.Store.(*storage.MemoryStore)
	r := a.Router()

	img := testutil.Part{Field: "image", Name: "eve.png", ContentType: "image/png", Data: testutil.PNG(8, 8)}
	rr := testutil.Serve(r, testutil.Multipart(t, http.MethodPost, "/api/coordinators/with-image", map[string]string{
		"name":         "Eve",
		"occupation":   "Nurse",
		"phone_number": "555-0199",
		"about":        "Hospital visits",
	}, img))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	c := testutil.Data[coordinator.Coordinator](t, testutil.Decode(t, rr))
	require.True(t, store.Has(c.ImageURL))

	store.SetDeleteErr(errors.New("bucket offline"))
	rr = testutil.Serve(r, testutil.JSON(http.MethodDelete, "/api/coordinators/"+c.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	pending, err := a.Outbox.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
	assert.True(t, store.Has(c.ImageURL))

	store.SetDeleteErr(nil)
	deleted, failed := a.CleanupWorker().Sweep(ctx)
	assert.Equal(t, 1, deleted)
	assert.Zero(t, failed)
	assert.False(t, store.Has(c.ImageURL))

	pending, err = a.Outbox.Pending(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)
}

func TestE2E_AudioMessageFlow(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	_, err = a.Services.Categories.EnsureDefaults(ctx)
	require.NoError(t, err)
	r := a.Router()

	rr := testutil.Serve(r, testutil.Multipart(t, http.MethodPost, "/api/audio-messages", map[string]string{
		"title":       "Morning Glory",
		"description": "Dawn service",
		"speaker":     "Pastor Daniel",
		"category":    "Worship",
	}, testutil.Part{Field: "audio", Name: "glory.mp3", ContentType: "audio/mpeg", Data: make([]byte, 512)}))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	v := testutil.Data[audiomessage.View](t, testutil.Decode(t, rr))

	rr = testutil.Serve(r, testutil.JSON(http.MethodPost, "/api/audio-messages/"+v.ID+"/play", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = testutil.Serve(r, testutil.JSON(http.MethodGet, "/api/audio-messages/category/Worship", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	env := testutil.Decode(t, rr)
	assert.Equal(t, "Audio messages in Worship category retrieved successfully", env.Message)
	items := testutil.Data[[]audiomessage.View](t, env)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].PlayCount)
}

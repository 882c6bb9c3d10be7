package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_ViaRouter(t *testing.T) {
	const want = "v2.0.0-beta+build.42"

	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(want)

	rec := do(router, http.MethodGet, "/version", 0, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetServerVersion_PostIsNotRouted(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(router, http.MethodPost, "/version", 0, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

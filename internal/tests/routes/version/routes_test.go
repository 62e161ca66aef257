package version_test

import (
	"net/http"
	"testing"

	"github.com/lk16/flippy/minimax/internal/models"
	"github.com/lk16/flippy/minimax/internal/tests"
	"github.com/stretchr/testify/require"
)

func TestVersionEndpoint(t *testing.T) {
	app := tests.NewTestApp(t)

	resp := tests.Request(t, app, http.MethodGet, "/version", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	version := tests.DecodeJSON[models.VersionResponse](t, resp)
	require.NotEmpty(t, version.Commit)
}

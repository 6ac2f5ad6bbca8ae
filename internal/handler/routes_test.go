package handler_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	h := newRouter(services{})

	rec := do(t, h, http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
}

func TestOpenAPI_Served(t *testing.T) {
	h := newRouter(services{})

	rec := do(t, h, http.MethodGet, "/openapi.yaml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "openapi:"))
}

func TestUnknownPath_NotFound(t *testing.T) {
	h := newRouter(services{})

	for _, path := range []string{"/unknown/path", "/api/v1/nope", "/api/v1/itineraries/a/b/c"} {
		t.Run(path, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, path, nil)

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Not found", decodeError(t, rec))
		})
	}
}

func TestUnsupportedMethod_NotFound(t *testing.T) {
	h := newRouter(services{})

	rec := do(t, h, http.MethodPatch, "/api/v1/activities/a1", `{}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", decodeError(t, rec))
}

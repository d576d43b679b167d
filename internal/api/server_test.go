package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Nomadcxx/slotsheet/internal/availability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const report = "Verfügbarkeit\tVorname\tNachname\n" +
	"19:00 - 21:30, Dienstag, 12.08. / Tuesday, August 12\tBob\tSmith\n" +
	"18:00 - 22:00, Freitag, 15.08. / Friday, August 15\tSmith, Ann\n"

func newTestServer(opts ...Option) http.Handler {
	return NewServer(availability.NewConverter(), opts...).Handler()
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()

	newTestServer().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestConvert_CSV(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader(report))
	w := httptest.NewRecorder()

	newTestServer().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t,
		"Name,12.08 19:00 Tue,15.08 18:00 Fri\n"+
			"Bob Smith,1,0\n"+
			"\"Smith, Ann\",0,1\n",
		w.Body.String())
}

func TestConvert_JSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert?format=json", strings.NewReader(report))
	w := httptest.NewRecorder()

	newTestServer().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp TableResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"Name", "12.08 19:00 Tue", "15.08 18:00 Fri"}, resp.Header)
	assert.Equal(t, [][]string{{"Bob Smith", "1", "0"}, {"Smith, Ann", "0", "1"}}, resp.Rows)
	assert.Equal(t, 3, resp.Lines)
	assert.Equal(t, 1, resp.Skipped)
	assert.Equal(t, 2, resp.Segments)
}

func TestConvert_EmptyBodyJSONHasEmptyRows(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert?format=json", strings.NewReader(""))
	w := httptest.NewRecorder()

	newTestServer().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rows":[]`)
}

func TestConvert_UnknownFormat(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert?format=xlsx", strings.NewReader(report))
	w := httptest.NewRecorder()

	newTestServer().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown_format")
}

func TestConvert_BodyTooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader(report))
	w := httptest.NewRecorder()

	newTestServer(WithMaxBodyBytes(16)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "body_too_large")
}

func TestConvert_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert", nil)
	w := httptest.NewRecorder()

	newTestServer().ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

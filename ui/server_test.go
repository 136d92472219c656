package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"roadmap/adapters/content"
	"roadmap/app"
	"roadmap/domain/quarter"
	"roadmap/domain/roadmap"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "roadmap_session"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	roadmaps := app.NewRoadmapService(content.NewStaticSource(quarter.DefaultBook()), roadmap.NewVariants())
	require.NoError(t, roadmaps.Load(context.Background(), ""))
	sessions, err := app.NewSessionStore(quarter.Q1, app.DefaultSessionLimits)
	require.NoError(t, err)

	s := NewServer(os.DirFS(".."))
	require.NoError(t, s.Initialize(roadmaps, sessions, testCookie))
	return s
}

func do(s *Server, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", testCookie)
	return nil
}

func TestIndexRendersBothVariants(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodGet, "/", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "<svg "))
	assert.Contains(t, body, `data-variant="desktop"`)
	assert.Contains(t, body, `data-variant="mobile"`)
	assert.Contains(t, body, `<option value="2024" selected>`)
	assert.Contains(t, body, `data-active="1"`)
	assert.Contains(t, body, "sm≥640 • md≥768 • lg≥1024")
	assert.NotContains(t, body, "<?xml")
	assert.NotEmpty(t, sessionCookie(t, rec).Value)
}

func TestIndexQuerySelectsQuarter(t *testing.T) {
	s := newTestServer(t)
	first := do(s, http.MethodGet, "/?q=3&year=2025", "", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), `data-active="3"`)
	assert.Contains(t, first.Body.String(), `<option value="2025" selected>`)

	cookie := sessionCookie(t, first)
	again := do(s, http.MethodGet, "/", "", cookie)
	require.Equal(t, http.StatusOK, again.Code)
	assert.Contains(t, again.Body.String(), `data-active="3"`, "selection persists per session")
	assert.Empty(t, again.Result().Cookies(), "known session keeps its cookie")

	other := do(s, http.MethodGet, "/", "", nil)
	assert.Contains(t, other.Body.String(), `data-active="1"`)
}

func TestIndexErrors(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/?year=1999", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(s, http.MethodGet, "/?q=9", "", nil).Code)
}

func TestIndexUnknownYearLeavesSelectionAlone(t *testing.T) {
	s := newTestServer(t)
	first := do(s, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, first.Code)
	cookie := sessionCookie(t, first)

	bad := do(s, http.MethodGet, "/?q=3&year=1999", "", cookie)
	assert.Equal(t, http.StatusNotFound, bad.Code)

	again := do(s, http.MethodGet, "/", "", cookie)
	require.Equal(t, http.StatusOK, again.Code)
	assert.Contains(t, again.Body.String(), `data-active="1"`)
}

func TestRoadmapSVG(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodGet, "/roadmap.svg?variant=mobile&q=2", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "image/svg+xml")
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, `data-variant="mobile"`)
	assert.Contains(t, body, `data-active="2"`)
	assert.Equal(t, 1, strings.Count(body, "<foreignObject"))

	inline := do(s, http.MethodGet, "/roadmap.svg?inline=1", "", nil)
	require.Equal(t, http.StatusOK, inline.Code)
	assert.True(t, strings.HasPrefix(inline.Body.String(), "<svg "))
	assert.Contains(t, inline.Body.String(), `data-variant="desktop"`)

	assert.Equal(t, http.StatusBadRequest, do(s, http.MethodGet, "/roadmap.svg?variant=tablet", "", nil).Code)
}

func TestSelectAPI(t *testing.T) {
	s := newTestServer(t)
	cookie := sessionCookie(t, do(s, http.MethodGet, "/api/years", "", nil))

	var change struct {
		From    int  `json:"from"`
		To      int  `json:"to"`
		Changed bool `json:"changed"`
		Active  int  `json:"active"`
	}
	rec := do(s, http.MethodPost, "/api/select", `{"quarter": 4}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &change))
	assert.Equal(t, 1, change.From)
	assert.Equal(t, 4, change.To)
	assert.True(t, change.Changed)

	rec = do(s, http.MethodPost, "/api/select", `{"quarter": 4}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &change))
	assert.False(t, change.Changed, "selecting the active quarter is a no-op")
	assert.Equal(t, 4, change.Active)

	var scene struct {
		Year  string        `json:"year"`
		Scene roadmap.Scene `json:"scene"`
	}
	rec = do(s, http.MethodGet, "/api/scene?variant=mobile", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scene))
	assert.Equal(t, "2024", scene.Year)
	assert.Equal(t, quarter.Q4, scene.Scene.Active)
	require.Len(t, scene.Scene.Labels, 1)
	assert.Equal(t, quarter.Q4, scene.Scene.Labels[0].Quarter)
}

func TestSelectAPIRejectsBadBodies(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []string{`{"quarter": 7}`, `{"quarter": 0}`, `{"q": 2}`, `not json`} {
		rec := do(s, http.MethodPost, "/api/select", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "INVALID_INPUT", body)
	}
}

func TestViewportAPI(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/api/viewport?w=1200&h=800", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var badge map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &badge))
	assert.Equal(t, "wide", badge["device"])
	assert.Equal(t, "desktop", badge["variant"])
	assert.Equal(t, "sm≥640 • md≥768 • lg≥1024", badge["legend"])

	rec = do(s, http.MethodGet, "/api/viewport?w=700", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"device":"medium"`)
	assert.Contains(t, rec.Body.String(), `"variant":"mobile"`)

	assert.Equal(t, http.StatusBadRequest, do(s, http.MethodGet, "/api/viewport?w=wide", "", nil).Code)
}

func TestYearsAndStatic(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/api/years", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"years": ["2023", "2024", "2025"], "default": "2024"}`, rec.Body.String())

	js := do(s, http.MethodGet, "/static/js/roadmap.js", "", nil)
	assert.Equal(t, http.StatusOK, js.Code)
	assert.Contains(t, js.Body.String(), `"orientationchange"`)
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/static/css/roadmap.css", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/healthz", "", nil).Code)
}

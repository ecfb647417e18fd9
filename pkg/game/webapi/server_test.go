package webapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpath/pkg/game/logging"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	return NewServer(Config{SearchTimeout: time.Second, MaxGridSize: 100}, logging.Discard())
}

func postSolve(t *testing.T, s *Server, body any, ctx context.Context) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", &buf).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, r io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(r).Decode(&v))
	return v
}

func TestSolve_Found(t *testing.T) {
	s := newTestServer()

	rec := postSolve(t, s, SolveRequest{
		Size:     5,
		Start:    []int{0, 0},
		End:      []int{0, 4},
		Barriers: [][]int{{0, 2}, {1, 2}},
	}, context.Background())

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[SolveResponse](t, rec.Body)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "found", resp.Outcome)
	assert.Equal(t, 8, resp.Cost)
	assert.Len(t, resp.Path, 9)
	assert.Equal(t, [2]int{0, 0}, resp.Path[0])
	assert.Equal(t, [2]int{0, 4}, resp.Path[len(resp.Path)-1])
	assert.Empty(t, resp.Map)
}

func TestSolve_NoPathWithMap(t *testing.T) {
	s := newTestServer()

	rec := postSolve(t, s, SolveRequest{
		Size:       3,
		Start:      []int{0, 0},
		End:        []int{2, 2},
		Barriers:   [][]int{{0, 1}, {1, 0}},
		IncludeMap: true,
	}, context.Background())

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[SolveResponse](t, rec.Body)
	assert.Equal(t, "no_path", resp.Outcome)
	assert.Empty(t, resp.Path)
	assert.Equal(t, 1, resp.Expanded)
	assert.Equal(t, "S#.\n#..\n..E\n", resp.Map)
}

func TestSolve_Aborted(t *testing.T) {
	s := newTestServer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := postSolve(t, s, SolveRequest{Size: 4, Start: []int{0, 0}, End: []int{3, 3}}, ctx)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	resp := decode[SolveResponse](t, rec.Body)
	assert.Equal(t, "aborted", resp.Outcome)
}

func TestSolve_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"not json", "nope"},
		{"missing size", map[string]any{"start": []int{0, 0}, "end": []int{1, 1}}},
		{"short start", SolveRequest{Size: 3, Start: []int{0}, End: []int{1, 1}}},
		{"start outside", SolveRequest{Size: 3, Start: []int{3, 0}, End: []int{1, 1}}},
		{"same endpoints", SolveRequest{Size: 3, Start: []int{1, 1}, End: []int{1, 1}}},
		{"barrier on start", SolveRequest{Size: 3, Start: []int{0, 0}, End: []int{2, 2}, Barriers: [][]int{{0, 0}}}},
		{"barrier outside", SolveRequest{Size: 3, Start: []int{0, 0}, End: []int{2, 2}, Barriers: [][]int{{5, 5}}}},
		{"too big", SolveRequest{Size: 101, Start: []int{0, 0}, End: []int{2, 2}}},
	}
	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postSolve(t, s, tt.body, context.Background())
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decode[ErrorResponse](t, rec.Body)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer()
	postSolve(t, s, SolveRequest{Size: 2, Start: []int{0, 0}, End: []int{1, 1}}, context.Background())
	postSolve(t, s, SolveRequest{Size: 2, Start: []int{0, 0}, End: []int{0, 0}}, context.Background())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `gridpath_searches_total{outcome="found"} 1`)
	assert.Contains(t, body, "gridpath_requests_rejected_total 1")
	assert.Contains(t, body, "gridpath_search_expanded_cells_count 1")
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewServer(Config{Addr: "127.0.0.1:0"}, logging.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

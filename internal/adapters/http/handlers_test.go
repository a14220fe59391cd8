package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/engine"
	"svw.info/sudoku-engine/internal/infrastructure/storage"
	"svw.info/sudoku-engine/internal/metrics"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

const classicPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	m := metrics.New()
	uc := usecase.NewService(engine.New(engine.Options{}), validator.New(), storage.NewFS(t.TempDir()), m)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(uc, m).Router(logger)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSolveEndpoint(t *testing.T) {
	r := testRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/solve", map[string]string{"puzzle": classicPuzzle})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Verdict  string        `json:"verdict"`
		Solution *domain.Board `json:"solution"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "solved", resp.Verdict)
	require.NotNil(t, resp.Solution)
	assert.Equal(t, uint8(4), resp.Solution.Values[0][2])
}

func TestSolveEndpointInvalidPuzzle(t *testing.T) {
	r := testRouter(t)
	dup := "55" + strings.Repeat(".", 79)
	w := doJSON(t, r, http.MethodPost, "/api/solve", map[string]string{"puzzle": dup})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Verdict   string             `json:"verdict"`
		Conflicts []domain.CellCoord `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid", resp.Verdict)
	assert.NotEmpty(t, resp.Conflicts)
}

func TestSolveEndpointBadRequests(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/solve", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/solve", map[string]string{"puzzle": "not-a-puzzle"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateEndpoint(t *testing.T) {
	r := testRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/validate", map[string]string{"puzzle": classicPuzzle})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
}

func TestPersistenceRoundTrip(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/save", map[string]any{
		"name":  "evening puzzle",
		"board": map[string]any{},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var saved struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.ID, "an ID is minted when absent")

	w = doJSON(t, r, http.MethodGet, "/api/load/"+saved.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var p domain.Puzzle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "evening puzzle", p.Name)

	w = doJSON(t, r, http.MethodGet, "/api/list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var metas []domain.PuzzleMeta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metas))
	require.Len(t, metas, 1)
	assert.Equal(t, saved.ID, metas[0].ID)
}

func TestLoadMissingPuzzle(t *testing.T) {
	r := testRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/load/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	r := testRouter(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsExposed(t *testing.T) {
	r := testRouter(t)
	// drive one solve so the counter exists
	doJSON(t, r, http.MethodPost, "/api/solve", map[string]string{"puzzle": classicPuzzle})

	w := doJSON(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `sudoku_solves_total{verdict="solved"} 1`)
}

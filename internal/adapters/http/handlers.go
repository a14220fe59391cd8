// Package httpadapter exposes the solving service as a JSON API.
package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/sudoku-engine/internal/codec"
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/infrastructure/storage"
	"svw.info/sudoku-engine/internal/metrics"
	"svw.info/sudoku-engine/internal/usecase"
)

type Handler struct {
	UC      *usecase.Service
	Metrics *metrics.Metrics
}

func New(uc *usecase.Service, m *metrics.Metrics) *Handler {
	return &Handler{UC: uc, Metrics: m}
}

// Router assembles the gin engine with logging, recovery, and all routes.
func (h *Handler) Router(logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	api := r.Group("/api")
	api.POST("/solve", h.handleSolve)
	api.POST("/validate", h.handleValidate)
	api.POST("/save", h.handleSave)
	api.GET("/load/:id", h.handleLoad)
	api.GET("/list", h.handleList)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}
	return r
}

// requestLogger logs method, path, status, and duration per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

// boardReq accepts a board either structurally or as an 81-character line.
type boardReq struct {
	Board  *domain.Board `json:"board,omitempty"`
	Puzzle string        `json:"puzzle,omitempty"`
}

func (req *boardReq) board() (*domain.Board, error) {
	switch {
	case req.Board != nil:
		return req.Board, nil
	case req.Puzzle != "":
		return codec.Parse(req.Puzzle)
	}
	return nil, errors.New("either board or puzzle is required")
}

// ---- Solve ----

type solveResp struct {
	Verdict    string             `json:"verdict"`
	Solution   *domain.Board      `json:"solution,omitempty"`
	Second     *domain.Board      `json:"second,omitempty"`
	Conflicts  []domain.CellCoord `json:"conflicts,omitempty"`
	Reason     string             `json:"reason,omitempty"`
	Nodes      int                `json:"nodes"`
	DurationMs int64              `json:"durationMs"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	b, err := req.board()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, st, err := h.UC.Solve(c.Request.Context(), b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, solveResp{
		Verdict:    out.Verdict.String(),
		Solution:   out.Solution,
		Second:     out.Second,
		Conflicts:  out.Conflicts,
		Reason:     out.Reason,
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Validate ----

func (h *Handler) handleValidate(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	b, err := req.board()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": ok, "conflicts": conflicts})
}

// ---- Persistence ----

func (h *Handler) handleSave(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

func (h *Handler) handleLoad(c *gin.Context) {
	p, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) handleList(c *gin.Context) {
	metas, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if metas == nil {
		metas = []domain.PuzzleMeta{}
	}
	c.JSON(http.StatusOK, metas)
}

package httpadapter

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
	"github.com/echoenvoy/sudoku-solver/internal/usecase"
	"github.com/echoenvoy/sudoku-solver/internal/validator"
)

// Handler exposes the solver over a JSON API.
type Handler struct {
	UC *usecase.Service
	// DefaultDeadline bounds each solve when the request does not set one.
	DefaultDeadline time.Duration
}

func New(uc *usecase.Service) *Handler {
	return &Handler{UC: uc, DefaultDeadline: 10 * time.Second}
}

func (h *Handler) Register(e *gin.Engine) {
	v1 := e.Group("/api").Group("/v1")
	v1.POST("/solve", h.handleSolve)
	v1.POST("/validate", h.handleValidate)
	v1.POST("/generate", h.handleGenerate)
	v1.POST("/save", h.handleSave)
	v1.POST("/load", h.handleLoad)
	v1.GET("/list", h.handleList)
}

func parseStrategy(s string) domain.Strategy {
	if strings.EqualFold(strings.TrimSpace(s), "scan") {
		return domain.StrategyScan
	}
	return domain.StrategyMRV
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func (h *Handler) deadline(ms int64) time.Duration {
	if ms <= 0 {
		return h.DefaultDeadline
	}
	return time.Duration(ms) * time.Millisecond
}

// ---- Solve ----

type solveReq struct {
	Size      int     `json:"size"`
	Cells     [][]int `json:"cells"`
	Strategy  string  `json:"strategy,omitempty"`
	TimeoutMs int64   `json:"timeoutMs,omitempty"`
}

type solveResp struct {
	Outcome    string  `json:"outcome,omitempty"`
	Cells      [][]int `json:"cells,omitempty"`
	DurationMs int64   `json:"durationMs"`
	Calls      int     `json:"calls"`
	Error      string  `json:"error,omitempty"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Size: req.Size, Cells: req.Cells}
	out, st, err := h.UC.Solve(c.Request.Context(), b, parseStrategy(req.Strategy), h.deadline(req.TimeoutMs))
	if err != nil {
		c.JSON(http.StatusBadRequest, solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Calls: st.Calls})
		return
	}
	resp := solveResp{
		Outcome:    out.String(),
		DurationMs: st.Duration.Milliseconds(),
		Calls:      st.Calls,
	}
	if out == domain.Solved {
		resp.Cells = b.Cells
	}
	c.JSON(http.StatusOK, resp)
}

// ---- Validate ----

type validateReq struct {
	Size  int     `json:"size"`
	Cells [][]int `json:"cells"`
}

type validateResp struct {
	OK       bool              `json:"ok"`
	Conflict *domain.CellCoord `json:"conflict,omitempty"`
	Value    int               `json:"value,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Size: req.Size, Cells: req.Cells}
	err := h.UC.Validate(c.Request.Context(), b)
	if err == nil {
		c.JSON(http.StatusOK, validateResp{OK: true})
		return
	}
	resp := validateResp{Error: err.Error()}
	var conflict *validator.ConflictError
	var badValue *validator.ValueError
	switch {
	case errors.As(err, &conflict):
		resp.Conflict = &conflict.Cell
		resp.Value = conflict.Value
	case errors.As(err, &badValue):
		resp.Conflict = &badValue.Cell
		resp.Value = badValue.Value
	}
	c.JSON(http.StatusOK, resp)
}

// ---- Generate ----

type generateReq struct {
	Size       int    `json:"size,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      *domain.Board `json:"board,omitempty"`
	Seed       int64         `json:"seed,omitempty"`
	Difficulty string        `json:"difficulty,omitempty"`
	DurationMs int64         `json:"durationMs,omitempty"`
	Calls      int           `json:"calls,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	size := req.Size
	if size == 0 {
		size = 9
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(c.Request.Context(), size, seed, parseDifficulty(req.Difficulty))
	if err != nil {
		c.JSON(http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, generateResp{
		Board:      &p.Board,
		Seed:       seed,
		Difficulty: req.Difficulty,
		DurationMs: st.Duration.Milliseconds(),
		Calls:      st.Calls,
	})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(c *gin.Context) {
	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, listResp{Puzzles: ps})
}

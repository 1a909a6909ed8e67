package http

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/format"
	"sudoku-engine/internal/sudoku/difficulty"
	"sudoku-engine/internal/sudoku/generate"
	"sudoku-engine/internal/sudoku/hints"
	"sudoku-engine/internal/sudoku/solver"
	"sudoku-engine/pkg/config"
	"sudoku-engine/pkg/constants"
)

var cfg *config.Config

func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/parse", parseGridHandler)
		api.POST("/solve", solveHandler)
		api.POST("/unique", isUniqueHandler)
		api.POST("/conflicts", conflictsHandler)
		api.POST("/hint", hintHandler)
		api.POST("/solve_with_hints", solveWithHintsHandler)
		api.POST("/difficulty", evaluateDifficultyHandler)
		api.POST("/serialize", serializeHandler)
		api.POST("/deserialize", deserializeHandler)

		api.POST("/generate/clues", generateWithCluesHandler)
		api.POST("/generate/difficulty", generateWithDifficultyHandler)
		api.POST("/generate/category", generateByCategoryHandler)

		api.POST("/session/start", sessionStartHandler)
		api.POST("/validate", validateBoardHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// gridRequest accepts either an 81-character grid string or a
// pre-parsed 81-int array, since both are valid per spec §6's
// "grid string or map" input shape for solve/parse-style operations.
type gridRequest struct {
	Grid   string `json:"grid"`
	Digits []int  `json:"digits"`
}

func (g gridRequest) resolve() ([]int, error) {
	if len(g.Digits) > 0 {
		if len(g.Digits) != constants.TotalCells {
			return nil, fmt.Errorf("digits must have %d cells, got %d", constants.TotalCells, len(g.Digits))
		}
		return g.Digits, nil
	}
	return format.ParseGridString(g.Grid)
}

func parseGridHandler(c *gin.Context) {
	var req gridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	digits, err := req.resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	values, err := solver.FromDigits(digits)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"values": values.Digits()})
}

type solveRequest struct {
	gridRequest
	ChooseSquare string `json:"choose_square"`
	ChooseDigit  string `json:"choose_digit"`
	Seed         *int64 `json:"seed"`
}

func solveHandler(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	digits, err := req.resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	values, err := solver.FromDigits(digits)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := solver.Options{
		ChooseSquare: solver.ChooseSquare(req.ChooseSquare),
		ChooseDigit:  solver.ChooseDigit(req.ChooseDigit),
		Seed:         req.Seed,
	}
	solved, ok := solver.Solve(values, opts)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"solved": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"solved": true, "values": solved.Digits()})
}

func isUniqueHandler(c *gin.Context) {
	var req gridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	digits, err := req.resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	values, err := solver.FromDigits(digits)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	unique, err := solver.IsUnique(values)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unique": unique})
}

func conflictsHandler(c *gin.Context) {
	var req gridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	digits, err := req.resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflicts": solver.GetConflicts(digits)})
}

type hintRequest struct {
	gridRequest
	Solution []int `json:"solution"`
}

func hintHandler(c *gin.Context) {
	var req hintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	digits, err := req.resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	board, err := hints.NewBoard(digits)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Solution) == constants.TotalCells {
		if solved, err := solver.FromDigits(req.Solution); err == nil {
			board = board.WithSolution(solved)
		}
	}

	hint := hints.GetHint(board)
	if hint == nil {
		c.JSON(http.StatusOK, gin.H{"hint": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hint": hint})
}

type solveWithHintsRequest struct {
	gridRequest
	MaxSteps int `json:"max_steps"`
}

func solveWithHintsHandler(c *gin.Context) {
	var req solveWithHintsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	digits, err := req.resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := hints.SolveWithHints(digits, req.MaxSteps)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type evaluateDifficultyRequest struct {
	gridRequest
}

func evaluateDifficultyHandler(c *gin.Context) {
	var req evaluateDifficultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	digits, err := req.resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := difficulty.EvaluatePuzzleDifficulty(digits)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

type serializeRequest struct {
	Values []int `json:"values" binding:"required"`
}

func serializeHandler(c *gin.Context) {
	var req serializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := format.SerializeCompact(req.Values)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"compact": s})
}

type deserializeRequest struct {
	Compact string `json:"compact" binding:"required"`
}

func deserializeHandler(c *gin.Context) {
	var req deserializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	digits, err := format.DeserializeCompact(req.Compact)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"values": digits})
}

type generateWithCluesRequest struct {
	Clues int    `json:"clues" binding:"required"`
	Seed  *int64 `json:"seed"`
}

func generateWithCluesHandler(c *gin.Context) {
	var req generateWithCluesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	puzzle, err := generate.GenerateWithClues(req.Clues, req.Seed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"givens": puzzle.Digits()})
}

type generateOptionsRequest struct {
	TargetDifficulty    float64 `json:"target_difficulty"`
	ToleranceDifficulty float64 `json:"tolerance_difficulty"`
	MaxAttempts         int     `json:"max_attempts"`
	Seed                *int64  `json:"seed"`
}

func (r generateOptionsRequest) toOptions() generate.Options {
	target := r.TargetDifficulty
	if target == 0 {
		target = cfg.DefaultTargetDifficulty
	}
	tolerance := r.ToleranceDifficulty
	if tolerance == 0 {
		tolerance = cfg.DefaultTolerance
	}
	maxAttempts := r.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = cfg.DefaultMaxAttempts
	}
	return generate.Options{Target: target, Tolerance: tolerance, MaxAttempts: maxAttempts, Seed: r.Seed}
}

func generateWithDifficultyHandler(c *gin.Context) {
	var req generateOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cand, err := generate.GenerateWithDifficulty(req.toOptions())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, puzzleFromCandidate(cand))
}

type generateByCategoryRequest struct {
	Category string `json:"category" binding:"required"`
	generateOptionsRequest
}

func generateByCategoryHandler(c *gin.Context) {
	var req generateByCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cand, err := generate.GenerateByCategory(core.Category(req.Category), req.toOptions())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, puzzleFromCandidate(cand))
}

// puzzleFromCandidate stamps a generated candidate with a fresh random ID.
// No endpoint looks a puzzle up by that ID; session/start and validate do
// not take it.
func puzzleFromCandidate(cand generate.Candidate) core.Puzzle {
	givens, _ := format.FormatGridString(cand.Puzzle.Digits())
	return core.Puzzle{
		ID:         uuid.New().String(),
		Givens:     givens,
		Difficulty: cand.Difficulty,
		Category:   cand.Category,
		CreatedAt:  time.Now(),
	}
}

type SessionStartRequest struct {
	Seed     string `json:"seed" binding:"required"`
	Category string `json:"category" binding:"required"`
	DeviceID string `json:"device_id" binding:"required"`
}

func sessionStartHandler(c *gin.Context) {
	var req SessionStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	puzzleID := uuid.New().String()

	now := time.Now()
	session := SessionToken{
		DeviceID:  req.DeviceID,
		PuzzleID:  puzzleID,
		Seed:      req.Seed,
		Category:  req.Category,
		StartedAt: now,
		ExpiresAt: now.Add(constants.SessionTokenExpiry),
	}

	token, err := createToken(cfg.JWTSecret, session)
	if err != nil {
		log.Printf("ERROR [sessionStart]: failed to create token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"puzzle_id":  puzzleID,
		"started_at": now.Format(time.RFC3339),
	})
}

type ValidateBoardRequest struct {
	Token string `json:"token" binding:"required"`
	Board []int  `json:"board" binding:"required"`
}

func validateBoardHandler(c *gin.Context) {
	var req ValidateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := verifyToken(cfg.JWTSecret, req.Token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
		return
	}

	if len(req.Board) != constants.TotalCells {
		c.JSON(http.StatusBadRequest, gin.H{"error": "board must have 81 cells"})
		return
	}

	conflicts := solver.GetConflicts(req.Board)
	if len(conflicts) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid":     false,
			"reason":    "conflicts",
			"message":   "there are conflicting numbers in the puzzle",
			"conflicts": conflicts,
		})
		return
	}

	values, err := solver.FromDigits(req.Board)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"valid":   false,
			"reason":  "contradiction",
			"message": "no assignment satisfies the current entries",
		})
		return
	}

	if _, ok := solver.Solve(values, solver.Options{}); !ok {
		c.JSON(http.StatusOK, gin.H{
			"valid":   false,
			"reason":  "unsolvable",
			"message": "the puzzle cannot be solved from this state",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"message": "all entries are correct so far",
	})
}

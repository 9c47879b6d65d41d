package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/services"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

type EcoScoreHandler struct {
	scoreService services.EcoScoreService
}

func NewEcoScoreHandler(scoreService services.EcoScoreService) *EcoScoreHandler {
	return &EcoScoreHandler{scoreService: scoreService}
}

// List serves GET /api/ecoscores with optional grade, min_score,
// max_score, category, limit and offset query parameters. A product_id
// or merchant_product_id parameter narrows the result to that single
// product's latest score.
func (h *EcoScoreHandler) List(c *gin.Context) {
	if ref, ok, err := refFromQuery(c); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_ref", err)
		return
	} else if ok {
		score, err := h.scoreService.GetByRef(c.Request.Context(), ref)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		scores := []*types.EcoScore{}
		if score != nil {
			scores = append(scores, score)
		}
		RespondOK(c, gin.H{"ecoscores": scores, "count": len(scores)})
		return
	}

	grade, err := parseOptionalGrade(c.Query("grade"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_grade", err)
		return
	}
	minScore, err := parseOptionalFloat(c.Query("min_score"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_min_score", err)
		return
	}
	maxScore, err := parseOptionalFloat(c.Query("max_score"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_max_score", err)
		return
	}
	limit, err := parseOptionalInt(c.Query("limit"), 50)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_limit", err)
		return
	}
	offset, err := parseOptionalInt(c.Query("offset"), 0)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_offset", err)
		return
	}

	scores, err := h.scoreService.List(c.Request.Context(), repos.ScoreFilter{
		Grade:    grade,
		MinScore: minScore,
		MaxScore: maxScore,
		Category: c.Query("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"ecoscores": scores, "count": len(scores)})
}

// Stats serves GET /api/ecoscores/stats.
func (h *EcoScoreHandler) Stats(c *gin.Context) {
	stats, err := h.scoreService.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, stats)
}

// Get serves GET /api/ecoscores/:type/:id.
func (h *EcoScoreHandler) Get(c *gin.Context) {
	ref, err := parseProductRef(c.Param("type"), c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_ref", err)
		return
	}
	score, err := h.scoreService.GetByRef(c.Request.Context(), ref)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if score == nil {
		RespondError(c, http.StatusNotFound, "score_not_found", services.ErrProductNotFound)
		return
	}
	RespondOK(c, score)
}

// History serves GET /api/ecoscores/:type/:id/history.
func (h *EcoScoreHandler) History(c *gin.Context) {
	ref, err := parseProductRef(c.Param("type"), c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_ref", err)
		return
	}
	limit, err := parseOptionalInt(c.Query("limit"), 20)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_limit", err)
		return
	}
	history, err := h.scoreService.History(c.Request.Context(), ref, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"history": history, "count": len(history)})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecoswitch/ecoswitch-backend/internal/services"
)

type GamificationHandler struct {
	gamificationService services.GamificationService
}

func NewGamificationHandler(gamificationService services.GamificationService) *GamificationHandler {
	return &GamificationHandler{gamificationService: gamificationService}
}

type checkAchievementsRequest struct {
	UserID    uuid.UUID           `json:"user_id" binding:"required"`
	CartItems []services.CartItem `json:"cart_items"`
}

// Check serves POST /api/achievements/check: evaluates one purchase and
// responds with the user's earned achievements, flagging the new ones.
func (h *GamificationHandler) Check(c *gin.Context) {
	var req checkAchievementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	newlyEarned, err := h.gamificationService.CheckAchievements(c.Request.Context(), req.UserID, req.CartItems)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	achievements, err := h.gamificationService.ListEarnedForUser(c.Request.Context(), req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"achievements":     achievements,
		"new_achievements": newlyEarned,
		"count":            len(achievements),
	})
}

// List serves GET /api/achievements?user_id=.
func (h *GamificationHandler) List(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user", err)
		return
	}
	achievements, err := h.gamificationService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"achievements": achievements, "count": len(achievements)})
}

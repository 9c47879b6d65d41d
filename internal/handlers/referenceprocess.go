package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

type ReferenceProcessHandler struct {
	processRepo repos.ReferenceProcessRepo
}

func NewReferenceProcessHandler(processRepo repos.ReferenceProcessRepo) *ReferenceProcessHandler {
	return &ReferenceProcessHandler{processRepo: processRepo}
}

// List serves GET /api/reference-processes?category=, grouping the
// active processes by impact category.
func (h *ReferenceProcessHandler) List(c *gin.Context) {
	processes, err := h.processRepo.ListActive(c.Request.Context(), nil, c.Query("category"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	grouped := make(map[string][]*types.ReferenceProcess)
	for _, p := range processes {
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	RespondOK(c, gin.H{"reference_processes": grouped, "count": len(processes)})
}

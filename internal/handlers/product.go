package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/services"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

type ProductHandler struct {
	productRepo  repos.ProductRepo
	merchantRepo repos.MerchantProductRepo
	scoreService services.EcoScoreService
}

func NewProductHandler(productRepo repos.ProductRepo, merchantRepo repos.MerchantProductRepo, scoreService services.EcoScoreService) *ProductHandler {
	return &ProductHandler{
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
		scoreService: scoreService,
	}
}

// List serves GET /api/products. source=catalog lists the catalog;
// the default lists scored merchant products, filterable on the
// denormalized score columns.
func (h *ProductHandler) List(c *gin.Context) {
	if c.Query("source") == string(types.ProductKindCatalog) {
		products, err := h.productRepo.ListActive(c.Request.Context(), nil, c.Query("category"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		RespondOK(c, gin.H{"products": products, "count": len(products)})
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

	products, err := h.merchantRepo.ListScored(c.Request.Context(), nil, repos.ProductFilter{
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
	RespondOK(c, gin.H{"products": products, "count": len(products)})
}

// Recalculate serves POST /api/products/:id/recalculate. The type query
// parameter picks the catalog source (default merchant); force=true
// bypasses the freshness window.
func (h *ProductHandler) Recalculate(c *gin.Context) {
	kind := c.DefaultQuery("type", string(types.ProductKindMerchant))
	ref, err := parseProductRef(kind, c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_ref", err)
		return
	}
	force := c.Query("force") == "true"

	score, err := h.scoreService.Calculate(c.Request.Context(), ref, force)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if score == nil {
		RespondError(c, http.StatusBadRequest, "could_not_calculate", errors.New("could not calculate score"))
		return
	}
	RespondOK(c, score)
}

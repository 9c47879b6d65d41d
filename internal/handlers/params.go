package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

// refFromQuery builds a ProductRef from a product_id or
// merchant_product_id query parameter. ok is false when neither is set.
func refFromQuery(c *gin.Context) (types.ProductRef, bool, error) {
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return types.ProductRef{}, false, fmt.Errorf("invalid product_id %q", raw)
		}
		return types.CatalogRef(id), true, nil
	}
	if raw := c.Query("merchant_product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return types.ProductRef{}, false, fmt.Errorf("invalid merchant_product_id %q", raw)
		}
		return types.MerchantRef(id), true, nil
	}
	return types.ProductRef{}, false, nil
}

func parseProductRef(kind, rawID string) (types.ProductRef, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return types.ProductRef{}, fmt.Errorf("invalid product id %q", rawID)
	}
	ref := types.ProductRef{Kind: types.ProductKind(kind), ID: id}
	if !ref.Valid() {
		return types.ProductRef{}, fmt.Errorf("invalid product type %q", kind)
	}
	return ref, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", raw)
	}
	return &v, nil
}

func parseOptionalInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return v, nil
}

func parseOptionalGrade(raw string) (types.Grade, error) {
	if raw == "" {
		return "", nil
	}
	grade, ok := types.ParseGrade(strings.ToUpper(raw))
	if !ok {
		return "", fmt.Errorf("invalid grade %q", raw)
	}
	return grade, nil
}

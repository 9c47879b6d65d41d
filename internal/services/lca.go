package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ecoswitch/ecoswitch-backend/internal/clients/lca"
	"github.com/ecoswitch/ecoswitch-backend/internal/ecoscore"
	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

// ImpactSource says where a raw impact figure came from, for the
// calculation notes on the score row.
type ImpactSource string

const (
	ImpactSourceBackend  ImpactSource = "lca_backend"
	ImpactSourceOverride ImpactSource = "manual_override"
	ImpactSourceDefault  ImpactSource = "process_default"
	ImpactSourceEstimate ImpactSource = "keyword_estimate"
)

type LCAService interface {
	EvaluateImpact(ctx context.Context, mapping *types.ProductMapping) (float64, ImpactSource, error)
	Method() string
}

type lcaService struct {
	log    *logger.Logger
	client lca.Client
}

// NewLCAService wraps the LCA backend client with the fallback chain.
// A nil client is allowed and skips straight to the fallbacks.
func NewLCAService(log *logger.Logger, client lca.Client) LCAService {
	return &lcaService{log: log.With("service", "LCAService"), client: client}
}

func (s *lcaService) Method() string {
	if s.client != nil {
		return s.client.Method()
	}
	return types.LCAMethodGWP100a
}

// EvaluateImpact resolves the raw impact for a mapped product.
// Precedence: manual override, then the LCA backend, then the mapping's
// stored override (eco-friendly credit), then the process default, then
// the keyword estimate. Every backend failure, and a backend result of
// zero, degrades to the fallbacks.
func (s *lcaService) EvaluateImpact(ctx context.Context, mapping *types.ProductMapping) (float64, ImpactSource, error) {
	if mapping == nil || mapping.Process == nil {
		return 0, "", errors.New("mapping has no process")
	}

	if mapping.IsManualOverride && mapping.ManualImpactOverride != nil {
		return *mapping.ManualImpactOverride, ImpactSourceOverride, nil
	}

	if s.client != nil {
		impact, err := s.client.Impact(ctx, mapping.Process.Code, mapping.FunctionalUnitValue)
		if err == nil && impact > 0 {
			return impact, ImpactSourceBackend, nil
		}
		var backendErr *lca.BackendError
		switch {
		case err == nil:
			s.log.Warn("LCA backend returned zero impact, using fallback", "code", mapping.Process.Code)
		case errors.Is(err, lca.ErrProcessNotFound):
			s.log.Warn("process unknown to LCA backend, using fallback", "code", mapping.Process.Code)
		case errors.As(err, &backendErr):
			s.log.Warn("LCA backend unavailable, using fallback", "code", mapping.Process.Code, "error", err)
		default:
			s.log.Warn("LCA backend failed, using fallback", "code", mapping.Process.Code, "error", err)
		}
	}

	impact, source := s.fallbackImpact(mapping)
	return impact, source, nil
}

func (s *lcaService) fallbackImpact(mapping *types.ProductMapping) (float64, ImpactSource) {
	if mapping.ManualImpactOverride != nil {
		return *mapping.ManualImpactOverride * mapping.FunctionalUnitValue, ImpactSourceDefault
	}
	if mapping.Process.DefaultImpact > 0 {
		return mapping.Process.DefaultImpact * mapping.FunctionalUnitValue, ImpactSourceDefault
	}

	code := strings.ToLower(mapping.Process.Code)
	for _, fb := range ecoscore.FallbackImpacts {
		if strings.Contains(code, fb.Keyword) {
			return fb.Impact * mapping.FunctionalUnitValue, ImpactSourceEstimate
		}
	}
	return ecoscore.DefaultFallbackImpact * mapping.FunctionalUnitValue, ImpactSourceEstimate
}

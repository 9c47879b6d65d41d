package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ecoswitch/ecoswitch-backend/internal/clients/lca"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos/testutil"
	"github.com/ecoswitch/ecoswitch-backend/internal/services"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

type fakeLCAClient struct {
	impact float64
	err    error
	calls  int
}

func (f *fakeLCAClient) Impact(ctx context.Context, processCode string, functionalUnit float64) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.impact, nil
}

func (f *fakeLCAClient) Method() string { return types.LCAMethodGWP100a }

func mappingWithProcess(code string, defaultImpact, functionalUnitValue float64) *types.ProductMapping {
	process := testutil.NewProcess(code, "Personal Care", defaultImpact)
	mapping := testutil.NewMapping(types.CatalogRef(uuid.New()), process.ID)
	mapping.FunctionalUnitValue = functionalUnitValue
	mapping.Process = process
	return mapping
}

func TestEvaluateImpactUsesBackend(t *testing.T) {
	client := &fakeLCAClient{impact: 0.42}
	svc := services.NewLCAService(testutil.Logger(t), client)

	impact, source, err := svc.EvaluateImpact(context.Background(), mappingWithProcess("toothbrush_bamboo", 0.05, 1.0))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if impact != 0.42 || source != services.ImpactSourceBackend {
		t.Fatalf("got (%v, %s), want (0.42, backend)", impact, source)
	}
	if client.calls != 1 {
		t.Fatalf("backend called %d times, want 1", client.calls)
	}
}

func TestEvaluateImpactZeroBackendResultFallsBack(t *testing.T) {
	// A backend result of 0 would normalize to a perfect score for any
	// product, so it is never trusted.
	client := &fakeLCAClient{impact: 0}
	svc := services.NewLCAService(testutil.Logger(t), client)

	impact, source, err := svc.EvaluateImpact(context.Background(), mappingWithProcess("toothbrush_bamboo", 0.05, 1.0))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if impact != 0.05 || source != services.ImpactSourceDefault {
		t.Fatalf("got (%v, %s), want (0.05, process_default)", impact, source)
	}
	if client.calls != 1 {
		t.Fatalf("backend called %d times, want 1", client.calls)
	}
}

func TestEvaluateImpactFallsBackToProcessDefault(t *testing.T) {
	client := &fakeLCAClient{err: lca.ErrProcessNotFound}
	svc := services.NewLCAService(testutil.Logger(t), client)

	impact, source, err := svc.EvaluateImpact(context.Background(), mappingWithProcess("toothbrush_bamboo", 0.05, 2.0))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if impact != 0.1 || source != services.ImpactSourceDefault {
		t.Fatalf("got (%v, %s), want (0.1, process_default)", impact, source)
	}
}

func TestEvaluateImpactKeywordEstimate(t *testing.T) {
	client := &fakeLCAClient{err: &lca.BackendError{Op: "call", Err: errors.New("connection refused")}}
	svc := services.NewLCAService(testutil.Logger(t), client)

	cases := []struct {
		code string
		want float64
	}{
		{code: "bottle_PET_500ml", want: 0.1},
		{code: "textile_cotton_tshirt", want: 0.5},
		{code: "lamp_LED_10W", want: 0.2},
		{code: "mystery_process", want: 0.5},
	}
	for _, tc := range cases {
		impact, source, err := svc.EvaluateImpact(context.Background(), mappingWithProcess(tc.code, 0, 1.0))
		if err != nil {
			t.Fatalf("evaluate %s: %v", tc.code, err)
		}
		if impact != tc.want || source != services.ImpactSourceEstimate {
			t.Fatalf("%s: got (%v, %s), want (%v, keyword_estimate)", tc.code, impact, source, tc.want)
		}
	}
}

func TestEvaluateImpactManualOverrideWins(t *testing.T) {
	client := &fakeLCAClient{impact: 99.0}
	svc := services.NewLCAService(testutil.Logger(t), client)

	mapping := mappingWithProcess("toothbrush_bamboo", 0.05, 1.0)
	override := 0.01
	mapping.ManualImpactOverride = &override
	mapping.IsManualOverride = true

	impact, source, err := svc.EvaluateImpact(context.Background(), mapping)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if impact != 0.01 || source != services.ImpactSourceOverride {
		t.Fatalf("got (%v, %s), want (0.01, manual_override)", impact, source)
	}
	if client.calls != 0 {
		t.Fatal("backend called despite manual override")
	}
}

func TestEvaluateImpactStoredCreditBeatsProcessDefault(t *testing.T) {
	svc := services.NewLCAService(testutil.Logger(t), nil)

	mapping := mappingWithProcess("toothbrush_plastic", 0.1, 1.0)
	credited := 0.075
	mapping.ManualImpactOverride = &credited

	impact, source, err := svc.EvaluateImpact(context.Background(), mapping)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if impact != 0.075 || source != services.ImpactSourceDefault {
		t.Fatalf("got (%v, %s), want (0.075, process_default)", impact, source)
	}
}

func TestEvaluateImpactUnknownErrorFallsBack(t *testing.T) {
	// Any client implementation may fail in untyped ways; no backend
	// error aborts a product.
	client := &fakeLCAClient{err: errors.New("boom")}
	svc := services.NewLCAService(testutil.Logger(t), client)

	impact, source, err := svc.EvaluateImpact(context.Background(), mappingWithProcess("toothbrush_bamboo", 0.05, 1.0))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if impact != 0.05 || source != services.ImpactSourceDefault {
		t.Fatalf("got (%v, %s), want (0.05, process_default)", impact, source)
	}
}

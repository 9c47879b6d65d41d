package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos/testutil"
	"github.com/ecoswitch/ecoswitch-backend/internal/services"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

func TestSummarizeCart(t *testing.T) {
	items := []services.CartItem{
		{Grade: types.GradeA, CO2Saved: 2.0},
		{Grade: types.GradeA, CO2Saved: 3.0},
		{Grade: types.GradeB, CO2Saved: 1.0},
		{Grade: types.GradeD, CO2Saved: 0.0},
	}
	summary := services.SummarizeCart(items)
	if summary.Total != 4 {
		t.Fatalf("total = %d, want 4", summary.Total)
	}
	if summary.FractionA != 0.5 {
		t.Fatalf("fraction A = %v, want 0.5", summary.FractionA)
	}
	if summary.FractionAB != 0.75 {
		t.Fatalf("fraction A+B = %v, want 0.75", summary.FractionAB)
	}
	if summary.TotalCO2Saved != 6.0 {
		t.Fatalf("co2 = %v, want 6.0", summary.TotalCO2Saved)
	}

	empty := services.SummarizeCart(nil)
	if empty.Total != 0 || empty.FractionA != 0 || empty.FractionAB != 0 {
		t.Fatalf("empty summary = %+v", empty)
	}
}

func TestCheckAchievementsThresholds(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := services.NewGamificationService(db, log, repos.NewAchievementRepo(db, log))

	userID := uuid.New()

	// 3 of 4 items at B or better: Green Shopper only.
	earned, err := svc.CheckAchievements(ctx, userID, []services.CartItem{
		{Grade: types.GradeA, CO2Saved: 1.0},
		{Grade: types.GradeA, CO2Saved: 1.0},
		{Grade: types.GradeB, CO2Saved: 0.5},
		{Grade: types.GradeC},
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(earned) != 1 || earned[0].AchievementType != types.AchievementGreenShopper {
		t.Fatalf("earned = %+v, want green_shopper only", earned)
	}
	if earned[0].EarnedAt == nil || !earned[0].IsEarned {
		t.Fatalf("badge not marked earned: %+v", earned[0])
	}
}

func TestCheckAchievementsGradeFractionBoundaries(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := services.NewGamificationService(db, log, repos.NewAchievementRepo(db, log))

	cases := []struct {
		name            string
		aCount, eCount  int
		wantEcoChampion bool
	}{
		{name: "nine of ten A", aCount: 9, eCount: 1, wantEcoChampion: true},
		{name: "eight of ten A", aCount: 8, eCount: 2, wantEcoChampion: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var cart []services.CartItem
			for i := 0; i < tc.aCount; i++ {
				cart = append(cart, services.CartItem{Grade: types.GradeA})
			}
			for i := 0; i < tc.eCount; i++ {
				cart = append(cart, services.CartItem{Grade: types.GradeE})
			}

			earned, err := svc.CheckAchievements(ctx, uuid.New(), cart)
			if err != nil {
				t.Fatalf("check: %v", err)
			}
			byType := map[string]bool{}
			for _, a := range earned {
				byType[a.AchievementType] = true
			}
			if !byType[types.AchievementGreenShopper] {
				t.Fatalf("green_shopper not earned: %v", byType)
			}
			if byType[types.AchievementEcoChampion] != tc.wantEcoChampion {
				t.Fatalf("eco_champion earned = %v, want %v", byType[types.AchievementEcoChampion], tc.wantEcoChampion)
			}
			if byType[types.AchievementCarbonReducer] {
				t.Fatalf("carbon_reducer earned with no CO2 saved: %v", byType)
			}
		})
	}
}

func TestCheckAchievementsAllAtOnce(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := services.NewGamificationService(db, log, repos.NewAchievementRepo(db, log))

	earned, err := svc.CheckAchievements(ctx, uuid.New(), []services.CartItem{
		{Grade: types.GradeA, CO2Saved: 6.0},
		{Grade: types.GradeA, CO2Saved: 5.0},
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(earned) != 3 {
		t.Fatalf("earned %d achievements, want all 3", len(earned))
	}
}

func TestCheckAchievementsRepeatAccumulatesCO2(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	achievementRepo := repos.NewAchievementRepo(db, log)
	svc := services.NewGamificationService(db, log, achievementRepo)

	userID := uuid.New()
	cart := []services.CartItem{{Grade: types.GradeA, CO2Saved: 12.0}}

	if _, err := svc.CheckAchievements(ctx, userID, cart); err != nil {
		t.Fatalf("first check: %v", err)
	}
	earned, err := svc.CheckAchievements(ctx, userID, cart)
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	if len(earned) != 0 {
		t.Fatalf("second check re-earned %d achievements, want 0", len(earned))
	}

	row, err := achievementRepo.GetByUserAndType(ctx, nil, userID, types.AchievementCarbonReducer)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.TotalCO2Saved != 24.0 {
		t.Fatalf("co2 = %v, want 24.0", row.TotalCO2Saved)
	}
}

func TestCheckAchievementsEmptyCartEarnsNothing(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := services.NewGamificationService(db, log, repos.NewAchievementRepo(db, log))

	earned, err := svc.CheckAchievements(ctx, uuid.New(), nil)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(earned) != 0 {
		t.Fatalf("empty cart earned %d achievements", len(earned))
	}
}

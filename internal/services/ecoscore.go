package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	redisclient "github.com/ecoswitch/ecoswitch-backend/internal/clients/redis"
	"github.com/ecoswitch/ecoswitch-backend/internal/ecoscore"
	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/repos"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
)

var (
	// ErrNoMapping means the product has no process mapping yet; run the
	// mapping step first.
	ErrNoMapping = errors.New("product has no process mapping")
	// ErrNoBenchmark means no benchmark covers the product's category,
	// even through aliases and partial matches.
	ErrNoBenchmark = errors.New("no benchmark for product category")
)

// scoreFreshness is how long a score stays valid before an unforced
// recalculation recomputes it.
const scoreFreshness = 30 * 24 * time.Hour

// statsRecentWindow bounds the "recent recalculations" stats counter.
const statsRecentWindow = 7 * 24 * time.Hour

const recalcChangeReason = "Automatic recalculation"

// ScoreStats is the aggregate view served by the stats endpoint.
type ScoreStats struct {
	TotalScores       int64                   `json:"total_scores"`
	AverageScore      float64                 `json:"average_score"`
	GradeDistribution []repos.GradeCount      `json:"grade_distribution"`
	CategoryBreakdown []repos.CategoryAverage `json:"category_breakdown"`
	CalculatedLast7d  int64                   `json:"calculated_last_7_days"`
}

type EcoScoreService interface {
	Calculate(ctx context.Context, ref types.ProductRef, force bool) (*types.EcoScore, error)
	GetByRef(ctx context.Context, ref types.ProductRef) (*types.EcoScore, error)
	List(ctx context.Context, filter repos.ScoreFilter) ([]*types.EcoScore, error)
	History(ctx context.Context, ref types.ProductRef, limit int) ([]*types.EcoScoreHistory, error)
	Stats(ctx context.Context) (*ScoreStats, error)
}

type ecoScoreService struct {
	db            *gorm.DB
	log           *logger.Logger
	lca           LCAService
	cache         redisclient.ScoreCache
	productRepo   repos.ProductRepo
	merchantRepo  repos.MerchantProductRepo
	mappingRepo   repos.ProductMappingRepo
	benchmarkRepo repos.BenchmarkRepo
	scoreRepo     repos.EcoScoreRepo
	historyRepo   repos.EcoScoreHistoryRepo

	group singleflight.Group
}

func NewEcoScoreService(
	db *gorm.DB,
	log *logger.Logger,
	lcaSvc LCAService,
	cache redisclient.ScoreCache,
	productRepo repos.ProductRepo,
	merchantRepo repos.MerchantProductRepo,
	mappingRepo repos.ProductMappingRepo,
	benchmarkRepo repos.BenchmarkRepo,
	scoreRepo repos.EcoScoreRepo,
	historyRepo repos.EcoScoreHistoryRepo,
) EcoScoreService {
	return &ecoScoreService{
		db:            db,
		log:           log.With("service", "EcoScoreService"),
		lca:           lcaSvc,
		cache:         cache,
		productRepo:   productRepo,
		merchantRepo:  merchantRepo,
		mappingRepo:   mappingRepo,
		benchmarkRepo: benchmarkRepo,
		scoreRepo:     scoreRepo,
		historyRepo:   historyRepo,
	}
}

// Calculate recomputes the product's score. Unforced calls return the
// stored score while it is still fresh. Concurrent calls for the same
// product collapse into one computation.
func (s *ecoScoreService) Calculate(ctx context.Context, ref types.ProductRef, force bool) (*types.EcoScore, error) {
	if !ref.Valid() {
		return nil, ErrProductNotFound
	}
	v, err, _ := s.group.Do(ref.Key(), func() (interface{}, error) {
		return s.calculate(ctx, ref, force)
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.EcoScore), nil
}

func (s *ecoScoreService) calculate(ctx context.Context, ref types.ProductRef, force bool) (*types.EcoScore, error) {
	info, err := loadProduct(ctx, nil, s.productRepo, s.merchantRepo, ref)
	if err != nil {
		return nil, err
	}

	if !force {
		existing, err := s.scoreRepo.GetLatestByRef(ctx, nil, ref)
		if err != nil {
			return nil, err
		}
		if existing != nil && time.Since(existing.CalculationDate) < scoreFreshness {
			s.log.Debug("score still fresh, skipping recalculation", "ref", ref.Key())
			return existing, nil
		}
	}

	mapping, err := s.mappingRepo.GetFirstByRef(ctx, nil, ref)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMapping, ref.Key())
	}

	rawImpact, source, err := s.lca.EvaluateImpact(ctx, mapping)
	if err != nil {
		return nil, err
	}

	benchmark, err := s.benchmarkFor(ctx, nil, info.Category, info.Subcategory)
	if err != nil {
		return nil, err
	}

	normalized := ecoscore.NormalizeImpact(rawImpact, benchmark.BenchmarkImpact)
	scoreValue, grade := ecoscore.GradeScore(normalized, benchmark)

	now := time.Now().UTC()
	score := &types.EcoScore{
		ID:                 uuid.New(),
		ProductType:        ref.Kind,
		ProductID:          ref.ID,
		ScoreValue:         scoreValue,
		ScoreGrade:         grade,
		RawImpact:          rawImpact,
		ImpactUnit:         benchmark.BenchmarkUnit,
		NormalizedImpact:   normalized,
		LCAMethod:          s.lca.Method(),
		ProcessID:          mapping.ProcessID,
		BenchmarkID:        benchmark.ID,
		CalculationDate:    now,
		CalculationVersion: types.CalculationVersion,
		IsManualOverride:   mapping.IsManualOverride,
		CalculationNotes:   fmt.Sprintf("impact source: %s", source),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prior, err := s.scoreRepo.GetLatestByRef(ctx, tx, ref)
		if err != nil {
			return err
		}
		if err := s.scoreRepo.DeleteByRef(ctx, tx, ref); err != nil {
			return err
		}
		if _, err := s.scoreRepo.Create(ctx, tx, score); err != nil {
			return err
		}

		// History tracks changes only: the first calculation writes none.
		if prior != nil && prior.ScoreValue != scoreValue {
			old := prior.ScoreValue
			history := &types.EcoScoreHistory{
				ID:           uuid.New(),
				ProductType:  ref.Kind,
				ProductID:    ref.ID,
				OldScore:     &old,
				OldGrade:     prior.ScoreGrade,
				NewScore:     scoreValue,
				NewGrade:     grade,
				ChangeReason: recalcChangeReason,
				CreatedAt:    now,
			}
			if _, err := s.historyRepo.Create(ctx, tx, history); err != nil {
				return err
			}
		}

		return updateScoreSummary(ctx, tx, s.productRepo, s.merchantRepo, ref, repos.ScoreSummary{
			Value:        scoreValue,
			Grade:        grade,
			CalculatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, score)
	}
	s.log.Info("calculated ecoscore",
		"ref", ref.Key(),
		"score", scoreValue,
		"grade", string(grade),
		"impact_source", string(source))
	return score, nil
}

// benchmarkFor walks the benchmark resolution chain: exact (category,
// subcategory), category-wide row, first benchmark whose category
// contains the product's, and only then the same chain under the
// category alias. A category with its own benchmark row always beats
// its alias target.
func (s *ecoScoreService) benchmarkFor(ctx context.Context, tx *gorm.DB, category, subcategory string) (*types.Benchmark, error) {
	b, err := s.lookupBenchmark(ctx, tx, category, subcategory)
	if err != nil {
		return nil, err
	}
	if b == nil {
		if alias, ok := ecoscore.BenchmarkAliases[category]; ok {
			b, err = s.lookupBenchmark(ctx, tx, alias, subcategory)
			if err != nil {
				return nil, err
			}
		}
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoBenchmark, category)
	}
	return b, nil
}

func (s *ecoScoreService) lookupBenchmark(ctx context.Context, tx *gorm.DB, category, subcategory string) (*types.Benchmark, error) {
	if subcategory != "" {
		b, err := s.benchmarkRepo.GetByCategoryAndSubcategory(ctx, tx, category, subcategory)
		if err != nil {
			return nil, err
		}
		if b != nil {
			return b, nil
		}
	}

	b, err := s.benchmarkRepo.GetByCategoryAndSubcategory(ctx, tx, category, "")
	if err != nil {
		return nil, err
	}
	if b != nil {
		return b, nil
	}

	return s.benchmarkRepo.FirstCategoryContaining(ctx, tx, category)
}

func (s *ecoScoreService) GetByRef(ctx context.Context, ref types.ProductRef) (*types.EcoScore, error) {
	if !ref.Valid() {
		return nil, ErrProductNotFound
	}
	if s.cache != nil {
		if score, ok := s.cache.Get(ctx, ref); ok {
			return score, nil
		}
	}
	score, err := s.scoreRepo.GetLatestByRef(ctx, nil, ref)
	if err != nil {
		return nil, err
	}
	if score != nil && s.cache != nil {
		s.cache.Set(ctx, score)
	}
	return score, nil
}

func (s *ecoScoreService) List(ctx context.Context, filter repos.ScoreFilter) ([]*types.EcoScore, error) {
	return s.scoreRepo.List(ctx, nil, filter)
}

func (s *ecoScoreService) History(ctx context.Context, ref types.ProductRef, limit int) ([]*types.EcoScoreHistory, error) {
	if !ref.Valid() {
		return nil, ErrProductNotFound
	}
	return s.historyRepo.ListByRef(ctx, nil, ref, limit)
}

func (s *ecoScoreService) Stats(ctx context.Context) (*ScoreStats, error) {
	total, err := s.scoreRepo.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	avg, err := s.scoreRepo.AverageScore(ctx, nil)
	if err != nil {
		return nil, err
	}
	grades, err := s.scoreRepo.CountByGrade(ctx, nil)
	if err != nil {
		return nil, err
	}
	categories, err := s.scoreRepo.CategoryBreakdown(ctx, nil)
	if err != nil {
		return nil, err
	}
	recent, err := s.scoreRepo.CountCalculatedSince(ctx, nil, time.Now().UTC().Add(-statsRecentWindow))
	if err != nil {
		return nil, err
	}
	return &ScoreStats{
		TotalScores:       total,
		AverageScore:      avg,
		GradeDistribution: grades,
		CategoryBreakdown: categories,
		CalculatedLast7d:  recent,
	}, nil
}

package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"senateway/config"
	"senateway/infras/otel"
	analyticsModel "senateway/internal/domains/analytics/model"
	analyticsRepo "senateway/internal/domains/analytics/repository"
	"senateway/internal/domains/review/model"
	"senateway/internal/domains/review/model/dto"
	"senateway/internal/domains/review/repository"
	"senateway/internal/domains/review/seed"
	"senateway/shared"
	"senateway/shared/cache"
	"senateway/shared/constant"
	gDto "senateway/shared/dto"
)

const (
	cacheGetAllReview  = "review:gets"
	cacheCountReview   = "review:count"
	cacheSummaryReview = "review:summary"
)

// fallbackAverage is shown when there are no reviews at all, seeds included.
// The site never shows 0 or NaN.
const fallbackAverage = 4.7

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReviewsResponse, error)
	Summary(ctx context.Context) (dto.RatingSummaryResponse, error)
}

type serviceImpl struct {
	repo          repository.Review
	analyticsRepo analyticsRepo.Analytics
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(repo repository.Review, analyticsRepo analyticsRepo.Analytics, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:          repo,
		analyticsRepo: analyticsRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		user = constant.ContextGuest
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return fmt.Errorf("failed to create review: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.analyticsRepo.Increment(c, analyticsModel.CounterReviews); err != nil {
			log.Error().Err(err).Msg("failed to increment reviews counter")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
		shared.InvalidateCaches(c, s.cache, cacheCountReview)

		if err := s.cache.Delete(c, cacheSummaryReview); err != nil {
			log.Error().Err(err).Msg("failed to delete review summary cache")
		}
	}()

	return nil
}

// GetAll lists the embedded seed reviews first, followed by stored reviews
// newest first.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(seed.Reviews(), models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

// Summary returns the arithmetic mean over seed plus stored reviews, rounded
// to one decimal.
func (s *serviceImpl) Summary(ctx context.Context) (res dto.RatingSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheSummaryReview, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSummaryReview).Msg("cache hit for review summary")

		return res, nil
	}

	stored, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldRating)
	if err != nil {
		log.Error().Err(err).Msg("failed to get review ratings")

		return res, fmt.Errorf("failed to get review ratings: %w", err)
	}

	res = summarize(seed.Reviews(), stored)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSummaryReview, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save review summary to cache")
		}
	}()

	return res, nil
}

func summarize(seeds []seed.Review, stored []model.Review) dto.RatingSummaryResponse {
	total := len(seeds) + len(stored)
	if total == 0 {
		return dto.RatingSummaryResponse{Average: fallbackAverage, Total: 0}
	}

	sum := 0
	for _, s := range seeds {
		sum += s.Rating
	}

	for _, m := range stored {
		sum += m.Rating
	}

	average := math.Round(float64(sum)/float64(total)*10) / 10

	return dto.RatingSummaryResponse{Average: average, Total: total}
}

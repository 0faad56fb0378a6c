package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"senateway/config"
	"senateway/infras/otel"
	"senateway/internal/domains/analytics/model"
	"senateway/internal/domains/analytics/model/dto"
	"senateway/internal/domains/analytics/repository"
	"senateway/shared"
	"senateway/shared/cache"
	"senateway/shared/constant"
	gDto "senateway/shared/dto"
	"senateway/shared/failure"
)

const (
	cacheSummaryAnalytics = "analytics:summary"
	cacheKeySession       = "session"
)

type Analytics interface {
	Track(ctx context.Context, req dto.TrackEventRequest, sessionID string) error
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo  repository.Analytics
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Analytics, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Analytics {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Track increments the counter for the given event. When a session id is
// present and has not been seen within the session TTL, the total_users
// counter is bumped as well: the once-per-session guard lives in Redis, not
// in any ambient client state.
func (s *serviceImpl) Track(ctx context.Context, req dto.TrackEventRequest, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Track")
	defer scope.End()
	defer scope.TraceIfError(err)

	counter := model.CounterForEvent(req.Type)
	if counter == "" {
		return failure.BadRequestFromString("unknown event type") // nolint:wrapcheck
	}

	if sessionID != "" {
		first, err := s.cache.Once(ctx, shared.BuildCacheKey(cacheKeySession, sessionID), s.cfg.App.SessionTTLSeconds)
		if err != nil {
			log.Error().Err(err).Msg("failed to check session guard, skipping total_users increment")
		} else if first {
			if err := s.repo.Increment(ctx, model.CounterTotalUsers); err != nil {
				log.Error().Err(err).Msg("failed to increment total_users counter")

				return fmt.Errorf("failed to increment total_users counter: %w", err)
			}
		}
	}

	if err = s.repo.Increment(ctx, counter); err != nil {
		log.Error().Err(err).Str("counter", counter).Msg("failed to increment counter")

		return fmt.Errorf("failed to increment counter: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheSummaryAnalytics); err != nil {
			log.Error().Err(err).Msg("failed to invalidate analytics summary cache")
		}
	}()

	return nil
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheSummaryAnalytics, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSummaryAnalytics).Msg("cache hit for analytics summary")

		return res, nil
	}

	counters, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get analytics counters")

		return res, fmt.Errorf("failed to get analytics counters: %w", err)
	}

	res.FromModels(counters)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSummaryAnalytics, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save analytics summary to cache")
		}
	}()

	return res, nil
}

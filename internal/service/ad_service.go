package service

import (
	"context"

	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/repository/memory"
	"samvidhan-be/internal/repository/specification"
	"samvidhan-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const activeAdsKey = "active"

type AdCache = memory.CacheRepository[[]dto.AdResponse]

type IAdService interface {
	ActiveAds(ctx context.Context) ([]dto.AdResponse, error)
}

type adService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *AdCache
	logger     logger.ILogger
}

func NewAdService(uowFactory unitofwork.RepositoryFactory, cache *AdCache, log logger.ILogger) IAdService {
	return &adService{uowFactory: uowFactory, cache: cache, logger: log}
}

// ActiveAds serves from cache when possible. Impressions are counted on every call.
func (s *adService) ActiveAds(ctx context.Context) ([]dto.AdResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ads, ok := s.cache.Get(activeAdsKey)
	if !ok {
		found, err := uow.AdRepository().FindAll(ctx, specification.ActiveAds{}, specification.OrderBy{Field: "created_at"})
		if err != nil {
			return nil, err
		}
		ads = make([]dto.AdResponse, 0, len(found))
		for _, a := range found {
			ads = append(ads, dto.AdResponse{
				Id:          a.Id,
				Title:       a.Title,
				Description: a.Description,
				ImageURL:    a.ImageURL,
				Link:        a.Link,
				Advertiser:  a.Advertiser,
			})
		}
		s.cache.Save(activeAdsKey, ads)
	}

	ids := make([]uuid.UUID, 0, len(ads))
	for _, a := range ads {
		ids = append(ids, a.Id)
	}
	if err := uow.AdRepository().AddImpressions(ctx, ids); err != nil {
		s.logger.Warn("ADS", "Failed to count impressions", map[string]interface{}{"error": err.Error()})
	}
	return ads, nil
}

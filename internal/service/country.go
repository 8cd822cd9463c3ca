package service

import (
	"context"

	"github.com/TravelTales/blog-service/internal/countryapi"
	"github.com/TravelTales/blog-service/internal/model"
	"go.uber.org/zap"
)

type countryService struct {
	logger    *zap.Logger
	countries countryapi.Client
}

func newCountryService(logger *zap.Logger, countries countryapi.Client) Country {
	return &countryService{
		logger:    logger,
		countries: countries,
	}
}

func (s *countryService) Find(ctx context.Context, name string) (*model.Country, error) {
	country, err := s.countries.Lookup(ctx, name)
	if err != nil {
		s.logger.Sugar().Errorf("failed to fetch country data for %q: %s", name, err.Error())
		return nil, err
	}

	return country, nil
}

func (s *countryService) AllNames(ctx context.Context) ([]string, error) {
	names, err := s.countries.AllNames(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to fetch country names: %s", err.Error())
		return nil, err
	}

	return names, nil
}

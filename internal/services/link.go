package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tripplanner/internal/domain"
)

type linkService struct {
	linkRepo       domain.LinkRepository
	tripRepo       domain.TripRepository
	contextTimeout time.Duration
}

// NewLinkService creates a LinkService.
func NewLinkService(
	linkRepo domain.LinkRepository,
	tripRepo domain.TripRepository,
	timeout time.Duration,
) domain.LinkService {
	return &linkService{
		linkRepo:       linkRepo,
		tripRepo:       tripRepo,
		contextTimeout: timeout,
	}
}

func (s *linkService) CreateLink(ctx context.Context, tripID, title, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get trip: %w", err)
	}

	link := &domain.Link{
		TripID: tripID,
		Title:  title,
		URL:    url,
	}
	if err := s.linkRepo.Create(ctx, link); err != nil {
		return "", fmt.Errorf("create link: %w", err)
	}
	return link.ID, nil
}

func (s *linkService) ListTripLinks(ctx context.Context, tripID string) ([]*domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}

	links, err := s.linkRepo.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tripplanner/internal/dates"
	"tripplanner/internal/domain"
)

type activityService struct {
	activityRepo   domain.ActivityRepository
	tripRepo       domain.TripRepository
	contextTimeout time.Duration
}

// NewActivityService creates an ActivityService.
func NewActivityService(
	activityRepo domain.ActivityRepository,
	tripRepo domain.TripRepository,
	timeout time.Duration,
) domain.ActivityService {
	return &activityService{
		activityRepo:   activityRepo,
		tripRepo:       tripRepo,
		contextTimeout: timeout,
	}
}

func (s *activityService) CreateActivity(ctx context.Context, tripID, title string, occursAt time.Time) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get trip: %w", err)
	}

	// Day-granularity bounds check: an activity on the trip's first or last
	// calendar day is valid regardless of time of day.
	day := dates.DayOf(occursAt)
	if day.Before(dates.DayOf(trip.StartsAt)) || day.After(dates.DayOf(trip.EndsAt)) {
		return "", domain.ErrActivityOutOfRange
	}

	activity := &domain.Activity{
		TripID:   tripID,
		Title:    title,
		OccursAt: occursAt,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return "", fmt.Errorf("create activity: %w", err)
	}
	return activity.ID, nil
}

func (s *activityService) ListTripActivities(ctx context.Context, tripID string) ([]domain.DayActivities, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}

	activities, err := s.activityRepo.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	// One bucket per calendar day from start to end inclusive, empty days
	// included. Activities keep their ascending occurs_at order.
	span := dates.DaysBetween(trip.StartsAt, trip.EndsAt)
	buckets := make([]domain.DayActivities, 0, span+1)
	for i := 0; i <= span; i++ {
		day := dates.DayOf(trip.StartsAt).AddDate(0, 0, i)
		dayActivities := make([]*domain.Activity, 0)
		for _, a := range activities {
			if dates.SameDay(a.OccursAt, day) {
				dayActivities = append(dayActivities, a)
			}
		}
		buckets = append(buckets, domain.DayActivities{
			Date:       day,
			Activities: dayActivities,
		})
	}
	return buckets, nil
}

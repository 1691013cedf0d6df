package service

import (
	"context"
	"time"

	"realestate-funnel-be/internal/dto"
	"realestate-funnel-be/pkg/store"
)

type IStatsService interface {
	Daily(ctx context.Context, day time.Time) (*dto.DailyStatsResponse, error)
}

type statsService struct {
	counter StatsCounter
}

func NewStatsService(counter StatsCounter) IStatsService {
	return &statsService{counter: counter}
}

func (s *statsService) Daily(ctx context.Context, day time.Time) (*dto.DailyStatsResponse, error) {
	key := store.DayKey(day)
	res := &dto.DailyStatsResponse{
		Date:     key,
		Counters: map[string]int64{},
	}
	if s.counter == nil {
		return res, nil
	}

	counters, err := s.counter.Snapshot(ctx, key)
	if err != nil {
		return nil, err
	}
	for field, n := range counters {
		res.Counters[field] = n
		res.Total += n
	}
	return res, nil
}

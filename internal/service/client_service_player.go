// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/adapter"
	"github.com/MKhiriev/fraud-shield/internal/catalog"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/store"
	"github.com/MKhiriev/fraud-shield/internal/story"
	"github.com/MKhiriev/fraud-shield/models"
)

type clientPlayerService struct {
	history store.PlayHistoryRepository
	adapter adapter.ServerAdapter
	now     func() time.Time
	logger  *logger.Logger
}

func NewClientPlayerService(history store.PlayHistoryRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientPlayerService {
	return &clientPlayerService{history: history, adapter: serverAdapter, now: time.Now, logger: logger}
}

func (p *clientPlayerService) Profile(ctx context.Context) (models.Profile, error) {
	profile, err := p.adapter.Profile(ctx)
	return profile, mapAdapterError(err)
}

func (p *clientPlayerService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries, err := p.adapter.Leaderboard(ctx)
	return entries, mapAdapterError(err)
}

func (p *clientPlayerService) News(ctx context.Context, filter models.NewsFilter) (models.NewsResponse, error) {
	news, err := p.adapter.News(ctx, filter)
	return news, mapAdapterError(err)
}

func (p *clientPlayerService) Games(ctx context.Context) ([]models.GameInfo, error) {
	games, err := p.adapter.Games(ctx)
	return games, mapAdapterError(err)
}

func (p *clientPlayerService) ServerVersion(ctx context.Context) (string, error) {
	version, err := p.adapter.Version(ctx)
	return version, mapAdapterError(err)
}

func (p *clientPlayerService) RecordGame(ctx context.Context, result story.Result) (models.PlayRecord, error) {
	record := models.PlayRecord{
		PlayedAt:   p.now().UTC(),
		StoryScore: result.StoryScore,
		QuizScore:  result.QuizScore,
		TotalScore: result.Total,
		Grade:      result.Grade,
	}

	id, err := p.history.SavePlayRecord(ctx, record)
	if err != nil {
		return models.PlayRecord{}, fmt.Errorf("failed to save play record: %w", err)
	}
	record.ID = id

	return record, nil
}

// ClaimReward returns the updated record alongside the server's reward.
//
// Returns:
//   - ErrNoPlayRecord if record was never saved.
//   - ErrRewardAlreadyClaimed if record was claimed before.
func (p *clientPlayerService) ClaimReward(ctx context.Context, record models.PlayRecord) (models.GameReward, models.PlayRecord, error) {
	if record.ID == 0 {
		return models.GameReward{}, record, ErrNoPlayRecord
	}
	if record.RewardClaimed {
		return models.GameReward{}, record, ErrRewardAlreadyClaimed
	}

	score := float64(record.TotalScore)
	reward, err := p.adapter.CompleteGame(ctx, models.GameCompletion{
		GameID: catalog.StoryGameID,
		Score:  &score,
	})
	if err != nil {
		return models.GameReward{}, record, mapAdapterError(err)
	}

	// the server has credited the coins at this point, so a local failure
	// only costs the claimed flag
	if err = p.history.MarkRewardClaimed(ctx, record.ID); err != nil {
		p.logger.Err(err).Int64("record_id", record.ID).Msg("failed to mark reward as claimed")
	}
	record.RewardClaimed = true

	p.logger.Info().
		Int64("record_id", record.ID).
		Int64("reward", reward.CoinReward).
		Msg("story reward claimed")

	return reward, record, nil
}

func (p *clientPlayerService) History(ctx context.Context, limit int) ([]models.PlayRecord, error) {
	return p.history.RecentPlayRecords(ctx, limit)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/models"
)

type playHistoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewPlayHistoryRepository(db *DB, logger *logger.Logger) PlayHistoryRepository {
	return &playHistoryRepository{
		DB:     db,
		logger: logger,
	}
}

// SavePlayRecord appends a finished game and returns its row id.
func (p *playHistoryRepository) SavePlayRecord(ctx context.Context, record models.PlayRecord) (int64, error) {
	res, err := p.DB.ExecContext(ctx, savePlayRecord,
		record.PlayedAt.UTC(),
		record.StoryScore,
		record.QuizScore,
		record.TotalScore,
		record.Grade,
		record.RewardClaimed,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "playHistoryRepository.SavePlayRecord").Msg("failed to save play record")
		return 0, fmt.Errorf("failed to save play record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read play record id: %w", err)
	}

	return id, nil
}

func (p *playHistoryRepository) MarkRewardClaimed(ctx context.Context, recordID int64) error {
	res, err := p.DB.ExecContext(ctx, markRewardClaimed, recordID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "playHistoryRepository.MarkRewardClaimed").
			Int64("record_id", recordID).
			Msg("failed to mark reward claimed")
		return fmt.Errorf("failed to mark reward claimed: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark reward claimed: %w", err)
	}
	if affected == 0 {
		return ErrPlayRecordNotFound
	}

	return nil
}

// RecentPlayRecords returns up to limit records, newest first.
func (p *playHistoryRepository) RecentPlayRecords(ctx context.Context, limit int) ([]models.PlayRecord, error) {
	rows, err := p.DB.QueryContext(ctx, recentPlayRecords, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "playHistoryRepository.RecentPlayRecords").Msg("failed to query play history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.PlayRecord, 0)
	for rows.Next() {
		var r models.PlayRecord
		if err = rows.Scan(&r.ID, &r.PlayedAt, &r.StoryScore, &r.QuizScore, &r.TotalScore, &r.Grade, &r.RewardClaimed); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

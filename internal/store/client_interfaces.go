package store

import (
	"context"

	"github.com/MKhiriev/fraud-shield/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the single remembered login of the client.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	GetSession(ctx context.Context) (models.LocalSession, error)
	DeleteSession(ctx context.Context) error
}

// PlayHistoryRepository keeps the finished story games of the client.
type PlayHistoryRepository interface {
	SavePlayRecord(ctx context.Context, record models.PlayRecord) (int64, error)
	MarkRewardClaimed(ctx context.Context, recordID int64) error
	RecentPlayRecords(ctx context.Context, limit int) ([]models.PlayRecord, error)
}

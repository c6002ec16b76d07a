package service

import (
	"github.com/MKhiriev/fraud-shield/internal/adapter"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/store"
)

type ClientServices struct {
	AuthService   ClientAuthService
	PlayerService ClientPlayerService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:   NewClientAuthService(localStore.Sessions, serverAdapter, logger),
		PlayerService: NewClientPlayerService(localStore.PlayHistory, serverAdapter, logger),
	}
}

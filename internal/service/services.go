package service

import (
	"github.com/MKhiriev/go-room-design/internal/config"
	"github.com/MKhiriev/go-room-design/internal/crypto"
	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/store"
	"github.com/MKhiriev/go-room-design/internal/validators"
	"github.com/MKhiriev/go-room-design/models"
)

type Services struct {
	AccountService   AccountService
	ModelService     ModelService
	RoomService      RoomService
	RoomModelService RoomModelService
	FileService      FileService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewStructValidator()

	modelService := NewModelService(storages.ModelRepository, validator, cfg, logger)
	roomModelService := NewRoomModelService(storages.RoomModelRepository, storages.RoomRepository, modelService, logger)

	return &Services{
		AccountService:   NewAccountService(storages.AccountRepository, crypto.NewPasswordHasher(cfg.PasswordHashCost), validator, cfg, logger),
		ModelService:     modelService,
		RoomService:      NewRoomService(storages.RoomRepository, roomModelService, validator, logger),
		RoomModelService: roomModelService,
		FileService:      NewFileService(storages.FileStorage, logger),
		AppInfoService:   NewAppInfoService(cfg, buildInfo, logger),
	}
}

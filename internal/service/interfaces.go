package service

import (
	"context"

	"github.com/MKhiriev/go-room-design/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService handles registration, login and admin checks.
type AccountService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)
	// Login looks the account up by username and email first and by email
	// alone second.
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)
	// CheckAdmin succeeds only for an existing admin account.
	CheckAdmin(ctx context.Context, userID string) (models.Account, error)
	// ResolveActor loads the caller once per request. Unknown ids resolve to
	// a non-admin actor.
	ResolveActor(ctx context.Context, userID string) (models.Actor, error)

	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ModelService manages the model catalog.
type ModelService interface {
	// List returns models newest first; unlisted models are skipped when
	// listedOnly is set.
	List(ctx context.Context, listedOnly bool) ([]models.Model, error)
	Get(ctx context.Context, id string) (models.Model, error)
	Create(ctx context.Context, model models.NewModel) (models.Model, error)
	Update(ctx context.Context, id string, update models.ModelUpdate) (models.Model, error)
	Delete(ctx context.Context, id string) (models.Model, error)
	Unlist(ctx context.Context, id string) (models.Model, error)
	// SearchByToken ranks models by name similarity to token. A nil
	// minSimilarity selects the configured default.
	SearchByToken(ctx context.Context, token string, minSimilarity *float64) ([]models.Model, error)
}

// RoomService manages rooms. Reads and writes are scoped to the actor unless
// the actor is an admin.
type RoomService interface {
	// List returns the rooms of userID with their placements.
	List(ctx context.Context, userID string) ([]models.Room, error)
	// Get returns the room with its placements.
	Get(ctx context.Context, actor models.Actor, roomID string) (models.Room, error)
	Create(ctx context.Context, room models.NewRoom) (models.Room, error)
	Update(ctx context.Context, actor models.Actor, roomID string, update models.RoomUpdate) (models.Room, error)
	Delete(ctx context.Context, actor models.Actor, roomID string) (models.Room, error)
}

// RoomModelService manages model placements. Access is derived from the
// owner of the parent room.
type RoomModelService interface {
	ListForRoom(ctx context.Context, roomID string) ([]models.RoomModel, error)
	ListForRooms(ctx context.Context, roomIDs []string) (map[string][]models.RoomModel, error)
	Get(ctx context.Context, actor models.Actor, id string) (models.RoomModel, error)
	Create(ctx context.Context, actor models.Actor, roomID, modelID string) (models.RoomModel, error)
	Update(ctx context.Context, actor models.Actor, id string, update models.RoomModelUpdate) (models.RoomModel, error)
	Delete(ctx context.Context, actor models.Actor, id string) error
}

// FileService stores uploaded assets and returns their URL.
type FileService interface {
	Upload(ctx context.Context, upload models.Upload) (string, error)
	// Delete removes a previously uploaded asset by its URL.
	Delete(ctx context.Context, url string) error
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-room-design/models"
)

// AccountRepository persists accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByID(ctx context.Context, id string) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByUsernameAndEmail(ctx context.Context, username, email string) (models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// ModelRepository persists catalog models.
type ModelRepository interface {
	CreateModel(ctx context.Context, model models.Model) (models.Model, error)
	GetModel(ctx context.Context, id string) (models.Model, error)
	// ListModels returns models newest first.
	ListModels(ctx context.Context, listedOnly bool) ([]models.Model, error)
	UpdateModel(ctx context.Context, model models.Model) error
	// DeleteModel removes the model and every placement referencing it.
	DeleteModel(ctx context.Context, id string) error

	// FindModelsByNameContaining returns models whose name contains token
	// case-insensitively, in insertion order.
	FindModelsByNameContaining(ctx context.Context, token string) ([]models.Model, error)
	// FirstModels returns at most limit models in insertion order.
	FirstModels(ctx context.Context, limit uint64) ([]models.Model, error)
	// GetModelsByIDs returns the models with the given ids in no particular order.
	GetModelsByIDs(ctx context.Context, ids []string) ([]models.Model, error)
}

// RoomRepository persists rooms.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room models.Room) (models.Room, error)
	GetRoom(ctx context.Context, id string) (models.Room, error)
	GetRoomOwnedBy(ctx context.Context, id, ownerID string) (models.Room, error)
	// ListRoomsByOwner returns the rooms of ownerID newest first.
	ListRoomsByOwner(ctx context.Context, ownerID string) ([]models.Room, error)
	UpdateRoom(ctx context.Context, room models.Room) error
	// DeleteRoom removes the room and all of its placements.
	DeleteRoom(ctx context.Context, id string) error
}

// RoomModelRepository persists model placements. Every returned placement
// carries its source model and the owner of its parent room.
type RoomModelRepository interface {
	CreateRoomModel(ctx context.Context, roomModel models.RoomModel) (models.RoomModel, error)
	GetRoomModel(ctx context.Context, id string) (models.RoomModel, error)
	// ListRoomModelsByRoom returns placements of a room, identifier descending.
	ListRoomModelsByRoom(ctx context.Context, roomID string) ([]models.RoomModel, error)
	// ListRoomModelsByRooms groups placements of several rooms by room id.
	ListRoomModelsByRooms(ctx context.Context, roomIDs []string) (map[string][]models.RoomModel, error)
	UpdateRoomModel(ctx context.Context, roomModel models.RoomModel) error
	DeleteRoomModel(ctx context.Context, id string) error
}

// FileStorage stores uploaded assets and returns a retrievable URL.
type FileStorage interface {
	// Save stores the content under folder (e.g. "models/") using a
	// collision free key derived from filename.
	Save(ctx context.Context, folder, filename string, content io.Reader, size int64, contentType string) (string, error)

	// Delete removes the file behind a URL returned by Save. Deleting a
	// file that is already gone succeeds.
	Delete(ctx context.Context, url string) error
}

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-room-design/models"
)

// ─────────────────────────────────────────────
// Fake: store.AccountRepository
// ─────────────────────────────────────────────

type fakeAccountRepository struct {
	createFn         func(ctx context.Context, account models.Account) (models.Account, error)
	findByIDFn       func(ctx context.Context, id string) (models.Account, error)
	findByEmailFn    func(ctx context.Context, email string) (models.Account, error)
	findByBothFn     func(ctx context.Context, username, email string) (models.Account, error)
	emailExistsFn    func(ctx context.Context, email string) (bool, error)
	usernameExistsFn func(ctx context.Context, username string) (bool, error)
}

func (f *fakeAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if f.createFn != nil {
		return f.createFn(ctx, account)
	}
	return account, nil
}

func (f *fakeAccountRepository) FindAccountByID(ctx context.Context, id string) (models.Account, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return models.Account{}, nil
}

func (f *fakeAccountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return models.Account{}, nil
}

func (f *fakeAccountRepository) FindAccountByUsernameAndEmail(ctx context.Context, username, email string) (models.Account, error) {
	if f.findByBothFn != nil {
		return f.findByBothFn(ctx, username, email)
	}
	return models.Account{}, nil
}

func (f *fakeAccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if f.emailExistsFn != nil {
		return f.emailExistsFn(ctx, email)
	}
	return false, nil
}

func (f *fakeAccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	if f.usernameExistsFn != nil {
		return f.usernameExistsFn(ctx, username)
	}
	return false, nil
}

// ─────────────────────────────────────────────
// Fake: store.ModelRepository
// ─────────────────────────────────────────────

type fakeModelRepository struct {
	createFn     func(ctx context.Context, model models.Model) (models.Model, error)
	getFn        func(ctx context.Context, id string) (models.Model, error)
	listFn       func(ctx context.Context, listedOnly bool) ([]models.Model, error)
	updateFn     func(ctx context.Context, model models.Model) error
	deleteFn     func(ctx context.Context, id string) error
	containingFn func(ctx context.Context, token string) ([]models.Model, error)
	firstFn      func(ctx context.Context, limit uint64) ([]models.Model, error)
	byIDsFn      func(ctx context.Context, ids []string) ([]models.Model, error)
}

func (f *fakeModelRepository) CreateModel(ctx context.Context, model models.Model) (models.Model, error) {
	if f.createFn != nil {
		return f.createFn(ctx, model)
	}
	return model, nil
}

func (f *fakeModelRepository) GetModel(ctx context.Context, id string) (models.Model, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return models.Model{ID: id}, nil
}

func (f *fakeModelRepository) ListModels(ctx context.Context, listedOnly bool) ([]models.Model, error) {
	if f.listFn != nil {
		return f.listFn(ctx, listedOnly)
	}
	return nil, nil
}

func (f *fakeModelRepository) UpdateModel(ctx context.Context, model models.Model) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, model)
	}
	return nil
}

func (f *fakeModelRepository) DeleteModel(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeModelRepository) FindModelsByNameContaining(ctx context.Context, token string) ([]models.Model, error) {
	if f.containingFn != nil {
		return f.containingFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeModelRepository) FirstModels(ctx context.Context, limit uint64) ([]models.Model, error) {
	if f.firstFn != nil {
		return f.firstFn(ctx, limit)
	}
	return nil, nil
}

func (f *fakeModelRepository) GetModelsByIDs(ctx context.Context, ids []string) ([]models.Model, error) {
	if f.byIDsFn != nil {
		return f.byIDsFn(ctx, ids)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Fake: store.RoomRepository
// ─────────────────────────────────────────────

type fakeRoomRepository struct {
	createFn   func(ctx context.Context, room models.Room) (models.Room, error)
	getFn      func(ctx context.Context, id string) (models.Room, error)
	getOwnedFn func(ctx context.Context, id, ownerID string) (models.Room, error)
	listFn     func(ctx context.Context, ownerID string) ([]models.Room, error)
	updateFn   func(ctx context.Context, room models.Room) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRoomRepository) CreateRoom(ctx context.Context, room models.Room) (models.Room, error) {
	if f.createFn != nil {
		return f.createFn(ctx, room)
	}
	return room, nil
}

func (f *fakeRoomRepository) GetRoom(ctx context.Context, id string) (models.Room, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return models.Room{ID: id}, nil
}

func (f *fakeRoomRepository) GetRoomOwnedBy(ctx context.Context, id, ownerID string) (models.Room, error) {
	if f.getOwnedFn != nil {
		return f.getOwnedFn(ctx, id, ownerID)
	}
	return models.Room{ID: id, OwnerID: ownerID}, nil
}

func (f *fakeRoomRepository) ListRoomsByOwner(ctx context.Context, ownerID string) ([]models.Room, error) {
	if f.listFn != nil {
		return f.listFn(ctx, ownerID)
	}
	return nil, nil
}

func (f *fakeRoomRepository) UpdateRoom(ctx context.Context, room models.Room) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, room)
	}
	return nil
}

func (f *fakeRoomRepository) DeleteRoom(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Fake: store.RoomModelRepository
// ─────────────────────────────────────────────

type fakeRoomModelRepository struct {
	createFn      func(ctx context.Context, roomModel models.RoomModel) (models.RoomModel, error)
	getFn         func(ctx context.Context, id string) (models.RoomModel, error)
	listByRoomFn  func(ctx context.Context, roomID string) ([]models.RoomModel, error)
	listByRoomsFn func(ctx context.Context, roomIDs []string) (map[string][]models.RoomModel, error)
	updateFn      func(ctx context.Context, roomModel models.RoomModel) error
	deleteFn      func(ctx context.Context, id string) error
}

func (f *fakeRoomModelRepository) CreateRoomModel(ctx context.Context, roomModel models.RoomModel) (models.RoomModel, error) {
	if f.createFn != nil {
		return f.createFn(ctx, roomModel)
	}
	return roomModel, nil
}

func (f *fakeRoomModelRepository) GetRoomModel(ctx context.Context, id string) (models.RoomModel, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return models.RoomModel{ID: id}, nil
}

func (f *fakeRoomModelRepository) ListRoomModelsByRoom(ctx context.Context, roomID string) ([]models.RoomModel, error) {
	if f.listByRoomFn != nil {
		return f.listByRoomFn(ctx, roomID)
	}
	return nil, nil
}

func (f *fakeRoomModelRepository) ListRoomModelsByRooms(ctx context.Context, roomIDs []string) (map[string][]models.RoomModel, error) {
	if f.listByRoomsFn != nil {
		return f.listByRoomsFn(ctx, roomIDs)
	}
	return map[string][]models.RoomModel{}, nil
}

func (f *fakeRoomModelRepository) UpdateRoomModel(ctx context.Context, roomModel models.RoomModel) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, roomModel)
	}
	return nil
}

func (f *fakeRoomModelRepository) DeleteRoomModel(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Fake: store.FileStorage
// ─────────────────────────────────────────────

type fakeFileStorage struct {
	saveFn   func(ctx context.Context, folder, filename string, content io.Reader, size int64, contentType string) (string, error)
	deleteFn func(ctx context.Context, url string) error
}

func (f *fakeFileStorage) Save(ctx context.Context, folder, filename string, content io.Reader, size int64, contentType string) (string, error) {
	if f.saveFn != nil {
		return f.saveFn(ctx, folder, filename, content, size, contentType)
	}
	return "http://files/" + folder + filename, nil
}

func (f *fakeFileStorage) Delete(ctx context.Context, url string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, url)
	}
	return nil
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + string(rune('0'+n))
	}
}

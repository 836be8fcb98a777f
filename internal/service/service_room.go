package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/store"
	"github.com/MKhiriev/go-room-design/internal/utils"
	"github.com/MKhiriev/go-room-design/internal/validators"
	"github.com/MKhiriev/go-room-design/models"
)

// roomService is the concrete implementation of RoomService.
type roomService struct {
	roomRepository store.RoomRepository
	placements     RoomModelService
	validator      validators.Validator

	newID func() string
	now   func() time.Time

	logger *logger.Logger
}

func NewRoomService(roomRepository store.RoomRepository, placements RoomModelService, validator validators.Validator, logger *logger.Logger) RoomService {
	return &roomService{
		roomRepository: roomRepository,
		placements:     placements,
		validator:      validator,
		newID:          utils.NewUUIDGenerator().Generate,
		now:            time.Now,
		logger:         logger,
	}
}

// List returns the rooms of userID newest first, each with its placements.
func (s *roomService) List(ctx context.Context, userID string) ([]models.Room, error) {
	log := logger.FromContext(ctx)

	rooms, err := s.roomRepository.ListRoomsByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*roomService.List").Str("user_id", userID).Msg("error listing rooms")
		return nil, unexpectedError(msgInternalError, err)
	}

	ids := make([]string, len(rooms))
	for i, room := range rooms {
		ids[i] = room.ID
	}

	placements, err := s.placements.ListForRooms(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		rooms[i].RoomModels = placements[rooms[i].ID]
	}

	return rooms, nil
}

func (s *roomService) Get(ctx context.Context, actor models.Actor, roomID string) (models.Room, error) {
	room, err := findRoom(ctx, s.roomRepository, actor, roomID)
	if err != nil {
		return models.Room{}, err
	}

	placements, err := s.placements.ListForRoom(ctx, room.ID)
	if err != nil {
		return models.Room{}, err
	}
	room.RoomModels = withPlacements(placements)

	return room, nil
}

// findRoom resolves a room visible to actor: any room for an admin, otherwise
// only a room the actor owns. Placements are not loaded.
func findRoom(ctx context.Context, repo store.RoomRepository, actor models.Actor, roomID string) (models.Room, error) {
	var (
		room models.Room
		err  error
	)
	if actor.IsAdmin {
		room, err = repo.GetRoom(ctx, roomID)
	} else {
		room, err = repo.GetRoomOwnedBy(ctx, roomID, actor.ID)
	}

	if errors.Is(err, store.ErrNotFound) {
		return models.Room{}, notFoundError(msgRoomNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "findRoom").Str("room_id", roomID).Msg("error getting room")
		return models.Room{}, unexpectedError(msgInternalError, err)
	}

	return room, nil
}

// Create persists a room for its owner. An unknown owner yields ErrNotFound.
func (s *roomService) Create(ctx context.Context, newRoom models.NewRoom) (models.Room, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, newRoom); err != nil {
		log.Debug().Err(err).Str("func", "*roomService.Create").Msg("invalid room data")
		if errors.Is(err, validators.ErrRequiredField) {
			return models.Room{}, validationError(msgRoomFieldsRequired)
		}
		return models.Room{}, validationError(err.Error())
	}

	room, err := s.roomRepository.CreateRoom(ctx, models.Room{
		ID:          s.newID(),
		Name:        newRoom.Name,
		Description: newRoom.Description,
		RoomFile:    newRoom.RoomFile,
		OwnerID:     newRoom.OwnerID,
		Sizes:       models.JSONList{},
		CreatedAt:   s.now().UTC(),
	})
	if errors.Is(err, store.ErrReferenceNotFound) {
		return models.Room{}, notFoundError(msgUserNotFound)
	}
	if err != nil {
		log.Err(err).Str("func", "*roomService.Create").Msg("error creating room")
		return models.Room{}, unexpectedError(msgInternalError, err)
	}
	room.RoomModels = []models.RoomModel{}

	return room, nil
}

func (s *roomService) Update(ctx context.Context, actor models.Actor, roomID string, update models.RoomUpdate) (models.Room, error) {
	room, err := findRoom(ctx, s.roomRepository, actor, roomID)
	if err != nil {
		return models.Room{}, err
	}

	if err = s.validator.Validate(ctx, update); err != nil {
		return models.Room{}, validationError(err.Error())
	}

	update.Apply(&room)
	err = s.roomRepository.UpdateRoom(ctx, room)
	if errors.Is(err, store.ErrNotFound) {
		return models.Room{}, notFoundError(msgRoomNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.Update").Str("room_id", roomID).Msg("error updating room")
		return models.Room{}, unexpectedError(msgInternalError, err)
	}

	return room, nil
}

// Delete removes the room together with its placements.
func (s *roomService) Delete(ctx context.Context, actor models.Actor, roomID string) (models.Room, error) {
	room, err := findRoom(ctx, s.roomRepository, actor, roomID)
	if err != nil {
		return models.Room{}, err
	}

	err = s.roomRepository.DeleteRoom(ctx, room.ID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Room{}, notFoundError(msgRoomNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomService.Delete").Str("room_id", roomID).Msg("error deleting room")
		return models.Room{}, unexpectedError(msgInternalError, err)
	}

	return room, nil
}

func withPlacements(placements []models.RoomModel) []models.RoomModel {
	if placements == nil {
		return []models.RoomModel{}
	}
	return placements
}

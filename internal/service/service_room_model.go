package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/store"
	"github.com/MKhiriev/go-room-design/internal/utils"
	"github.com/MKhiriev/go-room-design/models"
)

// roomModelService is the concrete implementation of RoomModelService.
// Room lookups share findRoom with roomService and model lookups go through
// ModelService, so ownership and not-found reporting stay identical to
// direct room and model access.
type roomModelService struct {
	roomModelRepository store.RoomModelRepository
	roomRepository      store.RoomRepository
	models              ModelService

	newID func() string

	logger *logger.Logger
}

func NewRoomModelService(roomModelRepository store.RoomModelRepository, roomRepository store.RoomRepository, modelService ModelService, logger *logger.Logger) RoomModelService {
	return &roomModelService{
		roomModelRepository: roomModelRepository,
		roomRepository:      roomRepository,
		models:              modelService,
		newID:               utils.NewUUIDGenerator().Generate,
		logger:              logger,
	}
}

// ListForRoom does no ownership check; callers authorize room access first.
func (s *roomModelService) ListForRoom(ctx context.Context, roomID string) ([]models.RoomModel, error) {
	list, err := s.roomModelRepository.ListRoomModelsByRoom(ctx, roomID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomModelService.ListForRoom").Str("room_id", roomID).Msg("error listing room models")
		return nil, unexpectedError(msgInternalError, err)
	}

	return withPlacements(list), nil
}

// ListForRooms groups the placements of roomIDs by room. Every requested room
// has an entry, empty when it holds no placements.
func (s *roomModelService) ListForRooms(ctx context.Context, roomIDs []string) (map[string][]models.RoomModel, error) {
	grouped, err := s.roomModelRepository.ListRoomModelsByRooms(ctx, roomIDs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomModelService.ListForRooms").Int("rooms", len(roomIDs)).Msg("error listing room models")
		return nil, unexpectedError(msgInternalError, err)
	}

	result := make(map[string][]models.RoomModel, len(roomIDs))
	for _, id := range roomIDs {
		result[id] = withPlacements(grouped[id])
	}

	return result, nil
}

func (s *roomModelService) Get(ctx context.Context, actor models.Actor, id string) (models.RoomModel, error) {
	roomModel, err := s.roomModelRepository.GetRoomModel(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.RoomModel{}, notFoundError(msgRoomModelNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomModelService.Get").Str("room_model_id", id).Msg("error getting room model")
		return models.RoomModel{}, unexpectedError(msgInternalError, err)
	}

	if !actor.OwnerOrAdmin(roomModel.OwnerID) {
		return models.RoomModel{}, forbiddenError(msgRoomModelForbidden)
	}

	return roomModel, nil
}

// Create places modelID in roomID, seeding size, rotations and axis from the
// model. When both lookups fail the room error is reported. The result
// carries the room name.
func (s *roomModelService) Create(ctx context.Context, actor models.Actor, roomID, modelID string) (models.RoomModel, error) {
	log := logger.FromContext(ctx)

	room, roomErr := findRoom(ctx, s.roomRepository, actor, roomID)
	model, modelErr := s.models.Get(ctx, modelID)
	if roomErr != nil {
		return models.RoomModel{}, roomErr
	}
	if modelErr != nil {
		return models.RoomModel{}, modelErr
	}

	roomModel, err := s.roomModelRepository.CreateRoomModel(ctx, models.RoomModel{
		ID:        s.newID(),
		RoomID:    room.ID,
		ModelID:   model.ID,
		OwnerID:   room.OwnerID,
		Size:      model.Size,
		Rotations: model.Rotations.Clone(),
		Axis:      model.Axis.Clone(),
		Model:     model,
	})
	if errors.Is(err, store.ErrReferenceNotFound) {
		return models.RoomModel{}, notFoundError(msgRoomNotFound)
	}
	if err != nil {
		log.Err(err).Str("func", "*roomModelService.Create").Str("room_id", roomID).Str("model_id", modelID).Msg("error creating room model")
		return models.RoomModel{}, unexpectedError(msgAddModelToRoomFailed, err)
	}
	roomModel.RoomName = room.Name

	return roomModel, nil
}

// Update changes only size, axis and rotations of the placement.
func (s *roomModelService) Update(ctx context.Context, actor models.Actor, id string, update models.RoomModelUpdate) (models.RoomModel, error) {
	roomModel, err := s.Get(ctx, actor, id)
	if err != nil {
		return models.RoomModel{}, err
	}

	update.Apply(&roomModel)
	err = s.roomModelRepository.UpdateRoomModel(ctx, roomModel)
	if errors.Is(err, store.ErrNotFound) {
		return models.RoomModel{}, notFoundError(msgRoomModelNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roomModelService.Update").Str("room_model_id", id).Msg("error updating room model")
		return models.RoomModel{}, unexpectedError(msgInternalError, err)
	}

	return roomModel, nil
}

func (s *roomModelService) Delete(ctx context.Context, actor models.Actor, id string) error {
	log := logger.FromContext(ctx)

	roomModel, err := s.roomModelRepository.GetRoomModel(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(msgRoomModelMissing)
	}
	if err != nil {
		log.Err(err).Str("func", "*roomModelService.Delete").Str("room_model_id", id).Msg("error getting room model")
		return unexpectedError(msgRemoveRoomModelFail, err)
	}

	if !actor.OwnerOrAdmin(roomModel.OwnerID) {
		return forbiddenError(msgRoomModelNoDelete)
	}

	err = s.roomModelRepository.DeleteRoomModel(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(msgRoomModelMissing)
	}
	if err != nil {
		log.Err(err).Str("func", "*roomModelService.Delete").Str("room_model_id", id).Msg("error deleting room model")
		return unexpectedError(msgRemoveRoomModelFail, err)
	}

	return nil
}

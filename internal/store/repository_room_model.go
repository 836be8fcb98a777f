package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/models"
)

const roomModelsTable = "room_models"

// roomModelRepository is the SQL implementation of [RoomModelRepository].
// Reads join the source model and the parent room so that callers get the
// nested model and the room owner in a single round trip.
type roomModelRepository struct {
	*DB
	logger *logger.Logger
}

// NewRoomModelRepository constructs a [RoomModelRepository] backed by the
// provided database connection and logger.
func NewRoomModelRepository(db *DB, logger *logger.Logger) RoomModelRepository {
	logger.Debug().Msg("creating room model repository")
	return &roomModelRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateRoomModel inserts the placement. A missing room or model is reported
// as [ErrReferenceNotFound].
func (r *roomModelRepository) CreateRoomModel(ctx context.Context, roomModel models.RoomModel) (models.RoomModel, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(roomModelsTable).
		Columns("id", "room_id", "model_id", "size", "rotations", "axis").
		Values(roomModel.ID, roomModel.RoomID, roomModel.ModelID, roomModel.Size, roomModel.Rotations, roomModel.Axis).
		ToSql()
	if err != nil {
		return models.RoomModel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*roomModelRepository.CreateRoomModel").
			Str("room_id", roomModel.RoomID).
			Str("model_id", roomModel.ModelID).
			Msg("error inserting room model")
		return models.RoomModel{}, r.statementError(err)
	}

	return roomModel, nil
}

func (r *roomModelRepository) GetRoomModel(ctx context.Context, id string) (models.RoomModel, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(roomModelColumns...).
		From(roomModelJoins).
		Where(sq.Eq{"rm.id": id}).
		ToSql()
	if err != nil {
		return models.RoomModel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	roomModel, err := scanRoomModel(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RoomModel{}, ErrNotFound
		}
		log.Err(err).Str("func", "*roomModelRepository.GetRoomModel").Str("room_model_id", id).Msg("error scanning room model")
		return models.RoomModel{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return roomModel, nil
}

func (r *roomModelRepository) ListRoomModelsByRoom(ctx context.Context, roomID string) ([]models.RoomModel, error) {
	return r.query(ctx, "*roomModelRepository.ListRoomModelsByRoom", sq.Eq{"rm.room_id": roomID})
}

func (r *roomModelRepository) ListRoomModelsByRooms(ctx context.Context, roomIDs []string) (map[string][]models.RoomModel, error) {
	grouped := make(map[string][]models.RoomModel, len(roomIDs))
	if len(roomIDs) == 0 {
		return grouped, nil
	}

	roomModels, err := r.query(ctx, "*roomModelRepository.ListRoomModelsByRooms", sq.Eq{"rm.room_id": roomIDs})
	if err != nil {
		return nil, err
	}
	for _, rm := range roomModels {
		grouped[rm.RoomID] = append(grouped[rm.RoomID], rm)
	}

	return grouped, nil
}

// UpdateRoomModel persists size, rotations and axis of the placement.
func (r *roomModelRepository) UpdateRoomModel(ctx context.Context, roomModel models.RoomModel) error {
	log := logger.FromContext(ctx)

	err := r.execAffecting(ctx, r.DB, r.builder.
		Update(roomModelsTable).
		Set("size", roomModel.Size).
		Set("rotations", roomModel.Rotations).
		Set("axis", roomModel.Axis).
		Where(sq.Eq{"id": roomModel.ID}))
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Err(err).Str("func", "*roomModelRepository.UpdateRoomModel").Str("room_model_id", roomModel.ID).Msg("error updating room model")
	}

	return err
}

func (r *roomModelRepository) DeleteRoomModel(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	err := r.execAffecting(ctx, r.DB, r.builder.Delete(roomModelsTable).Where(sq.Eq{"id": id}))
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Err(err).Str("func", "*roomModelRepository.DeleteRoomModel").Str("room_model_id", id).Msg("error deleting room model")
	}

	return err
}

func (r *roomModelRepository) query(ctx context.Context, funcName string, where sq.Eq) ([]models.RoomModel, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(roomModelColumns...).
		From(roomModelJoins).
		Where(where).
		OrderBy("rm.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.RoomModel, 0)
	for rows.Next() {
		rm, err := scanRoomModel(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan room model")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, rm)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

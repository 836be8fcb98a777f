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

const roomsTable = "rooms"

// roomRepository is the SQL implementation of [RoomRepository].
type roomRepository struct {
	*DB
	logger *logger.Logger
}

// NewRoomRepository constructs a [RoomRepository] backed by the provided
// database connection and logger.
func NewRoomRepository(db *DB, logger *logger.Logger) RoomRepository {
	logger.Debug().Msg("creating room repository")
	return &roomRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateRoom inserts the room. A missing owner is reported as
// [ErrReferenceNotFound].
func (r *roomRepository) CreateRoom(ctx context.Context, room models.Room) (models.Room, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(roomsTable).
		Columns(roomColumns...).
		Values(room.ID, room.Name, room.Description, room.RoomFile, room.OwnerID, room.Sizes, room.CreatedAt).
		ToSql()
	if err != nil {
		return models.Room{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*roomRepository.CreateRoom").Str("owner_id", room.OwnerID).Msg("error inserting room")
		return models.Room{}, r.statementError(err)
	}

	return room, nil
}

func (r *roomRepository) GetRoom(ctx context.Context, id string) (models.Room, error) {
	return r.findOne(ctx, "*roomRepository.GetRoom", sq.Eq{"id": id})
}

func (r *roomRepository) GetRoomOwnedBy(ctx context.Context, id, ownerID string) (models.Room, error) {
	return r.findOne(ctx, "*roomRepository.GetRoomOwnedBy", sq.Eq{"id": id, "owner_id": ownerID})
}

func (r *roomRepository) ListRoomsByOwner(ctx context.Context, ownerID string) ([]models.Room, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(roomColumns...).
		From(roomsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*roomRepository.ListRoomsByOwner").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	rooms := make([]models.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			log.Err(err).Str("func", "*roomRepository.ListRoomsByOwner").Msg("failed to scan room")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rooms = append(rooms, room)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return rooms, nil
}

func (r *roomRepository) UpdateRoom(ctx context.Context, room models.Room) error {
	log := logger.FromContext(ctx)

	err := r.execAffecting(ctx, r.DB, r.builder.
		Update(roomsTable).
		Set("name", room.Name).
		Set("description", room.Description).
		Set("room_file", room.RoomFile).
		Set("sizes", room.Sizes).
		Where(sq.Eq{"id": room.ID}))
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Err(err).Str("func", "*roomRepository.UpdateRoom").Str("room_id", room.ID).Msg("error updating room")
	}

	return err
}

// DeleteRoom removes the placements of the room and the room itself in one
// transaction.
func (r *roomRepository) DeleteRoom(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.builder.Delete(roomModelsTable).Where(sq.Eq{"room_id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return r.statementError(err)
		}

		return r.execAffecting(ctx, tx, r.builder.Delete(roomsTable).Where(sq.Eq{"id": id}))
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Err(err).Str("func", "*roomRepository.DeleteRoom").Str("room_id", id).Msg("error deleting room")
	}

	return err
}

func (r *roomRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.Room, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(roomColumns...).
		From(roomsTable).
		Where(where).
		ToSql()
	if err != nil {
		return models.Room{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	room, err := scanRoom(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Room{}, ErrNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error scanning room")
		return models.Room{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return room, nil
}

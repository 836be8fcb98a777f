package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/models"
)

func newTestRoomRepo(t *testing.T) (RoomRepository, sqlmock.Sqlmock) {
	db, mock := newPostgresTestDB(t)
	return NewRoomRepository(db, logger.Nop()), mock
}

func roomRows() *sqlmock.Rows {
	return sqlmock.NewRows(roomColumns)
}

func TestCreateRoom_UnknownOwner(t *testing.T) {
	repo, mock := newTestRoomRepo(t)

	mock.ExpectExec("INSERT INTO rooms").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "rooms_owner_id_fkey"})

	_, err := repo.CreateRoom(context.Background(), models.Room{ID: "r1", OwnerID: "ghost"})
	require.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestGetRoomOwnedBy(t *testing.T) {
	repo, mock := newTestRoomRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM rooms WHERE id = $1 AND owner_id = $2")).
		WithArgs("r1", "u1").
		WillReturnRows(roomRows().AddRow("r1", "Den", "cozy", "http://files/den.glb", "u1", "[]", testCreatedAt))

	room, err := repo.GetRoomOwnedBy(context.Background(), "r1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "Den", room.Name)
	assert.Equal(t, "u1", room.OwnerID)
}

func TestGetRoom_NotFound(t *testing.T) {
	repo, mock := newTestRoomRepo(t)

	mock.ExpectQuery("FROM rooms").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRoom(context.Background(), "r1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListRoomsByOwner_NewestFirst(t *testing.T) {
	repo, mock := newTestRoomRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM rooms WHERE owner_id = $1 ORDER BY id DESC")).
		WithArgs("u1").
		WillReturnRows(roomRows().
			AddRow("r2", "Kitchen", "", "f2", "u1", "[]", testCreatedAt).
			AddRow("r1", "Den", "", "f1", "u1", "[]", testCreatedAt))

	rooms, err := repo.ListRoomsByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "r2", rooms[0].ID)
}

func TestUpdateRoom(t *testing.T) {
	repo, mock := newTestRoomRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET name = $1, description = $2, room_file = $3, sizes = $4 WHERE id = $5")).
		WithArgs("Den", "", "f1", "[10]", "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRoom(context.Background(), models.Room{ID: "r1", Name: "Den", RoomFile: "f1", Sizes: models.JSONList{10}})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoom_CascadesPlacements(t *testing.T) {
	repo, mock := newTestRoomRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM room_models WHERE room_id = $1")).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms WHERE id = $1")).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteRoom(context.Background(), "r1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoom_BeginFails(t *testing.T) {
	repo, mock := newTestRoomRepo(t)

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	err := repo.DeleteRoom(context.Background(), "r1")
	require.ErrorIs(t, err, ErrBeginningTransaction)
}

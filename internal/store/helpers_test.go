package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/migrations"
)

func newTestDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewDB(conn, dialect, logger.Nop()), mock
}

func newPostgresTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	return newTestDB(t, migrations.DialectPostgres)
}

var testCreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func modelRow(rows *sqlmock.Rows, id, name string) *sqlmock.Rows {
	return rows.AddRow(
		id, name, "desc", "http://files/"+id+".glb", "[[0,1,0]]", "[90]", 2,
		nil, `["wood"]`, true, "[]", "[]", testCreatedAt,
	)
}

func modelRows() *sqlmock.Rows {
	return sqlmock.NewRows(modelColumns)
}

func roomModelRows() *sqlmock.Rows {
	return sqlmock.NewRows(roomModelColumns)
}

func roomModelRow(rows *sqlmock.Rows, id, roomID, modelID, ownerID string) *sqlmock.Rows {
	return rows.AddRow(
		id, roomID, modelID, ownerID, 3, "[45]", "[[1,0,0]]",
		modelID, "Chair", "desc", "http://files/chair.glb", "[[0,1,0]]", "[90]", 2,
		"http://files/chair.png", `[]`, true, "[]", "[]", testCreatedAt,
	)
}

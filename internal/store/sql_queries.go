package store

import (
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-room-design/models"
)

var (
	accountColumns = []string{"id", "email", "username", "password", "is_admin", "created_at"}

	modelColumns = []string{
		"id", "name", "description", "model_file", "axis", "rotations", "size",
		"img", "tags", "listed", "sizes", "initial_rotations", "created_at",
	}

	roomColumns = []string{"id", "name", "description", "room_file", "owner_id", "sizes", "created_at"}

	// roomModelColumns select a placement joined with its model (m) and
	// parent room (r).
	roomModelColumns = append([]string{
		"rm.id", "rm.room_id", "rm.model_id", "r.owner_id", "rm.size", "rm.rotations", "rm.axis",
	}, prefixed("m.", modelColumns)...)
)

const roomModelJoins = "room_models rm JOIN models m ON m.id = rm.model_id JOIN rooms r ON r.id = rm.room_id"

func prefixed(prefix string, columns []string) []string {
	out := make([]string, len(columns))
	for i, column := range columns {
		out[i] = prefix + column
	}
	return out
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Email, &a.Username, &a.Password, &a.IsAdmin, &a.CreatedAt)
	return a, err
}

func modelDest(m *models.Model, img *sql.NullString) []any {
	return []any{
		&m.ID, &m.Name, &m.Description, &m.ModelFile, &m.Axis, &m.Rotations, &m.Size,
		img, &m.Tags, &m.Listed, &m.Sizes, &m.InitialRotations, &m.CreatedAt,
	}
}

func scanModel(row rowScanner) (models.Model, error) {
	var m models.Model
	var img sql.NullString
	if err := row.Scan(modelDest(&m, &img)...); err != nil {
		return models.Model{}, err
	}
	m.Img = nullableString(img)
	return m, nil
}

func scanRoom(row rowScanner) (models.Room, error) {
	var r models.Room
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.RoomFile, &r.OwnerID, &r.Sizes, &r.CreatedAt)
	return r, err
}

func scanRoomModel(row rowScanner) (models.RoomModel, error) {
	var rm models.RoomModel
	var img sql.NullString
	dest := append([]any{
		&rm.ID, &rm.RoomID, &rm.ModelID, &rm.OwnerID, &rm.Size, &rm.Rotations, &rm.Axis,
	}, modelDest(&rm.Model, &img)...)
	if err := row.Scan(dest...); err != nil {
		return models.RoomModel{}, err
	}
	rm.Model.Img = nullableString(img)
	return rm, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching token anywhere, with LIKE
// wildcards in token escaped by a backslash.
func containsPattern(token string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(token)) + "%"
}

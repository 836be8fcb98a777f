package models

import "time"

// Room is a named collection of model placements owned by exactly one account.
type Room struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// RoomFile is the retrievable URL of the uploaded room asset.
	RoomFile string `json:"room_file"`

	OwnerID string `json:"owner_id"`

	// Sizes holds per-room size overrides.
	Sizes JSONList `json:"sizes"`

	CreatedAt time.Time `json:"created_at"`

	// RoomModels is filled by the transport layer when a room is rendered
	// together with its placements.
	RoomModels []RoomModel `json:"room_models"`
}

// TableName returns the name of the database table
// associated with the Room model.
func (r Room) TableName() string {
	return "rooms"
}

// NewRoom carries the attributes accepted when a room is created.
type NewRoom struct {
	Name        string `validate:"required,max=100"`
	OwnerID     string `validate:"required"`
	Description string `validate:"required"`
	RoomFile    string `validate:"required"`
}

// RoomUpdate is a partial update of a room. The owner is not patchable.
type RoomUpdate struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string   `json:"description,omitempty"`
	RoomFile    *string   `json:"room_file,omitempty" validate:"omitempty,min=1"`
	Sizes       *JSONList `json:"sizes,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u RoomUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.RoomFile == nil && u.Sizes == nil
}

// Apply copies every non-nil field of u onto r.
func (u RoomUpdate) Apply(r *Room) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.RoomFile != nil {
		r.RoomFile = *u.RoomFile
	}
	if u.Sizes != nil {
		r.Sizes = *u.Sizes
	}
}

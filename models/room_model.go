package models

// RoomModel is one placement of a Model inside a Room. Size, rotations and
// axis are seeded from the model at creation and are independent afterwards.
type RoomModel struct {
	ID      string `json:"id"`
	RoomID  string `json:"-"`
	ModelID string `json:"-"`

	// OwnerID is the owner of the parent room. It is read together with the
	// placement for access checks and is never persisted on the placement.
	OwnerID string `json:"-"`
	// RoomName is filled on creation for confirmation messages.
	RoomName string `json:"-"`

	Size      int      `json:"size"`
	Rotations JSONList `json:"rotations"`
	Axis      JSONList `json:"axis"`

	// Model is the source catalog entry.
	Model Model `json:"model"`
}

// TableName returns the name of the database table
// associated with the RoomModel model.
func (rm RoomModel) TableName() string {
	return "room_models"
}

// RoomModelUpdate is a partial update of a placement. Only size, axis and
// rotations can change; a placement is never re-pointed to another room or
// model.
type RoomModelUpdate struct {
	Size      *int      `json:"size,omitempty"`
	Axis      *JSONList `json:"axis,omitempty"`
	Rotations *JSONList `json:"rotations,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u RoomModelUpdate) IsEmpty() bool {
	return u.Size == nil && u.Axis == nil && u.Rotations == nil
}

// Apply copies every non-nil field of u onto rm.
func (u RoomModelUpdate) Apply(rm *RoomModel) {
	if u.Size != nil {
		rm.Size = *u.Size
	}
	if u.Axis != nil {
		rm.Axis = *u.Axis
	}
	if u.Rotations != nil {
		rm.Rotations = *u.Rotations
	}
}

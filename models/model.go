package models

import "time"

// Model is a catalog entry describing a reusable 3D asset and its default
// geometry.
type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// ModelFile is the retrievable URL of the uploaded 3D asset.
	ModelFile string `json:"model_file"`

	Axis      JSONList `json:"axis"`
	Rotations JSONList `json:"rotations"`
	Size      int      `json:"size"`

	// Img is the optional URL of a preview image.
	Img *string `json:"img"`

	Tags StringList `json:"tags"`

	// Listed controls catalog display. Unlisted models still exist and may
	// be placed in rooms.
	Listed bool `json:"listed"`

	Sizes            JSONList `json:"sizes"`
	InitialRotations JSONList `json:"initial_rotations"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Model model.
func (m Model) TableName() string {
	return "models"
}

// NewModel carries the attributes accepted when a model is created.
// Name, ModelFile and Description are mandatory.
type NewModel struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"required"`
	ModelFile   string `validate:"required"`

	Axis      JSONList
	Rotations JSONList
	Size      int
	Img       *string
	Tags      StringList

	// Listed defaults to true when nil.
	Listed *bool
}

// ModelUpdate is a partial update of a model. Only non-nil fields are
// applied; identity and creation time cannot be patched. Img also accepts an
// explicit null, which clears the preview image.
type ModelUpdate struct {
	Name             *string        `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description      *string        `json:"description,omitempty"`
	ModelFile        *string        `json:"model_file,omitempty" validate:"omitempty,min=1"`
	Axis             *JSONList      `json:"axis,omitempty"`
	Rotations        *JSONList      `json:"rotations,omitempty"`
	Size             *int           `json:"size,omitempty"`
	Img              OptionalString `json:"img"`
	Tags             *StringList    `json:"tags,omitempty"`
	Listed           *bool          `json:"listed,omitempty"`
	Sizes            *JSONList      `json:"sizes,omitempty"`
	InitialRotations *JSONList      `json:"initial_rotations,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u ModelUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.ModelFile == nil &&
		u.Axis == nil && u.Rotations == nil && u.Size == nil && !u.Img.Set &&
		u.Tags == nil && u.Listed == nil && u.Sizes == nil && u.InitialRotations == nil
}

// Apply copies every non-nil field of u onto m, and Img when it is set.
func (u ModelUpdate) Apply(m *Model) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	if u.ModelFile != nil {
		m.ModelFile = *u.ModelFile
	}
	if u.Axis != nil {
		m.Axis = *u.Axis
	}
	if u.Rotations != nil {
		m.Rotations = *u.Rotations
	}
	if u.Size != nil {
		m.Size = *u.Size
	}
	if u.Img.Set {
		m.Img = u.Img.Value
	}
	if u.Tags != nil {
		m.Tags = *u.Tags
	}
	if u.Listed != nil {
		m.Listed = *u.Listed
	}
	if u.Sizes != nil {
		m.Sizes = *u.Sizes
	}
	if u.InitialRotations != nil {
		m.InitialRotations = *u.InitialRotations
	}
}

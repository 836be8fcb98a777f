package models

// ErrorResponse is the envelope written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by mutations that have no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by login and signup.
type AuthResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Token   string `json:"token,omitempty"`
}

// RoomResponse wraps a single room.
type RoomResponse struct {
	Room Room `json:"room"`
}

// RoomsResponse wraps the rooms of one owner.
type RoomsResponse struct {
	Rooms []Room `json:"rooms"`
}

// RoomModelResponse wraps a single placement.
type RoomModelResponse struct {
	RoomModel RoomModel `json:"room_model"`
}

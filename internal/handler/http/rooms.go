package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/store"
	"github.com/MKhiriev/go-room-design/internal/utils"
	"github.com/MKhiriev/go-room-design/models"
)

func (h *Handler) listRooms(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	if actor.ID == "" {
		writeErrorMessage(w, r, http.StatusBadRequest, msgMissingUserID)
		return
	}

	rooms, err := h.services.RoomService.List(r.Context(), actor.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}

	writeData(w, r, models.RoomsResponse{Rooms: rooms})
}

func (h *Handler) getRoom(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndID(w, r)
	if !ok {
		return
	}

	room, err := h.services.RoomService.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.RoomResponse{Room: room})
}

func (h *Handler) addRoom(w http.ResponseWriter, r *http.Request) {
	if !isMultipart(r) {
		writeErrorMessage(w, r, http.StatusBadRequest, msgExpectedMultipart)
		return
	}

	newRoom := models.NewRoom{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		OwnerID:     actorFromRequest(r).ID,
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}
	if newRoom.OwnerID == "" || newRoom.Name == "" || newRoom.Description == "" || !hasFile(r, "room_file") {
		writeErrorMessage(w, r, http.StatusBadRequest, msgMissingFields)
		return
	}

	roomFile, err := h.uploadFormFile(r, "room_file", store.FolderRooms)
	if err != nil {
		writeError(w, r, err)
		return
	}
	newRoom.RoomFile = roomFile

	room, err := h.services.RoomService.Create(r.Context(), newRoom)
	if err != nil {
		h.discardUploads(r, roomFile)
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("room_id", room.ID).Msg("room added")
	writeMessage(w, r, http.StatusCreated, "Room '"+room.Name+"' has been added successfully")
}

func (h *Handler) updateRoom(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndID(w, r)
	if !ok {
		return
	}

	var update models.RoomUpdate
	if err := utils.DecodeFormJSON(r, "room_data", &update); err != nil && !errors.Is(err, utils.ErrEmptyFormField) {
		logger.FromRequest(r).Debug().Err(err).Send()
		writeErrorMessage(w, r, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	room, err := h.services.RoomService.Update(r.Context(), actor, id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, http.StatusOK, "Room '"+room.Name+"' has been updated successfully")
}

func (h *Handler) deleteRoom(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndID(w, r)
	if !ok {
		return
	}

	room, err := h.services.RoomService.Delete(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, http.StatusOK, "Room '"+room.Name+"' has been deleted successfully")
}

// requireActorAndID checks that the caller is identified and the "id"
// parameter is present.
func requireActorAndID(w http.ResponseWriter, r *http.Request) (models.Actor, string, bool) {
	actor := actorFromRequest(r)
	id := strings.TrimSpace(r.FormValue("id"))
	if actor.ID == "" || id == "" {
		writeErrorMessage(w, r, http.StatusBadRequest, msgMissingFields)
		return models.Actor{}, "", false
	}
	return actor, id, true
}

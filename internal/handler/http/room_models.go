package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/utils"
	"github.com/MKhiriev/go-room-design/models"
)

func (h *Handler) addModelToRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := actorFromRequest(r)
	roomID := strings.TrimSpace(r.PostFormValue("roomid"))
	modelID := strings.TrimSpace(r.PostFormValue("modelid"))
	if actor.ID == "" || roomID == "" || modelID == "" {
		writeErrorMessage(w, r, http.StatusBadRequest, msgMissingFields)
		return
	}

	roomModel, err := h.services.RoomModelService.Create(ctx, actor, roomID, modelID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("room_model_id", roomModel.ID).Msg("model added to room")
	writeMessage(w, r, http.StatusCreated, "Model '"+roomModel.Model.Name+"' has been added to room '"+roomModel.RoomName+"'")
}

func (h *Handler) getRoomModel(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndID(w, r)
	if !ok {
		return
	}

	roomModel, err := h.services.RoomModelService.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.RoomModelResponse{RoomModel: roomModel})
}

func (h *Handler) updateRoomModel(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndID(w, r)
	if !ok {
		return
	}

	var update models.RoomModelUpdate
	if err := utils.DecodeFormJSON(r, "room_model_data", &update); err != nil && !errors.Is(err, utils.ErrEmptyFormField) {
		logger.FromRequest(r).Debug().Err(err).Send()
		writeErrorMessage(w, r, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	roomModel, err := h.services.RoomModelService.Update(r.Context(), actor, id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, http.StatusOK, "Room model '"+roomModel.ID+"' has been updated successfully")
}

func (h *Handler) deleteRoomModel(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndID(w, r)
	if !ok {
		return
	}

	if err := h.services.RoomModelService.Delete(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, http.StatusOK, "Room model removed successfully.")
}

package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/store"
	"github.com/MKhiriev/go-room-design/internal/utils"
	"github.com/MKhiriev/go-room-design/models"
)

func (h *Handler) listModels(w http.ResponseWriter, r *http.Request) {
	listedOnly := false
	if raw := r.URL.Query().Get("listed_only"); raw != "" {
		var err error
		if listedOnly, err = strconv.ParseBool(raw); err != nil {
			writeErrorMessage(w, r, http.StatusBadRequest, msgInvalidListedParam)
			return
		}
	}

	list, err := h.services.ModelService.List(r.Context(), listedOnly)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, list)
}

func (h *Handler) getModel(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeErrorMessage(w, r, http.StatusBadRequest, msgModelIDRequired)
		return
	}

	model, err := h.services.ModelService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, model)
}

func (h *Handler) searchModels(w http.ResponseWriter, r *http.Request) {
	found, err := h.services.ModelService.SearchByToken(r.Context(), r.URL.Query().Get("search_token"), nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, found)
}

func (h *Handler) addModel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !isMultipart(r) {
		writeErrorMessage(w, r, http.StatusBadRequest, msgExpectedMultipart)
		return
	}

	newModel := models.NewModel{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Tags:        splitTags(r.PostFormValue("tags")),
	}
	if newModel.Name == "" || newModel.Description == "" || !hasFile(r, "model_file") {
		writeErrorMessage(w, r, http.StatusBadRequest, msgModelFieldsRequired)
		return
	}

	if raw := r.PostFormValue("listed"); raw != "" {
		listed := strings.EqualFold(strings.TrimSpace(raw), "true")
		newModel.Listed = &listed
	}
	if raw := strings.TrimSpace(r.PostFormValue("size")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 0 {
			writeErrorMessage(w, r, http.StatusBadRequest, msgInvalidSize)
			return
		}
		newModel.Size = size
	}
	if err := decodeOptionalList(r, "axis", &newModel.Axis); err != nil {
		writeErrorMessage(w, r, http.StatusBadRequest, msgInvalidListJSON)
		return
	}
	if err := decodeOptionalList(r, "rotations", &newModel.Rotations); err != nil {
		writeErrorMessage(w, r, http.StatusBadRequest, msgInvalidListJSON)
		return
	}

	modelFile, err := h.uploadFormFile(r, "model_file", store.FolderModels)
	if err != nil {
		writeError(w, r, err)
		return
	}
	newModel.ModelFile = modelFile

	if hasFile(r, "img") {
		img, err := h.uploadFormFile(r, "img", store.FolderModelImages)
		if err != nil {
			h.discardUploads(r, modelFile)
			writeError(w, r, err)
			return
		}
		newModel.Img = &img
	}

	model, err := h.services.ModelService.Create(ctx, newModel)
	if err != nil {
		uploaded := []string{modelFile}
		if newModel.Img != nil {
			uploaded = append(uploaded, *newModel.Img)
		}
		h.discardUploads(r, uploaded...)
		writeError(w, r, err)
		return
	}

	log.Info().Str("model_id", model.ID).Msg("model added")
	writeMessage(w, r, http.StatusCreated, "Model '"+model.Name+"' added successfully with ID "+model.ID)
}

func (h *Handler) updateModel(w http.ResponseWriter, r *http.Request) {
	id, ok := modelIDFromForm(w, r)
	if !ok {
		return
	}

	var update models.ModelUpdate
	if err := utils.DecodeFormJSON(r, "model_data", &update); err != nil && !errors.Is(err, utils.ErrEmptyFormField) {
		logger.FromRequest(r).Debug().Err(err).Send()
		writeErrorMessage(w, r, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	model, err := h.services.ModelService.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, http.StatusOK, "Model '"+model.Name+"' updated successfully")
}

func (h *Handler) deleteModel(w http.ResponseWriter, r *http.Request) {
	id, ok := modelIDFromForm(w, r)
	if !ok {
		return
	}

	model, err := h.services.ModelService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, http.StatusOK, "Model '"+model.Name+"' deleted successfully")
}

func (h *Handler) unlistModel(w http.ResponseWriter, r *http.Request) {
	id, ok := modelIDFromForm(w, r)
	if !ok {
		return
	}

	model, err := h.services.ModelService.Unlist(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, http.StatusOK, "Model '"+model.Name+"' has been unlisted successfully")
}

// modelIDFromForm reads the "id" form value, which must be a UUID.
func modelIDFromForm(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := uuid.Parse(strings.TrimSpace(r.PostFormValue("id")))
	if err != nil {
		writeErrorMessage(w, r, http.StatusBadRequest, msgInvalidModelID)
		return "", false
	}
	return id.String(), true
}

func splitTags(raw string) models.StringList {
	tags := models.StringList{}
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func decodeOptionalList(r *http.Request, field string, dst *models.JSONList) error {
	err := utils.DecodeFormJSON(r, field, dst)
	if errors.Is(err, utils.ErrEmptyFormField) {
		return nil
	}
	return err
}

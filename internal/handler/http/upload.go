package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/models"
)

func hasFile(r *http.Request, field string) bool {
	if r.MultipartForm == nil {
		return false
	}
	return len(r.MultipartForm.File[field]) > 0
}

// uploadFormFile stores the first file of a multipart field and returns its
// public URL. The caller checks presence with hasFile.
func (h *Handler) uploadFormFile(r *http.Request, field, folder string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", err
	}
	defer file.Close()

	return h.services.FileService.Upload(r.Context(), models.Upload{
		Folder:      folder,
		Filename:    header.Filename,
		Content:     file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	})
}

// discardUploads removes files stored for a request that failed afterwards.
// Cleanup runs even when the client has gone away.
func (h *Handler) discardUploads(r *http.Request, urls ...string) {
	ctx := context.WithoutCancel(r.Context())
	for _, url := range urls {
		if err := h.services.FileService.Delete(ctx, url); err != nil {
			logger.FromRequest(r).Warn().Err(err).Str("url", url).Msg("orphaned upload left in storage")
		}
	}
}

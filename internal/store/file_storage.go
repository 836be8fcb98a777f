package store

import (
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Upload folders.
const (
	FolderModels      = "models/"
	FolderModelImages = "model_images/"
	FolderRooms       = "rooms/"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeFilename keeps only the base name of filename with every run of
// unsafe characters replaced by "_".
func sanitizeFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	base = unsafeFileChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "file"
	}
	return base
}

// objectKey returns "<folder><uuid>_<basename>".
func objectKey(folder, filename string, newID func() string) string {
	folder = strings.Trim(folder, "/")
	if folder != "" {
		folder += "/"
	}
	return folder + newID() + "_" + sanitizeFilename(filename)
}

func newObjectID() string {
	return uuid.NewString()
}

package models

import "io"

// Upload is a single uploaded file on its way to file storage.
type Upload struct {
	// Folder is the logical destination, e.g. "models/".
	Folder      string
	Filename    string
	Content     io.Reader
	Size        int64
	ContentType string
}

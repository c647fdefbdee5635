package models

import "io"

// Upload is a file attached to a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

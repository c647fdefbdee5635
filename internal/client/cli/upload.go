package cli

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/folio/internal/client/models"
)

// openUpload opens the image at path for a multipart request. The returned
// closer must be called once the request is done. An empty path means no
// image.
func openUpload(path string) (*models.Upload, io.Closer, error) {
	if path == "" {
		return nil, io.NopCloser(nil), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open image: %w", err)
	}
	return &models.Upload{
		Filename:    filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Content:     f,
	}, f, nil
}

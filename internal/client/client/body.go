package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/dmitrijs2005/folio/internal/client/models"
)

// requestBody is the encoded payload of one call. Call sites choose the
// encoding explicitly: jsonBody for plain data, multipartBody when a file is
// attached.
type requestBody interface {
	encode() (io.Reader, string, error)
}

type jsonBody struct {
	v any
}

func (b jsonBody) encode() (io.Reader, string, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", fmt.Errorf("encode request: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

type formField struct {
	name  string
	value string
}

type multipartBody struct {
	fields    []formField
	fileField string
	file      *models.Upload
}

func (b multipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range b.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("encode form field %s: %w", f.name, err)
		}
	}

	if b.file != nil {
		if b.file.Content == nil {
			return nil, "", fmt.Errorf("upload %q has no content", b.file.Filename)
		}
		part, err := w.CreatePart(filePartHeader(b.fileField, b.file))
		if err != nil {
			return nil, "", fmt.Errorf("encode file part: %w", err)
		}
		if _, err := io.Copy(part, b.file.Content); err != nil {
			return nil, "", fmt.Errorf("read upload %q: %w", b.file.Filename, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("encode multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func filePartHeader(field string, u *models.Upload) textproto.MIMEHeader {
	contentType := u.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(u.Filename)))
	h.Set("Content-Type", contentType)
	return h
}

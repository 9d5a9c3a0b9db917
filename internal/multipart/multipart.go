// Package multipart builds the single-file multipart/form-data body used for
// customer CSV uploads.
package multipart

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/metrifox/metrifox-go/internal/constants"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

// maxBoundaryAttempts bounds regeneration when a boundary collides with the file.
const maxBoundaryAttempts = 8

// Body is an encoded multipart request body.
type Body struct {
	Bytes       []byte
	ContentType string
	Boundary    string
}

// Build reads the file at path and encodes it as the "csv" form field. A
// missing file is an ArgumentError.
func Build(path string) (*Body, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, &metrifox.ArgumentError{
			Message: "File not found: " + path,
			Err:     metrifox.ErrFileNotFound,
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &metrifox.ArgumentError{
			Message: fmt.Sprintf("reading upload file %s: %v", path, err),
			Err:     err,
		}
	}

	boundary, err := NewBoundary(content)
	if err != nil {
		return nil, err
	}

	return Encode(filepath.Base(path), content, boundary)
}

// Encode writes content as a single part with the given boundary.
func Encode(filename string, content []byte, boundary string) (*Body, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	err := writer.SetBoundary(boundary)
	if err != nil {
		return nil, fmt.Errorf("setting multipart boundary: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		constants.CSVFieldName, escapeQuotes(filename)))
	header.Set("Content-Type", ContentTypeFor(filename))

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("creating multipart part: %w", err)
	}

	_, err = part.Write(content)
	if err != nil {
		return nil, fmt.Errorf("writing multipart part: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	return &Body{
		Bytes:       buf.Bytes(),
		ContentType: writer.FormDataContentType(),
		Boundary:    boundary,
	}, nil
}

// NewBoundary returns a random boundary that does not occur in content.
func NewBoundary(content []byte) (string, error) {
	for attempt := 0; attempt < maxBoundaryAttempts; attempt++ {
		buf := make([]byte, constants.BoundaryEntropyBytes)

		_, err := rand.Read(buf)
		if err != nil {
			return "", fmt.Errorf("generating multipart boundary: %w", err)
		}

		boundary := constants.BoundaryPrefix + hex.EncodeToString(buf)
		if !bytes.Contains(content, []byte(boundary)) {
			return boundary, nil
		}
	}

	return "", errors.New("generating multipart boundary: every candidate occurs in the file")
}

// ContentTypeFor maps a file extension to a media type without parameters,
// falling back to text/csv.
func ContentTypeFor(filename string) string {
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		return constants.DefaultCSVContentType
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return constants.DefaultCSVContentType
	}

	return mediaType
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

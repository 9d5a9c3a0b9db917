package multipart_test

import (
	"bytes"
	"io"
	"mime"
	stdmultipart "mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/metrifox/metrifox-go/internal/multipart"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "customers.csv")
	content := []byte("customer_key,primary_email\nc1,a@example.com\n")

	require.NoError(t, os.WriteFile(path, content, 0o600))

	body, err := multipart.Build(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(body.Boundary, "----WebKitFormBoundary"))
	assert.Len(t, body.Boundary, len("----WebKitFormBoundary")+32)
	assert.Equal(t, "multipart/form-data; boundary="+body.Boundary, body.ContentType)
	assert.True(t, bytes.HasSuffix(body.Bytes, []byte("--"+body.Boundary+"--\r\n")))

	mediaType, params, err := mime.ParseMediaType(body.ContentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := stdmultipart.NewReader(bytes.NewReader(body.Bytes), params["boundary"])

	part, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "csv", part.FormName())
	assert.Equal(t, "customers.csv", part.FileName())
	assert.Equal(t, "text/csv", part.Header.Get("Content-Type"))

	got, err := io.ReadAll(part)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = reader.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestBuild_MissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.csv")

	_, err := multipart.Build(missing)
	require.Error(t, err)
	assert.True(t, metrifox.IsArgumentError(err))
	assert.ErrorIs(t, err, metrifox.ErrFileNotFound)
	assert.Contains(t, err.Error(), missing)

	_, err = multipart.Build(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, metrifox.ErrFileNotFound)
}

func TestNewBoundary(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)

	for n := 0; n < 50; n++ {
		boundary, err := multipart.NewBoundary(nil)
		require.NoError(t, err)
		assert.False(t, seen[boundary], "boundary reused")

		seen[boundary] = true
	}
}

func TestEncode_QuotesFilename(t *testing.T) {
	t.Parallel()

	body, err := multipart.Encode(`we"ird.csv`, []byte("a"), "----WebKitFormBoundaryfixed")
	require.NoError(t, err)
	assert.Contains(t, string(body.Bytes), `filename="we\"ird.csv"`)
	assert.Contains(t, string(body.Bytes), "--"+"----WebKitFormBoundaryfixed\r\n")
}

func TestContentTypeFor(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"customers.csv":  "text/csv",
		"export.json":    "application/json",
		"page.html":      "text/html",
		"noextension":    "text/csv",
		"data.zzunknown": "text/csv",
	}

	for filename, expected := range tests {
		assert.Equal(t, expected, multipart.ContentTypeFor(filename), filename)
	}
}

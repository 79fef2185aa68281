package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader by parsing a one-part form.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="picture"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	t.Cleanup(func() { req.MultipartForm.RemoveAll() })

	return req.MultipartForm.File["picture"][0]
}

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads-furniture/", 1024)
	require.NoError(t, err)

	url, err := store.Save(fileHeader(t, "Chair.JPG", "image/jpeg", []byte("jpeg-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads-furniture/furniture-"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	onDisk := filepath.Join(dir, filepath.Base(url))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// second removal is a no-op
	require.NoError(t, store.Remove(url))
}

func TestSaveRejects(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads-furniture", 4)
	require.NoError(t, err)

	_, err = store.Save(fileHeader(t, "a.png", "image/png", []byte("too large")))
	assert.Equal(t, ErrTooLarge, err)

	_, err = store.Save(fileHeader(t, "a.txt", "text/plain", []byte("x")))
	assert.Equal(t, ErrNotImage, err)
}

func TestRemoveIgnoresForeignURLs(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	store, err := NewLocalStore(filepath.Join(dir, "uploads"), "/uploads-furniture", 0)
	require.NoError(t, err)

	require.NoError(t, store.Remove("/elsewhere/keep.txt"))
	require.NoError(t, store.Remove("/uploads-furniture/../keep.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}

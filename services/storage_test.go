package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedFile(t *testing.T) {
	ss, err := NewStorageService(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"a.wav", "b.mp3", "c.flac", "d.m4a", "e.ogg", "f.webm", "G.WAV", "voice.Mp3"} {
		assert.True(t, ss.AllowedFile(name), "name=%s", name)
	}
	for _, name := range []string{"a.txt", "b.exe", "c.wav.txt", "noext", "", ".wav.pdf"} {
		assert.False(t, ss.AllowedFile(name), "name=%s", name)
	}
}

func newFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File[field][0]
}

func TestSaveUpload(t *testing.T) {
	dir := t.TempDir()
	ss, err := NewStorageService(dir)
	require.NoError(t, err)

	fh := newFileHeader(t, "voice_file", "Recording.WAV", []byte("RIFF fake wav"))
	filename, err := ss.SaveUpload(fh, "user-1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "user-1_"))
	assert.True(t, strings.HasSuffix(filename, ".wav"))

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF fake wav"), data)
}

func TestPathBlocksTraversal(t *testing.T) {
	dir := t.TempDir()
	ss, err := NewStorageService(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "passwd"), ss.Path("../../etc/passwd"))
	assert.Equal(t, filepath.Join(dir, "a.wav"), ss.Path("a.wav"))
}

func TestNewStorageServiceCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "voices")
	_, err := NewStorageService(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

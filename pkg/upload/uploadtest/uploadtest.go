// Package uploadtest builds multipart requests and file headers for handler tests.
package uploadtest

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// File is one file part of a multipart body.
type File struct {
	Field   string
	Name    string
	Content []byte
}

// Body encodes fields and files as multipart/form-data and returns the body
// with its content type.
func Body(t testing.TB, fields map[string]string, files ...File) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

// Request returns a POST request to target carrying a multipart body.
func Request(t testing.TB, target string, fields map[string]string, files ...File) *http.Request {
	t.Helper()
	body, ct := Body(t, fields, files...)
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", ct)
	return req
}

// FileHeader returns a parsed header for a single uploaded file.
func FileHeader(t testing.TB, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	req := Request(t, "/", nil, File{Field: "file", Name: name, Content: content})
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

// Package upload stores user-submitted images on local disk or in a MinIO bucket.
package upload

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Target directories (local) or key prefixes (MinIO).
const (
	CropImages    = "uploads"
	FeedbackFiles = "feedback_uploads"
)

// ErrNotAnImage is returned when the file extension is not png, jpg or jpeg.
var ErrNotAnImage = errors.New("file is not a png/jpg/jpeg image")

var allowed = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

// Storage saves an uploaded image under dir and returns a reference that can be
// stored on the owning row.
type Storage interface {
	Save(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error)
	// Remove deletes what Save returned. Removing a missing object is not an error.
	Remove(ctx context.Context, ref string) error
}

// AllowedImage reports whether filename has a png, jpg or jpeg extension.
func AllowedImage(filename string) bool {
	return allowed[strings.ToLower(filepath.Ext(filename))]
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeName reduces a client-supplied filename to a safe base name.
func SanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, "._")
	if name == "" {
		name = "file"
	}
	return name
}

var now = time.Now

// storedName prefixes the sanitised name with a second-resolution timestamp so
// repeated uploads of the same file do not overwrite each other.
func storedName(original string) string {
	return fmt.Sprintf("%s_%s", now().Format("20060102150405"), SanitizeName(original))
}

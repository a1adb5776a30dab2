package upload

import (
	"context"
	"mime/multipart"
	"net/url"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

type MinIO struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinIO connects to endpoint ("host:port") and creates bucket if missing.
func NewMinIO(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool, publicBase string) (*MinIO, error) {
	c, err := minio.New(endpoint, &minio.Options{Creds: credentials.NewStaticV4(accessKey, secretKey, ""), Secure: useSSL})
	if err != nil {
		return nil, err
	}
	exists, err := c.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := c.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		log.WithField("bucket", bucket).Info("[upload] created bucket")
	}
	return &MinIO{client: c, bucket: bucket, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

// Save uploads the file as dir/<timestamp>_<name>. The reference is a public
// URL when a public base is configured, otherwise the object key.
func (m *MinIO) Save(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if !AllowedImage(fh.Filename) {
		return "", ErrNotAnImage
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := path.Join(dir, storedName(fh.Filename))
	_, err = m.client.PutObject(ctx, m.bucket, key, f, fh.Size, minio.PutObjectOptions{ContentType: fh.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}
	if m.publicBase == "" {
		return key, nil
	}
	u, err := url.Parse(m.publicBase)
	if err != nil {
		return key, nil
	}
	u.Path = path.Join(u.Path, m.bucket, key)
	return u.String(), nil
}

// Remove deletes the object behind ref, which may be a key or a public URL.
func (m *MinIO) Remove(ctx context.Context, ref string) error {
	return m.client.RemoveObject(ctx, m.bucket, m.keyOf(ref), minio.RemoveObjectOptions{})
}

func (m *MinIO) keyOf(ref string) string {
	if m.publicBase == "" {
		return ref
	}
	base, err := url.Parse(m.publicBase)
	if err != nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return ref
	}
	prefix := strings.TrimPrefix(path.Join(base.Path, m.bucket), "/") + "/"
	return strings.TrimPrefix(strings.TrimPrefix(u.Path, "/"), prefix)
}

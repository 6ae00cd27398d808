// internal/adapters/out/gcs/image_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	imagesyncdom "radacycling/internal/domain/imagesync"
)

// ImageRepositoryGCS is the object-storage adapter for catalog and gallery
// images. Image documents store raw object names; this adapter turns them
// into public URLs and executes reconciled upload/delete batches.
//
// Public access assumes the bucket has IAM "allUsers: Storage Object Viewer"
// (uniform access), so uploaded objects are readable without per-object ACLs.
type ImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
	// Optional: if empty, uses https://storage.googleapis.com
	PublicBaseURL string
}

func NewImageRepositoryGCS(client *storage.Client, bucket string) *ImageRepositoryGCS {
	return &ImageRepositoryGCS{
		Client:        client,
		Bucket:        strings.TrimSpace(bucket),
		PublicBaseURL: "https://storage.googleapis.com",
	}
}

func (r *ImageRepositoryGCS) bucket() (*storage.BucketHandle, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("image_repository_gcs: storage client is nil")
	}
	b := strings.TrimSpace(r.Bucket)
	if b == "" {
		return nil, errors.New("image_repository_gcs: bucket is empty")
	}
	return r.Client.Bucket(b), nil
}

// Exists reports whether the object is present in the bucket.
func (r *ImageRepositoryGCS) Exists(ctx context.Context, objectName string) (bool, error) {
	bh, err := r.bucket()
	if err != nil {
		return false, err
	}
	obj := strings.TrimSpace(objectName)
	if obj == "" {
		return false, nil
	}

	_, err = bh.Object(obj).Attrs(ctx)
	if err == nil {
		return true, nil
	}
	if err == storage.ErrObjectNotExist {
		return false, nil
	}
	return false, err
}

// Upload writes bytes to the bucket under objectName.
func (r *ImageRepositoryGCS) Upload(ctx context.Context, objectName, contentType string, data []byte) error {
	bh, err := r.bucket()
	if err != nil {
		return err
	}
	obj := strings.TrimSpace(objectName)
	if obj == "" {
		return errors.New("image_repository_gcs: objectName is empty")
	}

	w := bh.Object(obj).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}
	w.ChunkSize = 0
	w.Metadata = map[string]string{
		"uploadedAt": time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// Delete removes an object. Deleting a missing object is not an error, so a
// reconciled batch that raced another writer still completes.
func (r *ImageRepositoryGCS) Delete(ctx context.Context, objectName string) error {
	bh, err := r.bucket()
	if err != nil {
		return err
	}
	obj := strings.TrimSpace(objectName)
	if obj == "" {
		return nil
	}

	if err := bh.Object(obj).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
		return err
	}
	return nil
}

// ListObjectNames lists object names under the given prefix.
func (r *ImageRepositoryGCS) ListObjectNames(ctx context.Context, prefix string) ([]string, error) {
	bh, err := r.bucket()
	if err != nil {
		return nil, err
	}

	it := bh.Objects(ctx, &storage.Query{Prefix: strings.TrimSpace(prefix)})

	var out []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		if attrs == nil || strings.TrimSpace(attrs.Name) == "" {
			continue
		}
		out = append(out, attrs.Name)
	}
	return out, nil
}

// Sync executes a reconciled batch: deletes first, then uploads. Each intent
// is attempted independently and its outcome recorded, so one failed object
// never blocks the rest of the batch.
func (r *ImageRepositoryGCS) Sync(ctx context.Context, uploads []imagesyncdom.Upload, deletes []string) imagesyncdom.BatchResult {
	var res imagesyncdom.BatchResult

	for _, name := range deletes {
		err := r.Delete(ctx, name)
		if err != nil {
			log.Printf("[images] delete %s failed: %v", name, err)
		}
		res.Results = append(res.Results, imagesyncdom.OpResult{
			Kind: imagesyncdom.OpDelete,
			Name: name,
			Err:  err,
		})
	}

	for _, up := range uploads {
		err := r.Upload(ctx, up.Name, up.ContentType, up.Data)
		if err != nil {
			log.Printf("[images] upload %s failed: %v", up.Name, err)
		}
		res.Results = append(res.Results, imagesyncdom.OpResult{
			Kind: imagesyncdom.OpUpload,
			Name: up.Name,
			Err:  err,
		})
	}

	return res
}

// PublicURL returns a public URL for the object. Works when the bucket is
// publicly readable (uniform access via IAM).
func (r *ImageRepositoryGCS) PublicURL(objectName string) string {
	base := strings.TrimSpace(r.PublicBaseURL)
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	// Encode path but keep "/" separators.
	parts := strings.Split(strings.TrimLeft(strings.TrimSpace(objectName), "/"), "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}
	encoded := strings.Join(parts, "/")
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), strings.TrimSpace(r.Bucket), encoded)
}

// ResolveURL checks existence and returns the public URL, or ("", nil) when
// the object is missing so callers can fall through to a placeholder.
func (r *ImageRepositoryGCS) ResolveURL(ctx context.Context, objectName string) (string, error) {
	ok, err := r.Exists(ctx, objectName)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return r.PublicURL(objectName), nil
}

package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"waifulist/core/errs"
	"waifulist/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// Object identifies one written export.
type Object struct {
	Bucket       string    `json:"bucket"`
	Key          string    `json:"object"`
	Size         int64     `json:"size,omitempty"`
	LastModified time.Time `json:"last_modified,omitempty"`
}

// Exporter writes reconciled listings to object storage.
type Exporter struct {
	client storage.Client
	bucket string
	region string
	now    func() time.Time
	newID  func() string
}

// NewExporter creates an exporter writing to bucket. A nil client disables it.
func NewExporter(client storage.Client, bucket, region string) *Exporter {
	return &Exporter{client: client, bucket: bucket, region: region, now: time.Now, newID: uuid.NewString}
}

// Enabled reports whether the exporter has a storage client.
func (e *Exporter) Enabled() bool {
	return e != nil && e.client != nil
}

// Bucket returns the bucket exports are written to.
func (e *Exporter) Bucket() string {
	return e.bucket
}

// Export writes v as JSON to exports/<userID>/<unixnano>-<uuid>.json. Keys sort
// by creation time and never collide.
func (e *Exporter) Export(ctx context.Context, userID string, v any) (Object, error) {
	if !e.Enabled() {
		return Object{}, fmt.Errorf("export: %w", errs.ErrDisabled)
	}

	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Object{}, fmt.Errorf("encode export: %w", err)
	}

	if err := storage.EnsureBucket(ctx, e.client, e.bucket, e.region); err != nil {
		return Object{}, err
	}

	key := path.Join(prefix(userID), fmt.Sprintf("%d-%s.json", e.now().UnixNano(), e.newID()))
	info, err := e.client.PutObject(ctx, e.bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return Object{}, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return Object{Bucket: e.bucket, Key: key, Size: info.Size, LastModified: info.LastModified}, nil
}

// Ping checks that object storage answers. A missing bucket is not an error
// since Export creates it.
func (e *Exporter) Ping(ctx context.Context) error {
	if !e.Enabled() {
		return errs.ErrDisabled
	}
	if _, err := e.client.BucketExists(ctx, e.bucket); err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", e.bucket, err)
	}
	return nil
}

// List returns the exports of a user, newest first.
func (e *Exporter) List(ctx context.Context, userID string) ([]Object, error) {
	if !e.Enabled() {
		return nil, fmt.Errorf("export: %w", errs.ErrDisabled)
	}

	var out []Object
	for obj := range e.client.ListObjects(ctx, e.bucket, minio.ListObjectsOptions{
		Prefix:    prefix(userID) + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list exports of %s: %w", userID, obj.Err)
		}
		out = append(out, Object{Bucket: e.bucket, Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key > out[j].Key })
	return out, nil
}

func prefix(userID string) string {
	return path.Join("exports", strings.ReplaceAll(userID, "/", "_"))
}

// internal/application/usecase/imagesync_usecase_test.go
package usecase_test

import (
	"context"
	"reflect"
	"testing"

	"radacycling/internal/application/usecase"
	imagesyncdom "radacycling/internal/domain/imagesync"
)

type fakeBatchStore struct {
	gotUploads []imagesyncdom.Upload
	gotDeletes []string
	result     imagesyncdom.BatchResult
}

func (f *fakeBatchStore) Sync(ctx context.Context, uploads []imagesyncdom.Upload, deletes []string) imagesyncdom.BatchResult {
	f.gotUploads = uploads
	f.gotDeletes = deletes
	return f.result
}

func TestImageSyncReconcilesAndPrefixesFolder(t *testing.T) {
	store := &fakeBatchStore{}
	u := usecase.NewImageSyncUsecase(store)

	adds := []imagesyncdom.Upload{
		{Name: "front.webp", ContentType: "image/webp", Data: []byte{1}},
		{Name: "back.webp", ContentType: "image/webp", Data: []byte{2}},
	}
	_, err := u.Sync(context.Background(), "products", adds, []string{"back.webp", "old.webp"})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	// back.webp was deleted and re-added in the same session: no-op.
	if len(store.gotUploads) != 1 || store.gotUploads[0].Name != "products/front.webp" {
		t.Fatalf("uploads = %v, want only products/front.webp", store.gotUploads)
	}
	if !reflect.DeepEqual(store.gotDeletes, []string{"products/old.webp"}) {
		t.Fatalf("deletes = %v, want [products/old.webp]", store.gotDeletes)
	}
}

func TestImageSyncKeepsUploadPayload(t *testing.T) {
	store := &fakeBatchStore{}
	u := usecase.NewImageSyncUsecase(store)

	adds := []imagesyncdom.Upload{{Name: "a.png", ContentType: "image/png", Data: []byte{9, 9}}}
	if _, err := u.Sync(context.Background(), " portfolio/ ", adds, nil); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	up := store.gotUploads[0]
	if up.Name != "portfolio/a.png" || up.ContentType != "image/png" || len(up.Data) != 2 {
		t.Fatalf("upload = %+v", up)
	}
}

func TestImageSyncRequiresFolder(t *testing.T) {
	u := usecase.NewImageSyncUsecase(&fakeBatchStore{})
	if _, err := u.Sync(context.Background(), "  ", nil, nil); err == nil {
		t.Fatal("empty folder accepted")
	}
}

func TestBatchResultFailed(t *testing.T) {
	res := imagesyncdom.BatchResult{Results: []imagesyncdom.OpResult{
		{Kind: imagesyncdom.OpUpload, Name: "a.png"},
		{Kind: imagesyncdom.OpDelete, Name: "b.png", Err: context.Canceled},
	}}
	failed := res.Failed()
	if len(failed) != 1 || failed[0].Name != "b.png" {
		t.Fatalf("failed = %v", failed)
	}
	if res.OK() {
		t.Fatal("batch with a failure reported OK")
	}
}

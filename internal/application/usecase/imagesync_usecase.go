// internal/application/usecase/imagesync_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	imagesyncdom "radacycling/internal/domain/imagesync"
)

// ImageBatchStore executes reconciled batches against object storage.
type ImageBatchStore interface {
	Sync(ctx context.Context, uploads []imagesyncdom.Upload, deletes []string) imagesyncdom.BatchResult
}

// ImageSyncUsecase commits an editing session's accumulated image changes:
// deletes and re-adds of the same name cancel out before anything touches
// storage, and the survivors run under folder-prefixed object names.
type ImageSyncUsecase struct {
	store ImageBatchStore
}

func NewImageSyncUsecase(store ImageBatchStore) *ImageSyncUsecase {
	return &ImageSyncUsecase{store: store}
}

// Sync reconciles and executes. folder scopes the object names
// ("products", "categories", "portfolio").
func (u *ImageSyncUsecase) Sync(ctx context.Context, folder string, adds []imagesyncdom.Upload, deleteNames []string) (imagesyncdom.BatchResult, error) {
	if u == nil || u.store == nil {
		return imagesyncdom.BatchResult{}, errors.New("imagesync: store is nil")
	}
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return imagesyncdom.BatchResult{}, errors.New("imagesync: folder is empty")
	}

	addNames := make([]string, 0, len(adds))
	byName := make(map[string]imagesyncdom.Upload, len(adds))
	for _, up := range adds {
		addNames = append(addNames, up.Name)
		byName[up.Name] = up
	}

	keptAdds, keptDeletes := imagesyncdom.Reconcile(addNames, deleteNames)

	uploads := make([]imagesyncdom.Upload, 0, len(keptAdds))
	for _, name := range keptAdds {
		up := byName[name]
		up.Name = folder + "/" + name
		uploads = append(uploads, up)
	}
	deletes := make([]string, 0, len(keptDeletes))
	for _, name := range keptDeletes {
		deletes = append(deletes, folder+"/"+name)
	}

	res := u.store.Sync(ctx, uploads, deletes)
	if failed := res.Failed(); len(failed) > 0 {
		log.Printf("[imagesync] %s: %d/%d intents failed", folder, len(failed), len(res.Results))
	}
	return res, nil
}

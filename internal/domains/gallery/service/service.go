package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"hippo/config"
	"hippo/infras/otel"
	"hippo/infras/s3"
	"hippo/internal/domains/gallery/model"
	"hippo/internal/domains/gallery/model/dto"
	"hippo/internal/domains/gallery/repository"
	itemModel "hippo/internal/domains/item/model"
	itemRepo "hippo/internal/domains/item/repository"
	"hippo/shared"
	"hippo/shared/cache"
	"hippo/shared/constant"
	"hippo/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetGallery   = "gallery:get"
	cacheCountGallery = "gallery:count"
)

type ItemGallery interface {
	Append(ctx context.Context, itemID string, req dto.UploadImageRequest) (dto.ImageResponse, error)
	ReplaceAt(ctx context.Context, itemID string, position int, req dto.UploadImageRequest) (dto.ImageResponse, error)
	DeleteAt(ctx context.Context, itemID string, position int) error
	ReadAt(ctx context.Context, itemID string, position int) (dto.ImageResponse, error)
	ReadAllInOrder(ctx context.Context, itemID string) (dto.GalleryResponse, error)
	Count(ctx context.Context, itemID string) (int, error)
	DeleteAll(ctx context.Context, itemID string) error
}

type serviceImpl struct {
	repo     repository.ItemGallery
	itemRepo itemRepo.Item
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3

	// one mutex per item id, so mutations on the same gallery serialize while
	// different galleries proceed independently
	locks sync.Map
}

func New(repo repository.ItemGallery, itemRepo itemRepo.Item, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) ItemGallery {
	return &serviceImpl{
		repo:     repo,
		itemRepo: itemRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

func (s *serviceImpl) lock(itemID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(itemID, &sync.Mutex{})

	return mu.(*sync.Mutex)
}

func (s *serviceImpl) Append(ctx context.Context, itemID string, req dto.UploadImageRequest) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Append")
	defer scope.End()
	defer scope.TraceIfError(err)

	mu := s.lock(itemID)
	mu.Lock()
	defer mu.Unlock()

	exist, err := s.itemRepo.Exist(ctx, shared.FilterByID(itemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check item existence")

		return res, fmt.Errorf("failed to check item existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("item not found")
	}

	gallery, err := s.repo.GetByItemID(ctx, itemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery")

		return res, fmt.Errorf("failed to get gallery: %w", err)
	}

	// reject before uploading, so a full gallery never leaves an orphan object
	if gallery.Count() >= model.MaxImages {
		return res, model.ErrGalleryFull
	}

	ref, err := s.uploadImage(ctx, req)
	if err != nil {
		return res, err
	}

	if gallery.ItemID == constant.Empty {
		gallery = model.New(itemID)

		position, appendErr := gallery.Append(ref)
		if appendErr != nil {
			return res, appendErr
		}

		if err = s.repo.Insert(ctx, gallery); err != nil {
			log.Error().Err(err).Msg("failed to insert gallery")

			return res, fmt.Errorf("failed to insert gallery: %w", err)
		}

		s.invalidate(ctx, itemID)
		res.FromModel(position, ref)

		return res, nil
	}

	position, err := gallery.Append(ref)
	if err != nil {
		return res, err
	}

	slot := gallery.Ord[position]
	if err = s.repo.AppendRef(ctx, itemID, ref, slot); err != nil {
		log.Error().Err(err).Msg("failed to append image ref")

		return res, fmt.Errorf("failed to append image ref: %w", err)
	}

	s.invalidate(ctx, itemID)
	res.FromModel(position, ref)

	return res, nil
}

func (s *serviceImpl) ReplaceAt(ctx context.Context, itemID string, position int, req dto.UploadImageRequest) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReplaceAt")
	defer scope.End()
	defer scope.TraceIfError(err)

	mu := s.lock(itemID)
	mu.Lock()
	defer mu.Unlock()

	gallery, err := s.repo.GetByItemID(ctx, itemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery")

		return res, fmt.Errorf("failed to get gallery: %w", err)
	}

	if gallery.ItemID == constant.Empty {
		return res, failure.NotFound("gallery not found")
	}

	oldRef, err := gallery.RefAt(position)
	if err != nil {
		return res, err
	}

	ref, err := s.uploadImage(ctx, req)
	if err != nil {
		return res, err
	}

	slot, err := gallery.ReplaceAt(position, ref)
	if err != nil {
		return res, err
	}

	if err = s.repo.SetSlot(ctx, itemID, int64(slot), ref); err != nil {
		log.Error().Err(err).Msg("failed to set image slot")

		// the row still points at the old object, so the new upload is the orphan
		s.deleteObjects(ctx, ref)

		return res, fmt.Errorf("failed to set image slot: %w", err)
	}

	s.invalidate(ctx, itemID)
	s.deleteObjects(ctx, oldRef)
	res.FromModel(position, ref)

	return res, nil
}

func (s *serviceImpl) DeleteAt(ctx context.Context, itemID string, position int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteAt")
	defer scope.End()
	defer scope.TraceIfError(err)

	mu := s.lock(itemID)
	mu.Lock()
	defer mu.Unlock()

	gallery, err := s.repo.GetByItemID(ctx, itemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery")

		return fmt.Errorf("failed to get gallery: %w", err)
	}

	if gallery.ItemID == constant.Empty {
		return failure.NotFound("gallery not found")
	}

	oldRef, err := gallery.RefAt(position)
	if err != nil {
		return err
	}

	if err = gallery.DeleteAt(position); err != nil {
		return err
	}

	// slots compact and surviving order entries renumber together, so both
	// arrays go back in one statement
	if err = s.repo.Replace(ctx, gallery); err != nil {
		log.Error().Err(err).Msg("failed to persist gallery after delete")

		return fmt.Errorf("failed to persist gallery after delete: %w", err)
	}

	s.invalidate(ctx, itemID)
	s.deleteObjects(ctx, oldRef)

	return nil
}

// ReadAt returns an empty URL and no error when the item has no gallery row at
// all; a negative position, or one past the end of an existing gallery, is
// ErrPositionOutOfRange.
func (s *serviceImpl) ReadAt(ctx context.Context, itemID string, position int) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReadAt")
	defer scope.End()
	defer scope.TraceIfError(err)

	if position < 0 {
		return res, model.ErrPositionOutOfRange
	}

	gallery, err := s.repo.GetByItemID(ctx, itemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery")

		return res, fmt.Errorf("failed to get gallery: %w", err)
	}

	if gallery.ItemID == constant.Empty {
		res.FromModel(position, constant.Empty)

		return res, nil
	}

	ref, err := gallery.RefAt(position)
	if err != nil {
		return res, err
	}

	res.FromModel(position, ref)

	return res, nil
}

func (s *serviceImpl) ReadAllInOrder(ctx context.Context, itemID string) (res dto.GalleryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReadAllInOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGallery, itemID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery")

		return res, nil
	}

	gallery, err := s.repo.GetByItemID(ctx, itemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery")

		return res, fmt.Errorf("failed to get gallery: %w", err)
	}

	if gallery.ItemID == constant.Empty {
		gallery = model.New(itemID)
	}

	res.FromModel(gallery)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, itemID string) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheCountGallery, itemID)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery count")

		return total, nil
	}

	gallery, err := s.repo.GetByItemID(ctx, itemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery")

		return total, fmt.Errorf("failed to get gallery: %w", err)
	}

	total = gallery.Count()

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery count to cache")
		}
	}()

	return total, nil
}

// DeleteAll removes the gallery row and its stored objects. Called when the
// owning item goes away.
func (s *serviceImpl) DeleteAll(ctx context.Context, itemID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	mu := s.lock(itemID)
	mu.Lock()
	defer mu.Unlock()

	gallery, err := s.repo.GetByItemID(ctx, itemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery for deletion")

		return fmt.Errorf("failed to get gallery: %w", err)
	}

	if gallery.ItemID == constant.Empty {
		return nil
	}

	if err = s.repo.Delete(ctx, itemID); err != nil {
		log.Error().Err(err).Msg("failed to delete gallery")

		return fmt.Errorf("failed to delete gallery: %w", err)
	}

	s.invalidate(ctx, itemID)
	s.deleteObjects(ctx, gallery.RefsInOrder()...)

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, req dto.UploadImageRequest) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".uploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName
	fileName := uuid.NewString() + filepath.Ext(req.Image.Filename)

	url, err = s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, itemID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGallery, itemID)); err != nil {
			log.Error().Err(err).Msg("failed to delete gallery cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheCountGallery, itemID)); err != nil {
			log.Error().Err(err).Msg("failed to delete gallery count cache")
		}
	}()
}

func (s *serviceImpl) deleteObjects(ctx context.Context, urls ...string) {
	go func() {
		c := context.WithoutCancel(ctx)
		bucketName := s.cfg.External.S3.BucketName

		for _, imageURL := range urls {
			objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
			if objectName == constant.Empty {
				log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

				continue
			}

			if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
				log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
			}
		}
	}()
}

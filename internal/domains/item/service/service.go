package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hippo/config"
	"hippo/infras/kafka"
	"hippo/infras/otel"
	galleryService "hippo/internal/domains/gallery/service"
	"hippo/internal/domains/item/model"
	"hippo/internal/domains/item/model/dto"
	"hippo/internal/domains/item/repository"
	"hippo/shared"
	"hippo/shared/cache"
	"hippo/shared/constant"
	gDto "hippo/shared/dto"
	"hippo/shared/failure"
	"hippo/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetItem    = "item:get"
	cacheGetAllItem = "item:gets"
	cacheCountItem  = "item:count"

	topicItemDeleted = "items.deleted"
)

type Item interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (dto.CreateItemResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetItemsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ItemResponse, error)
	Update(ctx context.Context, req dto.UpdateItemRequest, id string) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	OwnerOf(ctx context.Context, id string) (string, error)
}

type serviceImpl struct {
	repo    repository.Item
	gallery galleryService.ItemGallery
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	kafka   kafka.Client
}

func New(repo repository.Item, gallery galleryService.ItemGallery, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Item {
	return &serviceImpl{
		repo:    repo,
		gallery: gallery,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		kafka:   kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateItemRequest) (res dto.CreateItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	item := req.ToModel(user)
	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to insert item")

		return res, fmt.Errorf("failed to insert item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()

	res.ID = item.ID

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllItem, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for items")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count items")

		return res, err
	}

	items, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get items")

		return res, err
	}

	res.FromModels(items, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountItem, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for item count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count items")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save item count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetItem, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for item")

		return res, nil
	}

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("item not found")
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check item existence")

		return err
	}

	if !exist {
		return failure.NotFound("item not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update item")

		return fmt.Errorf("failed to update item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetItem, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete item cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()

	return nil
}

// Delete removes the item, cascades to its image gallery and publishes a
// deletion event for downstream consumers.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item for deletion")

		return fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.NotFound("item not found")
	}

	// The gallery goes first so its stored objects are cleaned up before the
	// item row disappears.
	if err = s.gallery.DeleteAll(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to cascade gallery deletion")

		return fmt.Errorf("failed to cascade gallery deletion: %w", err)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete item")

		return fmt.Errorf("failed to delete item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetItem, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete item cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)

		event := kafka.Message{
			Key: id,
			Value: dto.ItemDeletedEvent{
				ItemID:      id,
				OwnerUserID: item.OwnerUserID,
				DeletedAt:   timezone.Format(timezone.Now(), constant.DateFormat),
			},
		}

		if err := s.kafka.SendMessages(c, topicItemDeleted, event); err != nil {
			log.Error().Err(err).Str("itemID", id).Msg("failed to publish item deleted event")
		}
	}()

	return nil
}

func (s *serviceImpl) Exists(ctx context.Context, id string) (exist bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Exists")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err = s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check item existence")

		return false, fmt.Errorf("failed to check item existence: %w", err)
	}

	return exist, nil
}

func (s *serviceImpl) OwnerOf(ctx context.Context, id string) (owner string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OwnerOf")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item owner")

		return constant.Empty, fmt.Errorf("failed to get item owner: %w", err)
	}

	if item.ID == constant.Empty {
		return constant.Empty, failure.NotFound("item not found")
	}

	return item.OwnerUserID, nil
}

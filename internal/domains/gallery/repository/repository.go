package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hippo/infras/otel"
	"hippo/infras/postgres"
	"hippo/internal/domains/gallery/model"
	"hippo/shared"
	"hippo/shared/constant"
	"hippo/shared/logger"
	gRepo "hippo/shared/repository"
)

type ItemGallery interface {
	GetByItemID(ctx context.Context, itemID string) (model.ItemGallery, error)
	Insert(ctx context.Context, gallery model.ItemGallery) error
	AppendRef(ctx context.Context, itemID, ref string, slot int64) error
	SetSlot(ctx context.Context, itemID string, slot int64, ref string) error
	Replace(ctx context.Context, gallery model.ItemGallery) error
	Delete(ctx context.Context, itemID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ItemGallery]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ItemGallery {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ItemGallery](model.EntityName, model.TableName, model.FieldItemID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByItemID returns the zero value when no row exists for the item.
func (repo *repositoryImpl) GetByItemID(ctx context.Context, itemID string) (model.ItemGallery, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByItemID", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.Get(ctx, shared.FilterByID(itemID, model.FieldItemID, model.TableName)) //nolint:wrapcheck
}

// AppendRef pushes ref onto the slot array and slot onto the order array in a
// single statement, so a reader never observes one array grown without the
// other.
func (repo *repositoryImpl) AppendRef(ctx context.Context, itemID, ref string, slot int64) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.AppendRef", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = array_append(%s, :ref), %s = array_append(%s, :slot) WHERE %s = :item_id",
		model.TableName, model.FieldSlots, model.FieldSlots, model.FieldOrd, model.FieldOrd, model.FieldItemID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"item_id": itemID,
		"ref":     ref,
		"slot":    slot,
	}

	_, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to append ref (%s): %w", model.EntityName, err)
	}

	return nil
}

// SetSlot overwrites one element of the slot array in place. slot is
// zero-based; postgres arrays are 1-based, so the index shifts by one here.
func (repo *repositoryImpl) SetSlot(ctx context.Context, itemID string, slot int64, ref string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.SetSlot", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s[:slot] = :ref WHERE %s = :item_id",
		model.TableName, model.FieldSlots, model.FieldItemID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"item_id": itemID,
		"slot":    slot + 1,
		"ref":     ref,
	}

	_, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to set slot (%s): %w", model.EntityName, err)
	}

	return nil
}

// Replace writes both arrays back whole. Used by delete, where slots compact
// and order renumbers and the two columns must land together.
func (repo *repositoryImpl) Replace(ctx context.Context, gallery model.ItemGallery) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Replace", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = :slots, %s = :ord WHERE %s = :item_id",
		model.TableName, model.FieldSlots, model.FieldOrd, model.FieldItemID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, gallery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to replace arrays (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, itemID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.Repository.Delete(ctx, shared.FilterByID(itemID, model.FieldItemID, model.TableName)) //nolint:wrapcheck
}

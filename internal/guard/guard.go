package guard

//go:generate go run go.uber.org/mock/mockgen -source=./guard.go -destination=./mocks/guard_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hippo/infras/otel"
	"hippo/shared/constant"
	"hippo/shared/failure"

	"github.com/rs/zerolog/log"
)

// Directory answers who owns a resource. The item service implements it.
type Directory interface {
	Exists(ctx context.Context, id string) (bool, error)
	OwnerOf(ctx context.Context, id string) (string, error)
}

type Gate interface {
	Authorize(ctx context.Context, callerID, targetID string) error
}

type gateImpl struct {
	directory Directory
	otel      otel.Otel
}

func New(directory Directory, otel otel.Otel) Gate {
	return &gateImpl{
		directory: directory,
		otel:      otel,
	}
}

// Authorize admits the caller only when every check passes: an anonymous
// caller is unauthorized, a missing target is not found, and a caller who is
// not the owner is forbidden. Lookup failures deny access.
func (g *gateImpl) Authorize(ctx context.Context, callerID, targetID string) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authorize")
	defer scope.End()
	defer scope.TraceIfError(err)

	if callerID == constant.Empty {
		return failure.Unauthorized("authentication required")
	}

	exists, err := g.directory.Exists(ctx, targetID)
	if err != nil {
		log.Error().Err(err).Str("targetID", targetID).Msg("failed to check target existence")

		return fmt.Errorf("failed to check target existence: %w", err)
	}

	if !exists {
		return failure.NotFound("item not found")
	}

	owner, err := g.directory.OwnerOf(ctx, targetID)
	if err != nil {
		log.Error().Err(err).Str("targetID", targetID).Msg("failed to resolve target owner")

		return err
	}

	if owner != callerID {
		return failure.Forbidden("you do not own this item")
	}

	return nil
}

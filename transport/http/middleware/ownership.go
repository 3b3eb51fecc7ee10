package middleware

import (
	"net/http"

	"hippo/infras/otel"
	"hippo/internal/guard"
	"hippo/shared/constant"
	"hippo/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Ownership restricts a route subtree to the owner of the item named by the
// {id} route parameter.
type Ownership interface {
	RequireOwner(http.Handler) http.Handler
}

type ownershipImpl struct {
	gate guard.Gate
	otel otel.Otel
}

func NewOwnershipMiddleware(gate guard.Gate, otel otel.Otel) Ownership {
	return &ownershipImpl{
		gate: gate,
		otel: otel,
	}
}

// RequireOwner reads the caller from the authenticated context and the target
// from the structured route parameter. Runs after Auth.
func (m *ownershipImpl) RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		ctx, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "ownership.middleware")

		callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
		targetID := chi.URLParam(request, constant.RequestParamID)

		if err := m.gate.Authorize(ctx, callerID, targetID); err != nil {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

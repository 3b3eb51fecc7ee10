package item

import (
	"net/http"

	"hippo/infras/otel"
	"hippo/internal/domains/item/model"
	"hippo/internal/domains/item/model/dto"
	"hippo/internal/domains/item/service"
	"hippo/internal/handlers/gallery"
	"hippo/shared/constant"
	gDto "hippo/shared/dto"
	"hippo/shared/validator"
	"hippo/transport/http/middleware"
	"hippo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Item
	gallery   gallery.Handler
	ownership middleware.Ownership
	otel      otel.Otel
}

func New(service service.Item, gallery gallery.Handler, ownership middleware.Ownership, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		gallery:   gallery,
		ownership: ownership,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetItems)

		routerGroup.Route("/{id}", func(itemGroup chi.Router) {
			itemGroup.Get("/", handler.GetItemByID)
			itemGroup.With(handler.ownership.RequireOwner).Patch("/", handler.UpdateItem)
			itemGroup.With(handler.ownership.RequireOwner).Delete("/", handler.DeleteItem)

			itemGroup.Route("/images", handler.gallery.Router)
		})
	})
}

// CreateItem handles the creation of a new item listing.
// @Summary Create a new item
// @Description Create a new item listing owned by the authenticated user.
// @Tags Item
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Item details"
// @Success 201 {object} response.Data[dto.CreateItemResponse] "Created item ID"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items [post]
// @Security BearerAuth
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateItemRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Item created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetItems retrieves all items based on query parameters.
// @Summary Get all items
// @Description Retrieve all items with optional filtering and pagination.
// @Tags Item
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param owner_user_id query string false "Filter by owner"
// @Success 200 {object} response.Data[dto.GetItemsResponse] "List of items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items [get]
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	owner := r.URL.Query().Get(model.FieldOwnerUserID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}

	if owner != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOwnerUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    owner,
			Table:    model.TableName,
		})
	}

	items, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetItemByID retrieves an item by its ID.
// @Summary Get an item by ID
// @Description Retrieve an item by its unique identifier.
// @Tags Item
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Data[dto.ItemResponse] "Item details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id} [get]
func (handler *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateItem updates an existing item by its ID.
// @Summary Update an item by ID
// @Description Update the details of an item owned by the authenticated user.
// @Tags Item
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} response.Message "Item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Item updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Item updated successfully")
}

// DeleteItem deletes an item by its ID.
// @Summary Delete an item by ID
// @Description Delete an item owned by the authenticated user. The item's image gallery is removed with it.
// @Tags Item
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Message "Item deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Item deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Item deleted successfully")
}

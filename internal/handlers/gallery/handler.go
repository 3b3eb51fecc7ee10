package gallery

import (
	"errors"
	"net/http"
	"strconv"

	"hippo/infras/otel"
	"hippo/internal/domains/gallery/model"
	"hippo/internal/domains/gallery/model/dto"
	"hippo/internal/domains/gallery/service"
	"hippo/shared/constant"
	"hippo/shared/failure"
	"hippo/shared/validator"
	"hippo/transport/http/middleware"
	"hippo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamPosition = "position"

type Handler struct {
	service   service.ItemGallery
	ownership middleware.Ownership
	otel      otel.Otel
}

func New(service service.ItemGallery, ownership middleware.Ownership, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		ownership: ownership,
		otel:      otel,
	}
}

// Router registers the image routes. Mounted under /items/{id}/images; reads
// are public, mutations require the item's owner.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.GetImages)
	router.With(handler.ownership.RequireOwner).Post("/", handler.UploadImage)

	router.Route("/{position}", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetImageAt)
		routerGroup.With(handler.ownership.RequireOwner).Put("/", handler.ReplaceImageAt)
		routerGroup.With(handler.ownership.RequireOwner).Delete("/", handler.DeleteImageAt)
	})
}

// GetImages lists an item's images in gallery order.
// @Summary List item images
// @Description Retrieve all images of an item in their visible order.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.GalleryResponse "Ordered images"
// @Failure 500 {object} response.Error
// @Router /v1/items/{id}/images [get]
func (handler *Handler) GetImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImages")
	defer scope.End()

	itemID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.ReadAllInOrder(ctx, itemID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list item images")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item images retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetImageAt retrieves the image at one gallery position.
// @Summary Get an item image by position
// @Description Retrieve the image at the given zero-based gallery position. An item without a gallery answers with an empty URL.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param position path int true "Image position"
// @Success 200 {object} dto.ImageResponse "Image at position"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id}/images/{position} [get]
func (handler *Handler) GetImageAt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImageAt")
	defer scope.End()

	itemID := chi.URLParam(r, constant.RequestParamID)

	position, err := parsePosition(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.ReadAt(ctx, itemID, position)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item image")

		response.WithError(w, galleryError(err))

		return
	}

	scope.AddEvent("Item image retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UploadImage appends an uploaded image to the item's gallery.
// @Summary Upload an item image
// @Description Upload an image file and append it to the end of the item's gallery. Galleries hold at most five images.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Item ID"
// @Param file formData file true "Image file to upload"
// @Success 201 {object} dto.ImageResponse "Appended image"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	itemID := chi.URLParam(r, constant.RequestParamID)

	req, cleanup, err := parseUpload(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded image")

		response.WithError(w, err)

		return
	}
	defer cleanup()

	res, err := handler.service.Append(ctx, itemID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to append item image")

		response.WithError(w, galleryError(err))

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Item image appended successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// ReplaceImageAt swaps the image at one gallery position.
// @Summary Replace an item image by position
// @Description Upload an image file and swap it into the given gallery position. All other positions keep their images.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Item ID"
// @Param position path int true "Image position"
// @Param file formData file true "Image file to upload"
// @Success 200 {object} dto.ImageResponse "Replaced image"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id}/images/{position} [put]
// @Security BearerAuth
func (handler *Handler) ReplaceImageAt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplaceImageAt")
	defer scope.End()

	itemID := chi.URLParam(r, constant.RequestParamID)

	position, err := parsePosition(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req, cleanup, err := parseUpload(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded image")

		response.WithError(w, err)

		return
	}
	defer cleanup()

	res, err := handler.service.ReplaceAt(ctx, itemID, position, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace item image")

		response.WithError(w, galleryError(err))

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Item image replaced successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteImageAt removes the image at one gallery position.
// @Summary Delete an item image by position
// @Description Remove the image at the given gallery position. Later images shift down one position.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param position path int true "Image position"
// @Success 200 {object} response.Message "Image deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id}/images/{position} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImageAt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImageAt")
	defer scope.End()

	itemID := chi.URLParam(r, constant.RequestParamID)

	position, err := parsePosition(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteAt(ctx, itemID, position); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete item image")

		response.WithError(w, galleryError(err))

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Item image deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Image deleted successfully")
}

func parsePosition(r *http.Request) (int, error) {
	position, err := strconv.Atoi(chi.URLParam(r, requestParamPosition))
	if err != nil {
		return 0, failure.BadRequestFromString("invalid position parameter") //nolint:wrapcheck
	}

	return position, nil
}

func parseUpload(r *http.Request) (dto.UploadImageRequest, func(), error) {
	req := dto.UploadImageRequest{}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, nil, failure.BadRequestFromString("invalid multipart form") //nolint:wrapcheck
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		return req, nil, failure.BadRequestFromString("missing image file") //nolint:wrapcheck
	}

	req.Image = fileHeader
	req.ImageFile = file

	if err := validator.ValidateStruct(&req); err != nil {
		file.Close()

		return req, nil, err //nolint:wrapcheck
	}

	return req, func() { file.Close() }, nil
}

// galleryError maps the gallery's algorithmic sentinels onto client errors;
// everything else passes through for the failure package to code.
func galleryError(err error) error {
	if errors.Is(err, model.ErrPositionOutOfRange) || errors.Is(err, model.ErrGalleryFull) {
		return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	return err
}

package dto

import (
	"mime/multipart"

	"hippo/internal/domains/gallery/model"
)

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/gif"`
	ImageFile multipart.File        `json:"-"`
}

type ImageResponse struct {
	Position int    `json:"position"`
	URL      string `json:"url"`
}

func (r *ImageResponse) FromModel(position int, url string) {
	r.Position = position
	r.URL = url
}

type GalleryResponse struct {
	ItemID string          `json:"item_id"`
	Count  int             `json:"count"`
	Images []ImageResponse `json:"images"`
}

func (r *GalleryResponse) FromModel(gallery model.ItemGallery) {
	r.ItemID = gallery.ItemID
	r.Count = gallery.Count()

	refs := gallery.RefsInOrder()
	r.Images = make([]ImageResponse, len(refs))

	for pos, ref := range refs {
		r.Images[pos].FromModel(pos, ref)
	}
}

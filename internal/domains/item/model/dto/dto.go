package dto

import (
	"hippo/internal/domains/item/model"
	"hippo/shared"
	gDto "hippo/shared/dto"
	gModel "hippo/shared/model"
	"hippo/shared/timezone"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string           `json:"name" validate:"required,min=3,max=100"`
	Description string           `json:"description" validate:"omitempty,max=2000"`
	Properties  model.Properties `json:"properties"`
}

func (c *CreateItemRequest) ToModel(owner string) model.Item {
	return model.Item{
		ID:          uuid.NewString(),
		OwnerUserID: owner,
		Name:        c.Name,
		Description: c.Description,
		Properties:  c.Properties,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  owner,
			ModifiedBy: owner,
		},
	}
}

type CreateItemResponse struct {
	ID string `json:"id"`
}

type UpdateItemRequest struct {
	Name        string           `db:"name"        json:"name"        validate:"omitempty,min=3,max=100"`
	Description string           `db:"description" json:"description" validate:"omitempty,max=2000"`
	Properties  model.Properties `db:"properties"  json:"properties"  validate:"omitempty"`
}

type ItemResponse struct {
	ID          string           `json:"id"`
	OwnerUserID string           `json:"owner_user_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Properties  model.Properties `json:"properties"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(model model.Item) {
	r.ID = model.ID
	r.OwnerUserID = model.OwnerUserID
	r.Name = model.Name
	r.Description = model.Description
	r.Properties = model.Properties
	r.Metadata.FromModel(model.Metadata)
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetItemsResponse) FromModels(models []model.Item, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]ItemResponse, len(models))
	for i, m := range models {
		r.Items[i].FromModel(m)
	}
}

type ItemDeletedEvent struct {
	ItemID      string `json:"item_id"`
	OwnerUserID string `json:"owner_user_id"`
	DeletedAt   string `json:"deleted_at"`
}

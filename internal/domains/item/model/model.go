package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"hippo/shared/model"
)

const (
	TableName  = "items"
	EntityName = "item"

	FieldID          = "id"
	FieldOwnerUserID = "owner_user_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldProperties  = "properties"
)

// Properties is a free-form attribute bag stored as jsonb.
type Properties map[string]any

func (p Properties) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}

	value, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item properties: %w", err)
	}

	return value, nil
}

func (p *Properties) Scan(src any) error {
	if src == nil {
		*p = Properties{}

		return nil
	}

	raw, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected item properties type %T", src)
	}

	if err := json.Unmarshal(raw, p); err != nil {
		return fmt.Errorf("failed to unmarshal item properties: %w", err)
	}

	return nil
}

type Item struct {
	ID          string     `db:"id"`
	OwnerUserID string     `db:"owner_user_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Properties  Properties `db:"properties"`
	model.Metadata
}

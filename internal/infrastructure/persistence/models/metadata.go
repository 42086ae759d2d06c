package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/storefront/backend/internal/domain/shared"
)

// Metadata stores a free-form JSON object in a jsonb column.
type Metadata shared.Metadata

// Value implements driver.Valuer
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *Metadata) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Metadata", value)
	}

	if len(data) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(data, m)
}

// ToDomain converts the column value to the domain metadata type
func (m Metadata) ToDomain() shared.Metadata {
	if m == nil {
		return nil
	}
	return shared.Metadata(m)
}

// GormDataType tells GORM which column type to use
func (Metadata) GormDataType() string {
	return "jsonb"
}

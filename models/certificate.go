package models

import (
	"fmt"

	"gorm.io/datatypes"
)

// Certificate references an externally hosted Credly badge. Columns other
// than id and cert_id vary per deployment and are kept in Attributes.
type Certificate struct {
	ID         string            `json:"id"`
	CertID     string            `json:"cert_id"`
	Attributes datatypes.JSONMap `json:"attributes,omitempty"`
}

func (Certificate) TableName() string { return "certificates" }

// CertificateFromRow splits a raw row into the known columns and the rest.
func CertificateFromRow(row map[string]any) Certificate {
	c := Certificate{Attributes: datatypes.JSONMap{}}
	for k, v := range row {
		switch k {
		case "id":
			c.ID = stringify(v)
		case "cert_id":
			c.CertID = stringify(v)
		default:
			c.Attributes[k] = v
		}
	}
	return c
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

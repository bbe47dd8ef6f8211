package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

// TechStack is the ordered list of technologies on a project.
//
// The column has been persisted both as a list and as a comma-joined string.
// Every path into a TechStack (JSON bodies, form values, database rows) goes
// through this type, so the rest of the code only ever sees a clean list.
type TechStack []string

// ParseTechStack splits a delimited string into trimmed, non-empty tokens,
// keeping their order.
func ParseTechStack(s string) TechStack {
	out := TechStack{}
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Joined renders the stack for editing, e.g. "React, Node.js".
func (t TechStack) Joined() string {
	return strings.Join(t, ", ")
}

// TechStackFrom normalizes a decoded JSON or form value.
func TechStackFrom(v any) (TechStack, error) {
	switch val := v.(type) {
	case nil:
		return TechStack{}, nil
	case TechStack:
		return val, nil
	case string:
		return ParseTechStack(val), nil
	case []string:
		return clean(val), nil
	case []any:
		items := make([]string, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("tech_stack[%d]: expected string, got %T", i, item)
			}
			items = append(items, s)
		}
		return clean(items), nil
	default:
		return nil, fmt.Errorf("tech_stack: expected list or string, got %T", v)
	}
}

func clean(items []string) TechStack {
	out := make(TechStack, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (t TechStack) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

func (t *TechStack) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*t = TechStack{}
		return nil
	}

	var list []string
	if err := json.Unmarshal(trimmed, &list); err == nil {
		*t = clean(list)
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		*t = ParseTechStack(s)
		return nil
	}

	return fmt.Errorf("tech_stack: expected list or string, got %s", string(data))
}

// Value always writes a JSON array.
func (t TechStack) Value() (driver.Value, error) {
	if t == nil {
		t = TechStack{}
	}
	v, err := datatypes.NewJSONSlice([]string(t)).Value()
	if b, ok := v.([]byte); ok {
		// pgx sends []byte as bytea under the simple protocol
		return string(b), err
	}
	return v, err
}

// Scan accepts a JSON array, a Postgres array literal or a delimited string.
func (t *TechStack) Scan(value any) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*t = TechStack{}
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("tech_stack: unsupported scan type %T", value)
	}

	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "["):
		var js datatypes.JSONSlice[string]
		if err := js.Scan([]byte(raw)); err != nil {
			return err
		}
		*t = clean(js)
	case strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}"):
		*t = parseArrayLiteral(raw[1 : len(raw)-1])
	default:
		*t = ParseTechStack(raw)
	}
	return nil
}

// parseArrayLiteral handles the text form of a Postgres text[] column.
func parseArrayLiteral(body string) TechStack {
	out := TechStack{}
	for _, tok := range strings.Split(body, ",") {
		tok = strings.TrimSpace(tok)
		if strings.HasPrefix(tok, `"`) {
			if unq, err := strconv.Unquote(tok); err == nil {
				tok = unq
			}
		}
		if tok != "" && tok != "NULL" {
			out = append(out, tok)
		}
	}
	return out
}

// CoerceTechStack is the column coercer used for partial updates.
func CoerceTechStack(v any) (any, error) {
	return TechStackFrom(v)
}

// CoerceDisplayOrder accepts JSON numbers, numeric strings and empty values (null).
func CoerceDisplayOrder(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case float64:
		if val != float64(int(val)) {
			return nil, fmt.Errorf("display_order: %v is not an integer", val)
		}
		return int(val), nil
	case int:
		return val, nil
	case json.Number:
		n, err := strconv.Atoi(val.String())
		if err != nil {
			return nil, fmt.Errorf("display_order: %w", err)
		}
		return n, nil
	case string:
		val = strings.TrimSpace(val)
		if val == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("display_order: %w", err)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("display_order: unsupported value %T", v)
	}
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// CoerceOptionalString maps blank strings to null for nullable text columns.
func CoerceOptionalString(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		if strings.TrimSpace(val) == "" {
			return nil, nil
		}
		return val, nil
	default:
		return nil, fmt.Errorf("expected string, got %T", v)
	}
}

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Entity is a transient copy of a backend record. Content types differ only in
// their fields, so every kind travels as the same JSON object map.
type Entity map[string]any

// ID returns the record identifier regardless of its JSON representation.
func (e Entity) ID() ID {
	return ID(e.String(FieldID))
}

// String returns field as text. Numbers are formatted without exponent,
// missing fields yield "".
func (e Entity) String(field string) string {
	v, ok := e[field]
	if !ok || v == nil {
		return ""
	}

	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case json.Number:
		return value.String()
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(value)
	}
}

// Bool returns field as a boolean. Strings are parsed leniently.
func (e Entity) Bool(field string) bool {
	switch value := e[field].(type) {
	case bool:
		return value
	case string:
		return ParseBool(value)
	case float64:
		return value != 0
	case json.Number:
		f, err := value.Float64()
		return err == nil && f != 0
	default:
		return false
	}
}

// Clone returns a shallow copy safe to edit.
func (e Entity) Clone() Entity {
	out := make(Entity, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// BuildEntity converts raw form values into a request body for kind. Empty
// inputs receive the schema default, boolean fields become JSON booleans and
// fields outside the schema are dropped.
func BuildEntity(kind ResourceKind, values map[string]string) Entity {
	out := make(Entity, len(values))
	for _, f := range kind.Fields() {
		raw, ok := values[f.Name]
		raw = strings.TrimSpace(raw)
		if raw == "" && f.Default != "" {
			raw = f.Default
			ok = true
		}
		if !ok {
			continue
		}

		if f.Type == FieldTypeBool {
			out[f.Name] = ParseBool(raw)
			continue
		}
		out[f.Name] = raw
	}
	return out
}

// FormValues is the inverse of [BuildEntity]: it flattens the schema fields
// of e into text for editing.
func FormValues(kind ResourceKind, e Entity) map[string]string {
	out := make(map[string]string, len(kind.Fields()))
	for _, f := range kind.Fields() {
		if f.Type == FieldTypeBool {
			out[f.Name] = strconv.FormatBool(e.Bool(f.Name))
			continue
		}
		out[f.Name] = e.String(f.Name)
	}
	return out
}

// ParseBool understands the usual spellings of yes/no including the French
// ones the website staff type.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on", "oui", "x":
		return true
	default:
		return false
	}
}

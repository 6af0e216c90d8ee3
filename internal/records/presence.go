package records

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"example.com/healthrecords/internal/interval"
	"example.com/healthrecords/internal/validation"
)

// presenceField is a JSON member of a payload struct that is either required
// itself or holds structs with required members.
type presenceField struct {
	key      string
	name     string
	required bool
	nested   reflect.Type
	repeated bool
}

var presenceFields sync.Map // reflect.Type -> []presenceField

// fieldsOf returns the members of t worth inspecting for presence. Fields are
// tagged `required:"true"` when a payload is meaningless without them.
func fieldsOf(t reflect.Type) []presenceField {
	if cached, ok := presenceFields.Load(t); ok {
		return cached.([]presenceField)
	}
	var fields []presenceField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if !f.IsExported() || key == "" || key == "-" {
			continue
		}
		field := presenceField{key: key, name: lowerCamel(key), required: f.Tag.Get("required") == "true"}
		inner := f.Type
		if inner.Kind() == reflect.Pointer {
			inner = inner.Elem()
		}
		if inner.Kind() == reflect.Slice {
			inner, field.repeated = inner.Elem(), true
		}
		if inner.Kind() == reflect.Struct && len(fieldsOf(inner)) > 0 {
			field.nested = inner
		}
		if field.required || field.nested != nil {
			fields = append(fields, field)
		}
	}
	presenceFields.Store(t, fields)
	return fields
}

// checkPresence fails with ErrMissingField on the first required member of t
// that data omits or sets to null.
func checkPresence(t reflect.Type, data []byte, path string) error {
	fields := fieldsOf(t)
	if len(fields) == 0 {
		return nil
	}
	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil {
		return err
	}
	for _, field := range fields {
		raw, ok := object[field.key]
		name := joinPath(path, field.name)
		if !ok || isNull(raw) {
			if field.required {
				return validation.MissingField(name)
			}
			continue
		}
		if field.nested == nil {
			continue
		}
		if !field.repeated {
			if err := checkPresence(field.nested, raw, name); err != nil {
				return err
			}
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		for i, item := range items {
			if err := checkPresence(field.nested, item, fmt.Sprintf("%s[%d]", name, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || string(trimmed) == "null"
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// lowerCamel turns a snake_case JSON key into the camelCase field name used in
// validation errors.
func lowerCamel(key string) string {
	parts := strings.Split(key, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// requireSpans reports holders built without an interval. Indexes refer to the
// sorted sequence.
func requireSpans[H interval.Holder](holders []H, collection string) []error {
	errs := make([]error, 0, len(holders))
	for i, h := range holders {
		span := h.Interval()
		present := !span.Start().IsZero() || !span.End().IsZero()
		errs = append(errs, validation.RequirePresent(present, fmt.Sprintf("%s[%d].interval", collection, i)))
	}
	return errs
}

// requireTimes reports samples built without a timestamp.
func requireTimes[S interval.Timed](samples []S, collection string) []error {
	errs := make([]error, 0, len(samples))
	for i, sample := range samples {
		errs = append(errs, validation.RequirePresent(!sample.SampleTime().IsZero(), fmt.Sprintf("%s[%d].time", collection, i)))
	}
	return errs
}

// Package payload shapes caller input into request bodies and query strings.
package payload

import (
	"reflect"
	"strings"

	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

// Read returns the value stored under key in payload and whether it is
// present. payload may be a metrifox.FieldReader, a map with string keys, a
// struct, or a pointer to any of these. Struct fields match by json tag name;
// untagged fields match their Go name case-insensitively, ignoring
// underscores in key. Nil pointer fields are absent and set pointer fields
// are dereferenced. Zero-valued fields tagged omitempty are absent, matching
// what encoding/json would send.
func Read(payload interface{}, key string) (interface{}, bool) {
	if payload == nil {
		return nil, false
	}

	reader, ok := payload.(metrifox.FieldReader)
	if ok {
		return reader.Field(key)
	}

	fields, ok := payload.(map[string]interface{})
	if ok {
		value, found := fields[key]

		return value, found
	}

	value := indirect(reflect.ValueOf(payload))
	if !value.IsValid() {
		return nil, false
	}

	switch value.Kind() {
	case reflect.Map:
		return readMap(value, key)
	case reflect.Struct:
		return readStruct(value, key)
	default:
		return nil, false
	}
}

// ReadString returns the value under key when it is a non-empty string.
func ReadString(payload interface{}, key string) (string, bool) {
	value, ok := Read(payload, key)
	if !ok {
		return "", false
	}

	s, ok := value.(string)
	if !ok || s == "" {
		return "", false
	}

	return s, true
}

// IsMapLike reports whether payload can be read as a set of named fields.
func IsMapLike(payload interface{}) bool {
	if payload == nil {
		return false
	}

	if _, ok := payload.(metrifox.FieldReader); ok {
		return true
	}

	value := indirect(reflect.ValueOf(payload))
	if !value.IsValid() {
		return false
	}

	switch value.Kind() {
	case reflect.Map:
		return value.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	default:
		return false
	}
}

func indirect(value reflect.Value) reflect.Value {
	for value.IsValid() && (value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface) {
		if value.IsNil() {
			return reflect.Value{}
		}

		value = value.Elem()
	}

	return value
}

func readMap(value reflect.Value, key string) (interface{}, bool) {
	keyType := value.Type().Key()
	if keyType.Kind() != reflect.String {
		return nil, false
	}

	found := value.MapIndex(reflect.ValueOf(key).Convert(keyType))
	if !found.IsValid() {
		return nil, false
	}

	return found.Interface(), true
}

func readStruct(value reflect.Value, key string) (interface{}, bool) {
	field, omitEmpty, ok := lookupField(value, key)
	if !ok {
		return nil, false
	}

	if omitEmpty && field.IsZero() {
		return nil, false
	}

	switch field.Kind() {
	case reflect.Pointer, reflect.Interface:
		if field.IsNil() {
			return nil, false
		}

		return field.Elem().Interface(), true
	case reflect.Map, reflect.Slice:
		if field.IsNil() {
			return nil, false
		}
	}

	return field.Interface(), true
}

func lookupField(value reflect.Value, key string) (reflect.Value, bool, bool) {
	valueType := value.Type()

	var byName reflect.Value

	for i := 0; i < valueType.NumField(); i++ {
		structField := valueType.Field(i)
		if !structField.IsExported() {
			continue
		}

		if structField.Anonymous {
			embedded := indirect(value.Field(i))
			if embedded.IsValid() && embedded.Kind() == reflect.Struct {
				found, omitEmpty, ok := lookupField(embedded, key)
				if ok {
					return found, omitEmpty, true
				}
			}

			continue
		}

		name, omitEmpty := jsonName(structField)
		if name == "-" {
			continue
		}

		if name == key {
			return value.Field(i), omitEmpty, true
		}

		if name == "" && !byName.IsValid() && strings.EqualFold(structField.Name, strings.ReplaceAll(key, "_", "")) {
			byName = value.Field(i)
		}
	}

	return byName, false, byName.IsValid()
}

func jsonName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "" {
		return "", false
	}

	name, options, _ := strings.Cut(tag, ",")

	return name, strings.Contains(","+options+",", ",omitempty,")
}

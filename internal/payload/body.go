package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/metrifox/metrifox-go/internal/constants"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

// CustomerBody converts payload to a JSON object and drops top-level entries
// whose value is nil. false, 0, "" and empty collections are kept.
func CustomerBody(payload interface{}) (map[string]interface{}, error) {
	fields, err := toMap(payload)
	if err != nil {
		return nil, err
	}

	body := make(map[string]interface{}, len(fields))

	for key, value := range fields {
		if isNil(value) {
			continue
		}

		body[key] = value
	}

	return body, nil
}

// UsageBody builds the usage event body. customer_key is required, amount
// defaults to 1 and metadata to {}. event_name, feature_key and event_id are
// sent when they are non-empty strings; credit_used and timestamp when set.
func UsageBody(payload interface{}) (map[string]interface{}, error) {
	if !IsMapLike(payload) {
		return nil, invalidPayload(payload)
	}

	customerKey, ok := ReadString(payload, "customer_key")
	if !ok {
		return nil, &metrifox.ArgumentError{
			Message: "customer_key is required",
			Err:     metrifox.ErrCustomerKeyRequired,
		}
	}

	body := map[string]interface{}{
		"customer_key": customerKey,
		"amount":       amount(payload),
	}

	for _, key := range []string{"event_name", "feature_key", "event_id"} {
		value, ok := ReadString(payload, key)
		if ok {
			body[key] = value
		}
	}

	creditUsed, ok := Read(payload, "credit_used")
	if ok && creditUsed != nil {
		body["credit_used"] = creditUsed
	}

	timestamp, ok := timestampValue(payload)
	if ok {
		body["timestamp"] = timestamp
	}

	metadata, ok := Read(payload, "metadata")
	if !ok || isNil(metadata) {
		metadata = map[string]interface{}{}
	}

	body["metadata"] = metadata

	return body, nil
}

// Encode serializes body as JSON.
func Encode(body map[string]interface{}) ([]byte, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, &metrifox.ArgumentError{
			Message: fmt.Sprintf("encoding request body: %v", err),
			Err:     metrifox.ErrInvalidPayload,
		}
	}

	return encoded, nil
}

func toMap(payload interface{}) (map[string]interface{}, error) {
	if !IsMapLike(payload) {
		return nil, invalidPayload(payload)
	}

	fields, ok := payload.(map[string]interface{})
	if ok {
		return fields, nil
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, &metrifox.ArgumentError{
			Message: fmt.Sprintf("invalid request format: %v", err),
			Err:     metrifox.ErrInvalidPayload,
		}
	}

	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()

	var decoded map[string]interface{}

	err = decoder.Decode(&decoded)
	if err != nil || decoded == nil {
		return nil, invalidPayload(payload)
	}

	return decoded, nil
}

func invalidPayload(payload interface{}) error {
	return &metrifox.ArgumentError{
		Message: fmt.Sprintf("invalid request format: cannot use %T as a field map", payload),
		Err:     metrifox.ErrInvalidPayload,
	}
}

func amount(payload interface{}) interface{} {
	value, ok := Read(payload, "amount")
	if !ok || !isNonZeroNumber(value) {
		return constants.DefaultUsageAmount
	}

	return value
}

func isNonZeroNumber(value interface{}) bool {
	number, ok := value.(json.Number)
	if ok {
		f, err := number.Float64()

		return err == nil && f != 0
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return !v.IsZero()
	default:
		return false
	}
}

func timestampValue(payload interface{}) (interface{}, bool) {
	value, ok := Read(payload, "timestamp")
	if !ok || isNil(value) {
		return nil, false
	}

	switch ts := value.(type) {
	case time.Time:
		if ts.IsZero() {
			return nil, false
		}

		return ts.Format(time.RFC3339Nano), true
	case string:
		if ts == "" {
			return nil, false
		}

		return ts, true
	default:
		return ts, true
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Package response classifies backend responses and extracts projected fields.
package response

import (
	"bytes"
	"encoding/json"
	"errors"

	mfhttp "github.com/metrifox/metrifox-go/internal/http"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

var errNotObject = errors.New("response body is not a JSON object")

// Parse returns the decoded JSON object of a 2xx response. Any other status
// is an APIError "<context>: <code> <reason>"; an undecodable 2xx body is an
// APIError "Invalid JSON response: ...".
func Parse(resp *mfhttp.Response, context string) (metrifox.Object, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, metrifox.NewStatusError(context, resp.StatusCode, resp.Reason, resp.Body)
	}

	var decoded interface{}

	err := json.Unmarshal(bytes.TrimSpace(resp.Body), &decoded)
	if err != nil {
		return nil, metrifox.NewDecodeError(context, resp.StatusCode, err)
	}

	object, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, metrifox.NewDecodeError(context, resp.StatusCode, errNotObject)
	}

	return object, nil
}

// Project walks object along path and returns the value found, if any.
func Project(object metrifox.Object, path ...string) (interface{}, bool) {
	var current interface{} = object

	for _, key := range path {
		fields, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}

		current, ok = fields[key]
		if !ok {
			return nil, false
		}
	}

	if current == nil {
		return nil, false
	}

	return current, true
}

// ProjectString returns the string at path, or "" when absent or not a string.
func ProjectString(object metrifox.Object, path ...string) string {
	value, ok := Project(object, path...)
	if !ok {
		return ""
	}

	s, ok := value.(string)
	if !ok {
		return ""
	}

	return s
}

// ProjectBool returns the bool at path, or false when absent or not a bool.
func ProjectBool(object metrifox.Object, path ...string) bool {
	value, ok := Project(object, path...)
	if !ok {
		return false
	}

	b, ok := value.(bool)

	return ok && b
}

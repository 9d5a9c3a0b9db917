package payload

import (
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// ListParamKeys are the customer list parameters forwarded to the backend, in
// query order.
var ListParamKeys = []string{"page", "per_page", "search_term", "customer_type", "date_created"}

type queryPair struct {
	name  string
	value string
}

// Query is an ordered application/x-www-form-urlencoded query builder.
type Query struct {
	pairs []queryPair
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{}
}

// Add appends name=value unless value is nil or an empty string. Zero numbers
// are sent, so page=0 reaches the backend. Values are stringified with cast.
func (q *Query) Add(name string, value interface{}) *Query {
	if isEmptyQueryValue(value) {
		return q
	}

	str, err := cast.ToStringE(value)
	if err != nil || str == "" {
		return q
	}

	q.pairs = append(q.pairs, queryPair{name: name, value: str})

	return q
}

// AddFrom appends each key read from payload, in the given order.
func (q *Query) AddFrom(payload interface{}, keys ...string) *Query {
	for _, key := range keys {
		value, ok := Read(payload, key)
		if ok {
			q.Add(key, value)
		}
	}

	return q
}

// Len returns the number of pairs.
func (q *Query) Len() int {
	return len(q.pairs)
}

// Encode returns the encoded query without a leading "?", or "" when empty.
func (q *Query) Encode() string {
	var builder strings.Builder

	for i, pair := range q.pairs {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.name))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.value))
	}

	return builder.String()
}

func isEmptyQueryValue(value interface{}) bool {
	if isNil(value) {
		return true
	}

	s, ok := value.(string)

	return ok && s == ""
}

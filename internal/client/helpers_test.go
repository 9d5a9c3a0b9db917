package client_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/metrifox/metrifox-go/internal/client"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

const testAPIKey = "test-api-key"

// recordedRequest is what the fake backend saw.
type recordedRequest struct {
	Method      string
	Path        string
	RawPath     string
	RawQuery    string
	APIKey      string
	ContentType string
	Body        []byte
}

// fakeBackend answers every request with a fixed status and body and records
// what it received.
type fakeBackend struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newFakeBackend(t *testing.T, status int, body string) *fakeBackend {
	t.Helper()

	backend := &fakeBackend{status: status, body: body}
	backend.server = httptest.NewServer(http.HandlerFunc(backend.handle))
	t.Cleanup(backend.server.Close)

	return backend
}

func (b *fakeBackend) handle(writer http.ResponseWriter, request *http.Request) {
	body, _ := io.ReadAll(request.Body)

	b.mu.Lock()
	b.requests = append(b.requests, recordedRequest{
		Method:      request.Method,
		Path:        request.URL.Path,
		RawPath:     request.URL.EscapedPath(),
		RawQuery:    request.URL.RawQuery,
		APIKey:      request.Header.Get("x-api-key"),
		ContentType: request.Header.Get("Content-Type"),
		Body:        body,
	})
	status, responseBody := b.status, b.body
	b.mu.Unlock()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_, _ = writer.Write([]byte(responseBody))
}

func (b *fakeBackend) respond(status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.status, b.body = status, body
}

func (b *fakeBackend) hits() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.requests)
}

func (b *fakeBackend) last() recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.requests) == 0 {
		return recordedRequest{}
	}

	return b.requests[len(b.requests)-1]
}

// baseURL is the API root served by the backend.
func (b *fakeBackend) baseURL() string {
	return b.server.URL + "/api/v1/"
}

func newTestClient(backend *fakeBackend, apiKey string) *client.Client {
	return client.New(&metrifox.Config{
		APIKey:        apiKey,
		BaseURL:       backend.baseURL(),
		WebAppBaseURL: "https://app.metrifox.test",
		UserAgent:     "metrifox-go-test",
	})
}

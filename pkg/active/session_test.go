package active

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJoinURL(t *testing.T) {
	testCases := []struct {
		base     string
		path     string
		expected string
	}{
		{"http://localhost", "comments/1", "http://localhost/comments/1"},
		{"http://localhost:8080", "authors/42", "http://localhost:8080/authors/42"},
		{"http://localhost/api/", "v2/posts", "http://localhost/api/v2/posts"},
		{"http://localhost/api/v1", "posts", "http://localhost/api/posts"},
		{"http://localhost/api/", "/posts", "http://localhost/posts"},
		{"http://localhost", "https://example.com/posts", "https://example.com/posts"},
	}
	for _, testCase := range testCases {
		result := joinURL(testCase.base, testCase.path)
		if result != testCase.expected {
			t.Errorf("joinURL(%q, %q) = %q, expected %q",
				testCase.base, testCase.path, result, testCase.expected)
		}
	}
}

func TestSessionRequest(t *testing.T) {
	var captured *http.Request
	var capturedBody []byte
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			captured = r
			capturedBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"id": 1}`))
		},
	))
	defer server.Close()

	session := &Session{Headers: map[string]string{
		"Authorization": "Bearer SECRET",
	}}
	body, err := session.request("POST", server.URL+"/things", []byte(`{"a":1}`))
	if err != nil {
		t.Fatal(err)
	}

	if string(body) != `{"id": 1}` {
		t.Errorf("got body %s", body)
	}
	if captured.Method != "POST" || captured.URL.Path != "/things" {
		t.Errorf("server saw %s %s", captured.Method, captured.URL.Path)
	}
	if captured.Header.Get("Content-Type") != "application/json" {
		t.Error("payload sent without the JSON content type")
	}
	if captured.Header.Get("Authorization") != "Bearer SECRET" {
		t.Error("session headers did not reach the server")
	}
	if string(capturedBody) != `{"a":1}` {
		t.Errorf("server saw payload %s", capturedBody)
	}
}

func TestSessionRequestWithoutPayload(t *testing.T) {
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			contentType = r.Header.Get("Content-Type")
			w.Write([]byte(`[]`))
		},
	))
	defer server.Close()

	session := &Session{}
	_, err := session.request("GET", server.URL+"/things", nil)
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "" {
		t.Errorf("a bodiless request carried Content-Type %q", contentType)
	}
}

func TestSessionStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(418)
			w.Write([]byte("teapot"))
		},
	))
	defer server.Close()

	session := &Session{}
	_, err := session.request("GET", server.URL+"/things", nil)

	var statusError *StatusError
	if !errors.As(err, &statusError) {
		t.Fatalf("got %v, expected a StatusError", err)
	}
	if statusError.StatusCode != 418 || string(statusError.Body) != "teapot" {
		t.Errorf("got status %d body %q",
			statusError.StatusCode, statusError.Body)
	}
	if IsNotFound(err) {
		t.Error("418 mistaken for absence")
	}
}

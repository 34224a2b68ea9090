package demoapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/activerest/cli/pkg/assert"
)

func request(
	t *testing.T, method, url, body string,
) (int, []byte) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatal(err)
	}
	response, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer response.Body.Close()
	data, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatal(err)
	}
	return response.StatusCode, data
}

func decodeList(t *testing.T, data []byte) []Record {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("%s: %s", err, data)
	}
	return records
}

func decodeRecord(t *testing.T, data []byte) Record {
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("%s: %s", err, data)
	}
	return record
}

func TestListAndFilter(t *testing.T) {
	server := httptest.NewServer(NewHandler().Routes())
	defer server.Close()

	status, data := request(t, "GET", server.URL+"/posts", "")
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, len(decodeList(t, data)), 4)

	status, data = request(t, "GET", server.URL+"/posts?user_id=1", "")
	assert.Equal(t, status, http.StatusOK)
	for _, record := range decodeList(t, data) {
		assert.Equal(t, record["user_id"], float64(1))
	}
	assert.Equal(t, len(decodeList(t, data)), 2)
}

func TestCreateAssignsNextID(t *testing.T) {
	server := httptest.NewServer(NewHandler().Routes())
	defer server.Close()

	status, data := request(
		t, "POST", server.URL+"/posts", `{"title": "new", "user_id": 3}`,
	)
	assert.Equal(t, status, http.StatusCreated)
	created := decodeRecord(t, data)
	assert.Equal(t, created["id"], float64(5))

	status, _ = request(t, "GET", server.URL+"/posts/5", "")
	assert.Equal(t, status, http.StatusOK)
}

func TestGetMissing(t *testing.T) {
	server := httptest.NewServer(NewHandler().Routes())
	defer server.Close()

	status, data := request(t, "GET", server.URL+"/posts/999", "")
	assert.Equal(t, status, http.StatusNotFound)
	assert.True(t, decodeRecord(t, data)["error"] != nil)
}

func TestReplaceKeepsID(t *testing.T) {
	server := httptest.NewServer(NewHandler().Routes())
	defer server.Close()

	status, data := request(
		t, "PUT", server.URL+"/posts/1", `{"title": "replaced"}`,
	)
	assert.Equal(t, status, http.StatusOK)
	replaced := decodeRecord(t, data)
	assert.Equal(t, replaced["id"], float64(1))
	assert.Equal(t, replaced["title"], "replaced")

	// The replacement is total; fields not sent are gone
	_, data = request(t, "GET", server.URL+"/posts/1", "")
	assert.True(t, decodeRecord(t, data)["body"] == nil)
}

func TestDeleteThenGone(t *testing.T) {
	server := httptest.NewServer(NewHandler().Routes())
	defer server.Close()

	status, _ := request(t, "DELETE", server.URL+"/posts/4", "")
	assert.Equal(t, status, http.StatusOK)

	status, _ = request(t, "GET", server.URL+"/posts/4", "")
	assert.Equal(t, status, http.StatusNotFound)

	status, _ = request(t, "DELETE", server.URL+"/posts/4", "")
	assert.Equal(t, status, http.StatusNotFound)
}

func TestChildren(t *testing.T) {
	server := httptest.NewServer(NewHandler().Routes())
	defer server.Close()

	status, data := request(t, "GET", server.URL+"/posts/1/comments", "")
	assert.Equal(t, status, http.StatusOK)
	comments := decodeList(t, data)
	assert.Equal(t, len(comments), 2)
	for _, comment := range comments {
		assert.Equal(t, comment["post_id"], float64(1))
	}

	_, data = request(t, "GET", server.URL+"/users/1/todos", "")
	assert.Equal(t, len(decodeList(t, data)), 2)

	_, data = request(t, "GET", server.URL+"/albums/2/photos", "")
	assert.Equal(t, len(decodeList(t, data)), 1)
}

func TestProfileLifecycle(t *testing.T) {
	server := httptest.NewServer(NewHandler().Routes())
	defer server.Close()

	status, _ := request(t, "GET", server.URL+"/users/1/profile", "")
	assert.Equal(t, status, http.StatusOK)

	status, _ = request(t, "GET", server.URL+"/users/2/profile", "")
	assert.Equal(t, status, http.StatusNotFound)

	status, _ = request(
		t, "PUT", server.URL+"/users/2/profile", `{"bio": "fresh"}`,
	)
	assert.Equal(t, status, http.StatusOK)

	status, data := request(t, "GET", server.URL+"/users/2/profile", "")
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, decodeRecord(t, data)["bio"], "fresh")

	status, _ = request(t, "DELETE", server.URL+"/users/2/profile", "")
	assert.Equal(t, status, http.StatusOK)

	status, _ = request(t, "GET", server.URL+"/users/2/profile", "")
	assert.Equal(t, status, http.StatusNotFound)

	status, _ = request(t, "PUT", server.URL+"/users/99/profile", `{}`)
	assert.Equal(t, status, http.StatusNotFound)
}

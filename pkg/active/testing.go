package active

import "fmt"

// Helpers for faking a Session in tests, without a live server.

type CapturedRequest struct {
	Method  string
	URL     string
	Payload []byte
}

type MockResponse struct {
	Text   string
	Status int
}

type MockRequest struct {
	Response MockResponse
	Request  CapturedRequest
}

type MockEndpoint struct {
	Requests []MockRequest
	Count    int
}

// MockData maps absolute URLs to the scripted responses a test session
// answers with, in order of arrival.
type MockData map[string]*MockEndpoint

func (mockData *MockData) Get(url string) *MockRequest {
	endpoint, exists := (*mockData)[url]
	if !exists {
		return nil
	}
	if endpoint.Count >= len(endpoint.Requests) {
		return nil
	}
	endpoint.Count++
	return &endpoint.Requests[endpoint.Count-1]
}

/*
GetTestSession returns a Session that answers every round trip from
mockData. A request for a URL with no scripted response left is an error;
a scripted Status outside the 2xx range turns into the StatusError a live
server would have produced.
*/
func GetTestSession(mockData MockData) *Session {
	return &Session{
		RequestMethod: func(method, url string, payload []byte) ([]byte, error) {
			mockRequest := mockData.Get(url)
			if mockRequest == nil {
				return nil, fmt.Errorf("unexpected request for %s", url)
			}
			mockRequest.Request.Method = method
			mockRequest.Request.URL = url
			mockRequest.Request.Payload = payload

			status := mockRequest.Response.Status
			if status != 0 && (status < 200 || status >= 300) {
				return nil, &StatusError{
					StatusCode: status,
					Body:       []byte(mockRequest.Response.Text),
				}
			}
			return []byte(mockRequest.Response.Text), nil
		},
	}
}

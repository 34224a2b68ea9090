package active

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
)

// Defaults applied by New when the matching Config field is left empty.
var (
	DefaultURL     = "http://localhost"
	DefaultSession = &Session{}
)

// DefaultUID is the identifier field assumed when a declaration names none.
const DefaultUID = "id"

/*
Session performs the HTTP round trips behind declared resources. The zero
value is usable; resources declared without their own session share
DefaultSession, so headers set there apply process-wide:

    active.DefaultSession.Headers = map[string]string{
        "Authorization": "Bearer " + token,
    }

Cancellation and timeouts are the embedded http.Client's business; the
mapping layer adds nothing on top.
*/
type Session struct {
	Headers map[string]string
	Client  http.Client

	// Used for testing
	RequestMethod func(method, url string, payload []byte) ([]byte, error)
}

func (s *Session) request(method, url string, payload []byte) ([]byte, error) {
	if s.RequestMethod != nil {
		return s.RequestMethod(method, url, payload)
	}

	request, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for header, value := range s.Headers {
		request.Header.Set(header, value)
	}

	response, err := s.Client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if statusError := parseStatusError(response.StatusCode, body); statusError != nil {
		return nil, statusError
	}
	return body, nil
}

// joinURL resolves path against base with browser semantics: a relative
// path replaces the base's last segment, a rooted path replaces the whole
// path, an absolute URL wins outright. Templates are interpolated before
// they ever reach this point, so the ':' of a 'host:port' base is never
// mistaken for a placeholder.
func joinURL(base, path string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return path
	}
	pathURL, err := url.Parse(path)
	if err != nil {
		return base + "/" + path
	}
	return baseURL.ResolveReference(pathURL).String()
}

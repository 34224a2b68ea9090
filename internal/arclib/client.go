package arclib

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/activerest/cli/pkg/active"
)

func GetClient(cacert string) (http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cacert != "" {
		file, err := os.Open(cacert)
		if err != nil {
			return http.Client{}, err
		}
		data, err := io.ReadAll(file)
		if err != nil {
			return http.Client{}, err
		}
		certPool := x509.NewCertPool()
		if !certPool.AppendCertsFromPEM(data) {
			return http.Client{}, fmt.Errorf(
				"could not load certificates from file '%s'",
				cacert,
			)
		}

		transport.TLSClientConfig = &tls.Config{RootCAs: certPool}
	}

	return http.Client{Transport: transport}, nil
}

/*
GetSession
Build the HTTP session every declared resource of this invocation will
share. A non-empty token rides along as an Authorization bearer header; a
non-empty cacert path adds the bundle to the client's trust store.
*/
func GetSession(token, cacert string) (*active.Session, error) {
	client, err := GetClient(cacert)
	if err != nil {
		return nil, err
	}
	session := &active.Session{Client: client}
	if token != "" {
		session.Headers = map[string]string{
			"Authorization": "Bearer " + token,
		}
	}
	return session, nil
}

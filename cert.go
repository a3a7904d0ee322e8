package botvac

import (
	"crypto/tls"
	"crypto/x509"
	_ "embed"
	"fmt"
	"net/http"
	"time"
)

// Nucleo presents a certificate chain that does not verify against every
// system trust store, so the library ships its own trust anchor and pins
// verification to it.
//
//go:embed cert/neatocloud.com.crt
var nucleoCertPEM []byte

// newPinnedHTTPClient builds an HTTP client that verifies server
// certificates against only the given PEM bundle.
func newPinnedHTTPClient(caPEM []byte, timeout time.Duration) (*http.Client, error) {
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("no certificates found in trust anchor PEM")
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{RootCAs: pool},
		},
	}, nil
}

package utils

import (
	"crypto/tls"
	"net/http"
	"net/url"
)

// NewHTTPClient builds the shared client for a run: fixed 15-second total
// timeout and an optional proxy. TLS certificate verification is disabled
// on purpose — this tool is routinely pointed at hosts with broken or
// intercepted certificates; treat that as a security trade-off, not a bug.
func NewHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{
		TLSClientConfig:     &tls.Config{InsecureSkipVerify: true},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
	}
	if proxyURL != "" {
		if parsed, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(parsed)
		}
	}
	return &http.Client{
		Timeout:   RequestTimeout,
		Transport: transport,
	}
}

package httpclient

import (
	"net/http"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
)

// New crea un *http.Client con timeout razonable para adapters.
// Las llamadas al modelo tardan varios segundos, por eso el default es más alto que el de un API interno.
func New(timeout time.Duration) *http.Client {
	return NewWithTransport(timeout, nil)
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: tr,
	}
}

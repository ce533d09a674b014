package xhttp

import (
	"net/http"
	"net/url"

	"github.com/go-shopfront/shopfront/xhttp/header"
)

// Env is an immutable snapshot of the ambient request and server state that
// the resolvers in this package read: request headers, query parameters, and
// the server/remote addresses. It replaces direct access to process-global
// request state, so every resolver is a pure function of its arguments.
type Env struct {
	// Header holds the request headers, with the Host header populated even
	// when the transport carries it outside the header block.
	Header http.Header

	// Query holds the parsed query-string parameters.
	Query url.Values

	// ServerName is the name the server was addressed by, when known.
	ServerName string

	// ServerAddr is the listening address of the server, when known.
	ServerAddr string

	// RemoteAddr is the address of the remote end of the connection.
	RemoteAddr string
}

// EnvFromRequest captures a snapshot of r. Headers and query values are
// copied, so later mutation of the request does not affect the snapshot.
// The request Host is folded back into the Host header, where ResolveHost
// expects it.
func EnvFromRequest(r *http.Request) *Env {
	h := cloneHeader(r.Header)
	if r.Host != "" && h.Get(header.Host) == "" {
		h.Set(header.Host, r.Host)
	}
	return &Env{
		Header:     h,
		Query:      cloneValues(r.URL.Query()),
		RemoteAddr: r.RemoteAddr,
	}
}

// HeaderValue returns the first value of the named header, or empty string.
func (e *Env) HeaderValue(name string) string {
	if e == nil {
		return ""
	}
	return e.Header.Get(name)
}

// QueryValue returns the first value of the named query parameter, or empty string.
func (e *Env) QueryValue(name string) string {
	if e == nil {
		return ""
	}
	return e.Query.Get(name)
}

func cloneHeader(src http.Header) http.Header {
	dst := make(http.Header, len(src))
	for k, vv := range src {
		dst[k] = append([]string(nil), vv...)
	}
	return dst
}

func cloneValues(src url.Values) url.Values {
	dst := make(url.Values, len(src))
	for k, vv := range src {
		dst[k] = append([]string(nil), vv...)
	}
	return dst
}

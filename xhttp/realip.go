package xhttp

import (
	"github.com/go-shopfront/shopfront/xhttp/header"
	"github.com/go-shopfront/shopfront/xhttp/httperror"
)

// ClientIP returns the best-guess client address from the request
// environment: the Client-Ip header, then X-Forwarded-For, then the remote
// socket address. An X-Forwarded-For chain is returned as the raw header
// value, commas and all; callers that need a single address parse it
// themselves. The value is not validated as an IP.
//
// A connected request always carries a remote address, so an Environment
// error here means the snapshot was built from something other than a live
// request.
func ClientIP(env *Env) (string, error) {
	if ip := env.HeaderValue(header.ClientIP); ip != "" {
		return ip, nil
	}
	if ip := env.HeaderValue(header.XForwardedFor); ip != "" {
		return ip, nil
	}
	if env != nil && env.RemoteAddr != "" {
		return env.RemoteAddr, nil
	}
	return "", httperror.NewEnvironment("remote address is not set")
}

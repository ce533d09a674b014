package xhttp

import (
	"regexp"
	"strings"

	"github.com/go-shopfront/shopfront/shopcfg"
	"github.com/go-shopfront/shopfront/xhttp/header"
)

// Configuration provides read access to named shop settings.
// A nil or empty value for a setting means it is not configured.
type Configuration interface {
	GetString(name string) string
}

var portSuffix = regexp.MustCompile(`:\d+$`)

// wwwPrefix strips a leading "www" plus one more character. The dot is
// intentionally unescaped: "www." and "wwwX" prefixes strip alike, and host
// comparison relies on that looseness.
var wwwPrefix = regexp.MustCompile(`^www.`)

// ResolveHost determines the host the request was addressed to, falling back
// across the environment in order: X-Forwarded-Host, Host, server name,
// server address. X-Forwarded-Host may carry a comma-separated chain set by
// intermediate proxies; the last entry is the current host. The selected
// value is stripped of a trailing :port, trimmed and lower-cased. Returns
// empty string when nothing in the environment names a host.
func ResolveHost(env *Env) string {
	candidates := []string{
		env.HeaderValue(header.XForwardedHost),
		env.HeaderValue(header.Host),
	}
	if env != nil {
		candidates = append(candidates, env.ServerName, env.ServerAddr)
	}

	for i, host := range candidates {
		if i == 0 && strings.Contains(host, ",") {
			parts := strings.Split(host, ",")
			host = parts[len(parts)-1]
		}
		host = strings.TrimSpace(host)
		if host == "" {
			continue
		}
		host = portSuffix.ReplaceAllString(host, "")
		return strings.ToLower(strings.TrimSpace(host))
	}
	return ""
}

// htmlCompatEscaper escapes &, ", < and > only; single quotes pass through,
// as legacy storefront templates expect.
var htmlCompatEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

// ShopDomain returns the shop domain: the configured shop_domain setting
// when present, the resolved request host otherwise. With escapeHTML the
// result is HTML-escaped; with appendProtocol it is prefixed with "http://".
// Escaping applies before the prefix, so the protocol is never escaped.
func ShopDomain(cfg Configuration, env *Env, appendProtocol, escapeHTML bool) string {
	var domain string
	if cfg != nil {
		domain = cfg.GetString(shopcfg.KeyShopDomain)
	}
	if domain == "" {
		domain = ResolveHost(env)
	}
	if escapeHTML {
		domain = htmlCompatEscaper.Replace(domain)
	}
	if appendProtocol {
		domain = "http://" + domain
	}
	return domain
}

// IsOriginHost reports whether host names the same origin as the current
// request host. Both sides are compared after stripping the www prefix;
// the comparison is case-sensitive.
func IsOriginHost(env *Env, host string) bool {
	current := ResolveHost(env)
	return wwwPrefix.ReplaceAllString(host, "") == wwwPrefix.ReplaceAllString(current, "")
}

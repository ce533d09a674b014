// Package urlutil builds storefront URLs and campaign tracking query
// strings from an injected shop context.
package urlutil

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-shopfront/shopfront/xhttp/httperror"
)

// ShopContext supplies the ambient shop parameters URL construction needs.
type ShopContext interface {
	// BaseURL returns the shop base URL, protocol and domain,
	// with a trailing slash guaranteed.
	BaseURL(ssl bool) string

	// AdminDir returns the base name of the back-office folder;
	// ok is false outside the back office.
	AdminDir() (dir string, ok bool)
}

// IsModuleNameFn is an injected predicate reporting whether a module name is
// well formed.
type IsModuleNameFn func(name string) bool

// moduleConfigurePath is the back-office deep link to a module's
// configuration page; the module name is appended verbatim.
const moduleConfigurePath = "index.php?controller=AdminModules&configure="

// AdminURL returns the back-office base URL. It fails with a
// precondition_failed error when ctx is not running the back office.
func AdminURL(ctx ShopContext) (string, error) {
	dir, ok := ctx.AdminDir()
	if !ok {
		return "", httperror.NewPreconditionFailed("not in back-office context")
	}
	return ctx.BaseURL(true) + dir + "/", nil
}

// UploadURL returns the base URL for uploaded files.
func UploadURL(ctx ShopContext) string {
	return ctx.BaseURL(true) + "upload/"
}

// DownloadURL returns the base URL for downloadable products.
func DownloadURL(ctx ShopContext) string {
	return ctx.BaseURL(true) + "download/"
}

// ModuleConfigureURL returns the back-office deep link to the configuration
// page of the named module. It fails with an invalid_module_name error when
// the name does not pass the supplied predicate, and propagates AdminURL's
// precondition failure.
//
// The module name is appended without percent-encoding; the predicate is
// expected to restrict it to URL-safe characters.
func ModuleConfigureURL(ctx ShopContext, isModuleName IsModuleNameFn, name string) (string, error) {
	if isModuleName == nil || !isModuleName(name) {
		return "", httperror.NewInvalidModuleName("invalid module name %q", name)
	}
	adminURL, err := AdminURL(ctx)
	if err != nil {
		return "", err
	}
	return adminURL + moduleConfigurePath + name, nil
}

// ParseBaseURL parses a configured base URL, requiring a scheme and a host.
func ParseBaseURL(s string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("base URL %q must include protocol and domain", s)
	}
	return u, nil
}

package shopcfg

import (
	"strings"

	"github.com/jinzhu/copier"
)

// Shop derives shop URLs from a settings snapshot. It satisfies the
// ShopContext contract used by the urlutil resolvers.
type Shop struct {
	settings Settings
}

// NewShop returns a Shop over a private copy of the settings, so later
// mutation of the caller's value does not leak into built URLs.
func NewShop(settings *Settings) *Shop {
	s := new(Shop)
	if settings != nil {
		s.settings = *settings.Clone()
	}
	return s
}

// BaseURL returns the shop base URL, protocol and domain, with a trailing
// slash guaranteed. With ssl the SSL base URL is preferred when configured.
func (s *Shop) BaseURL(ssl bool) string {
	u := s.settings.BaseURL
	if ssl && s.settings.SSLBaseURL != "" {
		u = s.settings.SSLBaseURL
	}
	if u != "" && !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}

// AdminDir returns the back-office folder base name. ok is false when the
// process does not serve the back office or no folder is configured.
func (s *Shop) AdminDir() (string, bool) {
	if !s.settings.BackOffice || s.settings.AdminDir == "" {
		return "", false
	}
	return s.settings.AdminDir, true
}

// Clone returns an independent copy of the settings.
func (s *Settings) Clone() *Settings {
	dst := new(Settings)
	copier.Copy(dst, s)
	return dst
}

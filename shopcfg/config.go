// Package shopcfg loads and exposes the storefront settings that URL
// construction depends on: the shop domains, base URLs and the back-office
// location.
package shopcfg

import (
	"encoding/json"
	"io/ioutil"
	"strings"

	"github.com/juju/errors"
	"gopkg.in/yaml.v2"

	"github.com/go-shopfront/shopfront/urlutil"
)

// Setting names accepted by Settings.GetString.
const (
	// KeyShopDomain names the canonical shop domain setting
	KeyShopDomain = "shop_domain"
	// KeyShopDomainSSL names the shop domain used for SSL links
	KeyShopDomainSSL = "shop_domain_ssl"
)

// Settings provides the shop configuration. Values for the domain settings
// may use the file:// or env:// schemes to load the actual value from a file
// or an environment variable.
type Settings struct {
	// ShopDomain is the canonical domain the shop is served from
	ShopDomain string `json:"shop_domain,omitempty" yaml:"shop_domain,omitempty"`

	// ShopDomainSSL is the domain used when links are built over SSL
	ShopDomainSSL string `json:"shop_domain_ssl,omitempty" yaml:"shop_domain_ssl,omitempty"`

	// BaseURL is the shop base URL, protocol and domain, with trailing slash
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// SSLBaseURL is the shop base URL for SSL links; BaseURL is used when empty
	SSLBaseURL string `json:"ssl_base_url,omitempty" yaml:"ssl_base_url,omitempty"`

	// AdminDir is the base name of the back-office folder
	AdminDir string `json:"admin_dir,omitempty" yaml:"admin_dir,omitempty"`

	// BackOffice specifies whether the process serves the back office
	BackOffice bool `json:"back_office,omitempty" yaml:"back_office,omitempty"`
}

// LoadSettings returns settings loaded from a JSON or YAML file, selected by
// the file suffix. Domain values given with a file:// or env:// schema are
// resolved, and configured base URLs are checked to parse.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		return nil, errors.New("invalid path")
	}

	body, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Annotate(err, "unable to read configuration file")
	}

	var cfg = new(Settings)
	if strings.HasSuffix(path, ".json") {
		err = json.Unmarshal(body, cfg)
	} else {
		err = yaml.Unmarshal(body, cfg)
	}
	if err != nil {
		return nil, errors.Annotate(err, "failed to unmarshal configuration")
	}

	if cfg.ShopDomain, err = LoadValueWithSchema(cfg.ShopDomain); err != nil {
		return nil, errors.Annotate(err, "unable to load shop_domain")
	}
	if cfg.ShopDomainSSL, err = LoadValueWithSchema(cfg.ShopDomainSSL); err != nil {
		return nil, errors.Annotate(err, "unable to load shop_domain_ssl")
	}

	for _, u := range []string{cfg.BaseURL, cfg.SSLBaseURL} {
		if u == "" {
			continue
		}
		if _, err = urlutil.ParseBaseURL(u); err != nil {
			return nil, errors.Annotatef(err, "invalid base URL %q", u)
		}
	}

	return cfg, nil
}

// GetString returns the named setting, or empty string when it is not
// configured or the name is unknown.
func (s *Settings) GetString(name string) string {
	if s == nil {
		return ""
	}
	switch name {
	case KeyShopDomain:
		return s.ShopDomain
	case KeyShopDomainSSL:
		return s.ShopDomainSSL
	}
	return ""
}

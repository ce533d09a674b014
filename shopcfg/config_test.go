package shopcfg_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-shopfront/shopfront/shopcfg"
)

func Test_LoadSettings_YAML(t *testing.T) {
	cfg, err := shopcfg.LoadSettings("testdata/shop.yaml")
	require.NoError(t, err)

	assert.Equal(t, "shop.com", cfg.ShopDomain)
	assert.Equal(t, "secure.shop.com", cfg.ShopDomainSSL)
	assert.Equal(t, "http://shop.com/", cfg.BaseURL)
	assert.Equal(t, "https://secure.shop.com/", cfg.SSLBaseURL)
	assert.Equal(t, "admin123", cfg.AdminDir)
	assert.True(t, cfg.BackOffice)
}

func Test_LoadSettings_JSON(t *testing.T) {
	cfg, err := shopcfg.LoadSettings("testdata/shop.json")
	require.NoError(t, err)

	assert.Equal(t, "shop.com", cfg.ShopDomain)
	assert.Equal(t, "", cfg.ShopDomainSSL)
	assert.False(t, cfg.BackOffice)
}

func Test_LoadSettings_Errors(t *testing.T) {
	tcases := []struct {
		tname string
		path  string
	}{
		{"empty_path", ""},
		{"missing_file", "testdata/no_such_file.yaml"},
	}

	for _, tc := range tcases {
		t.Run(tc.tname, func(t *testing.T) {
			_, err := shopcfg.LoadSettings(tc.path)
			assert.Error(t, err)
		})
	}
}

func Test_LoadSettings_InvalidBaseURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shop.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("base_url: shop.com/\n"), 0644))

	_, err := shopcfg.LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base URL")
}

func Test_LoadSettings_ValueSchemas(t *testing.T) {
	dir := t.TempDir()
	domainFile := filepath.Join(dir, "domain")
	require.NoError(t, ioutil.WriteFile(domainFile, []byte("file.shop.com\n"), 0644))
	os.Setenv("TEST_SHOP_DOMAIN_SSL", "env.shop.com")
	defer os.Unsetenv("TEST_SHOP_DOMAIN_SSL")

	path := filepath.Join(dir, "shop.yaml")
	content := "shop_domain: file://" + domainFile + "\nshop_domain_ssl: env://TEST_SHOP_DOMAIN_SSL\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))

	cfg, err := shopcfg.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "file.shop.com", cfg.ShopDomain)
	assert.Equal(t, "env.shop.com", cfg.ShopDomainSSL)
}

func Test_LoadValueWithSchema_NotSet(t *testing.T) {
	os.Unsetenv("TEST_SHOP_MISSING")
	_, err := shopcfg.LoadValueWithSchema("env://TEST_SHOP_MISSING")
	assert.Error(t, err)

	v, err := shopcfg.LoadValueWithSchema("plain.shop.com")
	require.NoError(t, err)
	assert.Equal(t, "plain.shop.com", v)
}

func Test_Settings_GetString(t *testing.T) {
	cfg := &shopcfg.Settings{ShopDomain: "shop.com", ShopDomainSSL: "secure.shop.com"}
	assert.Equal(t, "shop.com", cfg.GetString(shopcfg.KeyShopDomain))
	assert.Equal(t, "secure.shop.com", cfg.GetString(shopcfg.KeyShopDomainSSL))
	assert.Equal(t, "", cfg.GetString("unknown"))

	var nilCfg *shopcfg.Settings
	assert.Equal(t, "", nilCfg.GetString(shopcfg.KeyShopDomain))
}

func Test_Settings_Clone(t *testing.T) {
	cfg := &shopcfg.Settings{ShopDomain: "shop.com", AdminDir: "admin123"}
	clone := cfg.Clone()
	require.Equal(t, cfg, clone)

	clone.ShopDomain = "other.com"
	assert.Equal(t, "shop.com", cfg.ShopDomain)
}

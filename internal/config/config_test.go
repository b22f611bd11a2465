package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/config"
)

func TestConfigValidate(t *testing.T) {
	tt := []struct {
		name   string
		config config.Config
		err    string
	}{
		{name: "missing url", config: config.Config{TokenUrl: "http://localhost/token"}, err: "url is required"},
		{name: "missing token url", config: config.Config{Url: "http://localhost/api"}, err: "token url is required"},
		{name: "invalid url", config: config.Config{Url: "not a url", TokenUrl: "http://localhost/token"}, err: "could not parse URL"},
		{name: "invalid token url", config: config.Config{Url: "http://localhost/api", TokenUrl: "::"}, err: "could not parse token URL"},
		{name: "negative page size", config: config.Config{Url: "http://localhost/api", TokenUrl: "http://localhost/token", PageSize: -1}, err: "page size must be >= 0"},
		{name: "bad theme", config: config.Config{Url: "http://localhost/api", TokenUrl: "http://localhost/token", Theme: "solarized"}, err: "theme must be light or dark"},
		{name: "valid", config: config.Config{Url: "http://localhost/api", TokenUrl: "http://localhost/token", PageSize: 25, Theme: "dark"}},
		{name: "valid without optionals", config: config.Config{Url: "http://localhost/api", TokenUrl: "http://localhost/token"}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.err == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.err)
		})
	}
}

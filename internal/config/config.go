package config

import (
	"fmt"
	"net/url"
)

// Config represents the remote endpoint configuration shared by all commands.
type Config struct {
	Url      string // Root URL of the data API
	TokenUrl string // URL of the credential endpoint
	PageSize int    // Records per page; 0 means the store default
	Theme    string // Dashboard theme preference (light|dark)
}

// Print the Config.
func (c Config) Print() {
	fmt.Printf("Url: %v\n", c.Url)
	fmt.Printf("TokenUrl: %v\n", c.TokenUrl)
	fmt.Printf("PageSize: %v\n", c.PageSize)
	fmt.Printf("Theme: %v\n", c.Theme)
}

// Validate the Config making sure all required fields are present and valid
func (c Config) Validate() error {
	if c.Url == "" {
		return fmt.Errorf("url is required")
	}

	if c.TokenUrl == "" {
		return fmt.Errorf("token url is required")
	}

	if _, err := url.ParseRequestURI(c.Url); err != nil {
		return fmt.Errorf("could not parse URL: %w", err)
	}

	if _, err := url.ParseRequestURI(c.TokenUrl); err != nil {
		return fmt.Errorf("could not parse token URL: %w", err)
	}

	if c.PageSize < 0 {
		return fmt.Errorf("page size must be >= 0")
	}

	if c.Theme != "" && c.Theme != "light" && c.Theme != "dark" {
		return fmt.Errorf("theme must be light or dark")
	}

	return nil
}

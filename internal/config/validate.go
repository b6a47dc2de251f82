package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCMS(); err != nil {
		return err
	}
	if err := c.validateGenerator(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateCMS() error {
	if c.CMS.RequestTimeout <= 0 {
		return errors.New("cms.request_timeout must be positive")
	}
	seen := make(map[string]struct{}, len(c.CMS.Sites))
	for i, site := range c.CMS.Sites {
		if site.ID == "" {
			return fmt.Errorf("cms.site[%d].id must be set", i)
		}
		if _, dup := seen[site.ID]; dup {
			return fmt.Errorf("cms.site id %q configured twice", site.ID)
		}
		seen[site.ID] = struct{}{}
		if site.BaseURL == "" {
			return fmt.Errorf("cms.site %q: base_url must be set", site.ID)
		}
		parsed, err := url.Parse(site.BaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("cms.site %q: base_url %q is not a valid URL", site.ID, site.BaseURL)
		}
		if site.Username == "" {
			return fmt.Errorf("cms.site %q: username must be set", site.ID)
		}
	}
	return nil
}

func (c *Config) validateGenerator() error {
	if c.Generator.TimeoutSeconds <= 0 {
		return errors.New("generator.timeout_seconds must be positive")
	}
	if c.Generator.BaseURL == "" {
		return errors.New("generator.base_url must be set")
	}
	if c.Generator.Model == "" {
		return errors.New("generator.model must be set")
	}
	return nil
}

func (c *Config) validateNotifications() error {
	if c.Notifications.RequestTimeout <= 0 {
		return errors.New("notifications.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

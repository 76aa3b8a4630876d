package config

import (
	"fmt"
	"net/url"
)

// Validate checks config values for life correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Tools validation
	if c.Tools.Shell == "" {
		errs = append(errs, "tools.shell must not be empty")
	}
	if c.Tools.FilePerm == 0 || c.Tools.FilePerm > 0o777 {
		errs = append(errs, "tools.file_perm must be a permission between 0001 and 0777")
	}
	if c.Tools.DirPerm == 0 || c.Tools.DirPerm > 0o777 {
		errs = append(errs, "tools.dir_perm must be a permission between 0001 and 0777")
	}
	if c.Tools.DirPerm&0o100 == 0 {
		errs = append(errs, "tools.dir_perm must let the owner traverse created directories")
	}

	// Registry validation
	if c.Registry.Endpoint == "" {
		errs = append(errs, "registry.endpoint must not be empty")
	} else if u, err := url.Parse(c.Registry.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, "registry.endpoint must be an absolute URL")
	}
	if c.Registry.Version == "" {
		errs = append(errs, "registry.version must not be empty")
	}
	if c.Registry.IndexID == "" {
		errs = append(errs, "registry.index_id must not be empty")
	}
	if c.Registry.TimeoutSeconds < 1 {
		errs = append(errs, "registry.timeout_seconds must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

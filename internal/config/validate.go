package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Dictionary.Backend {
	case "dpd":
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the dpd backend")
		}
	case "local":
		if c.Dictionary.PrimaryPath == "" {
			return fmt.Errorf("dictionary.primary_path is required for the local backend")
		}
	default:
		return fmt.Errorf("dictionary.backend must be dpd or local (got %q)", c.Dictionary.Backend)
	}

	if c.Database.MaxBindParams < 1 || c.Database.MaxBindParams > 999 {
		return fmt.Errorf("database.max_bind_params must be in [1, 999] (got %d)", c.Database.MaxBindParams)
	}

	switch c.Output.Format {
	case "compact", "rich":
	default:
		return fmt.Errorf("output.format must be compact or rich (got %q)", c.Output.Format)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error (got %q)", c.Log.Level)
	}

	return nil
}

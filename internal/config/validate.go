package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Market.DescriptorPath == "" {
		return errors.New("market.descriptor_path is required")
	}
	if c.Market.Name == "" {
		return errors.New("market.name is required")
	}
	if c.Market.Currency == "" {
		return errors.New("market.currency is required")
	}

	if err := validateTimeOfDay("market.open_time", c.Market.OpenTime); err != nil {
		return err
	}
	if err := validateTimeOfDay("market.close_time", c.Market.CloseTime); err != nil {
		return err
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	return nil
}

func validateTimeOfDay(field, value string) error {
	if _, err := time.Parse("15:04:05", value); err != nil {
		return fmt.Errorf("%s must be an HH:MM:SS time of day, got %q", field, value)
	}
	return nil
}

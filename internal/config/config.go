package config

// Config is the root configuration for the marketinfo tool.
type Config struct {
	Market MarketConfig `yaml:"market"`
	Log    LogConfig    `yaml:"log"`
}

// MarketConfig names the descriptor file and the metadata stamped onto the
// loaded market.
type MarketConfig struct {
	DescriptorPath string `yaml:"descriptor_path"` // Path to the TOML composition descriptor
	Name           string `yaml:"name"`            // Market display name
	OpenTime       string `yaml:"open_time"`       // Session open, HH:MM:SS in UTC
	CloseTime      string `yaml:"close_time"`      // Session close, HH:MM:SS in UTC
	Currency       string `yaml:"currency"`        // Trading currency
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

package config

// Default values for optional configuration fields; the market defaults are
// the BME Ibex35 session.
const (
	DefaultMarketName = "BME Ibex35 Index"
	DefaultOpenTime   = "08:00:00"
	DefaultCloseTime  = "16:30:00"
	DefaultCurrency   = "euro"
	DefaultLogLevel   = "info"
)

func (c *Config) applyDefaults() {
	if c.Market.Name == "" {
		c.Market.Name = DefaultMarketName
	}
	if c.Market.OpenTime == "" {
		c.Market.OpenTime = DefaultOpenTime
	}
	if c.Market.CloseTime == "" {
		c.Market.CloseTime = DefaultCloseTime
	}
	if c.Market.Currency == "" {
		c.Market.Currency = DefaultCurrency
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

package loader

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/bmequant/ibex-data/internal/market"
	"github.com/bmequant/ibex-data/internal/model"
)

// Descriptor keys. full_name, ticker and isin are required in every section;
// name and extra_id are optional. When name is absent the short name falls
// back to the full_name value.
const (
	keyFullName = "full_name"
	keyName     = "name"
	keyTicker   = "ticker"
	keyISIN     = "isin"
	keyExtraID  = "extra_id"
)

// Load reads the descriptor at path and builds a Market carrying meta.
//
// The load is all-or-nothing: the first unreadable file, TOML syntax error,
// invalid section or duplicate ticker aborts it, and no Market is returned.
func Load(path string, meta market.Metadata) (*market.Market, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
	}

	// Table of tables: section key -> field key -> scalar.
	var table map[string]map[string]any
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	companies := make(map[string]model.Company, len(table))
	for section, fields := range table {
		c, err := companyFromSection(section, fields)
		if err != nil {
			return nil, err
		}
		if _, exists := companies[c.Ticker()]; exists {
			return nil, fmt.Errorf("%w: %q declared by more than one section", ErrDuplicateTicker, c.Ticker())
		}
		companies[c.Ticker()] = c
	}

	return market.New(meta, companies), nil
}

// LoadIbex35 loads an Ibex35 descriptor, stamping the market with the BME
// Ibex35 metadata.
func LoadIbex35(path string) (*market.Market, error) {
	return Load(path, market.Ibex35Metadata())
}

// companyFromSection validates one descriptor section and builds its Company.
func companyFromSection(section string, fields map[string]any) (model.Company, error) {
	fullName, err := requiredString(section, fields, keyFullName)
	if err != nil {
		return model.Company{}, err
	}
	ticker, err := requiredString(section, fields, keyTicker)
	if err != nil {
		return model.Company{}, err
	}
	isin, err := requiredString(section, fields, keyISIN)
	if err != nil {
		return model.Company{}, err
	}

	shortName := optionalString(fields, keyName)
	if shortName == "" {
		shortName = fullName
	}

	return model.NewCompany(fullName, shortName, ticker, isin, optionalString(fields, keyExtraID)), nil
}

// requiredString extracts a required key, rejecting absent, non-string and
// empty values.
func requiredString(section string, fields map[string]any, key string) (string, error) {
	s, ok := fields[key].(string)
	if !ok || s == "" {
		return "", &FieldError{Section: section, Key: key}
	}
	return s, nil
}

// optionalString extracts an optional key; absence or a non-string value
// yields "".
func optionalString(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

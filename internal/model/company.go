package model

// Company describes one tradable legal entity listed on an Ibex index.
//
// All fields are set once by NewCompany and never change afterwards, so a
// Company value can be shared freely across goroutines.
type Company struct {
	fullName  string // Legal name, "" when not supplied
	shortName string // Common/contracted name
	ticker    string // Exchange symbol, natural key within a market
	isin      string // International Securities Identification Number
	extraID   string // Jurisdiction registry ID (e.g. Spanish NIF), "" when none
}

// NewCompany builds a Company from its identifying attributes.
//
// fullName and extraID are optional: pass "" for a company whose legal name was
// not provided, or which is registered in a jurisdiction that issues no extra
// identifier. Input values are not checked against any identifier format.
func NewCompany(fullName, shortName, ticker, isin, extraID string) Company {
	return Company{
		fullName:  fullName,
		shortName: shortName,
		ticker:    ticker,
		isin:      isin,
		extraID:   extraID,
	}
}

// Name returns the most common name of the stock.
func (c Company) Name() string {
	return c.shortName
}

// FullName returns the legal name of the stock. The second return is false
// when no full name was supplied, common when the short name is the legal one.
func (c Company) FullName() (string, bool) {
	return c.fullName, c.fullName != ""
}

// Ticker returns the exchange symbol of the stock.
func (c Company) Ticker() string {
	return c.ticker
}

// ISIN returns the International Securities Identification Number of the stock.
func (c Company) ISIN() string {
	return c.isin
}

// ExtraID returns the jurisdiction-specific registry identifier of the stock,
// such as the NIF of companies registered in Spain. The second return is false
// for companies whose jurisdiction issues none.
func (c Company) ExtraID() (string, bool) {
	return c.extraID, c.extraID != ""
}

// String renders the company as "TICKER: NAME".
func (c Company) String() string {
	return c.ticker + ": " + c.shortName
}

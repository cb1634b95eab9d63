package market

import (
	"strings"

	"github.com/bmequant/ibex-data/internal/model"
)

// Metadata holds the fixed attributes of a market: display name, trading
// session bounds as HH:MM:SS times of day in UTC, and currency.
type Metadata struct {
	Name      string
	OpenTime  string
	CloseTime string
	Currency  string
}

// Ibex35Metadata returns the metadata of the BME Ibex35 index.
func Ibex35Metadata() Metadata {
	return Metadata{
		Name:      "BME Ibex35 Index",
		OpenTime:  "08:00:00",
		CloseTime: "16:30:00",
		Currency:  "euro",
	}
}

// Market is a named index and its constituent set, indexed by ticker.
type Market struct {
	meta      Metadata
	companies map[string]model.Company
}

// New builds a Market from its metadata and a ticker-keyed constituent map.
//
// The map is copied, so the caller's reference cannot mutate the registry
// after construction. New performs no validation of the constituent set
// against any authoritative index composition; callers must supply a map that
// reflects the composition at construction time.
func New(meta Metadata, companies map[string]model.Company) *Market {
	m := &Market{
		meta:      meta,
		companies: make(map[string]model.Company, len(companies)),
	}
	for ticker, c := range companies {
		m.companies[ticker] = c
	}
	return m
}

// Name returns the display name of the market.
func (m *Market) Name() string {
	return m.meta.Name
}

// OpenTime returns the session open as an HH:MM:SS time of day in UTC.
func (m *Market) OpenTime() string {
	return m.meta.OpenTime
}

// CloseTime returns the session close as an HH:MM:SS time of day in UTC.
func (m *Market) CloseTime() string {
	return m.meta.CloseTime
}

// Currency returns the currency the market trades in.
func (m *Market) Currency() string {
	return m.meta.Currency
}

// Tickers returns the tickers of every registered constituent. The slice is
// freshly allocated on each call and its order is not defined.
func (m *Market) Tickers() []string {
	tickers := make([]string, 0, len(m.companies))
	for ticker := range m.companies {
		tickers = append(tickers, ticker)
	}
	return tickers
}

// Companies returns every registered constituent, in undefined order.
func (m *Market) Companies() []model.Company {
	companies := make([]model.Company, 0, len(m.companies))
	for _, c := range m.companies {
		companies = append(companies, c)
	}
	return companies
}

// CompanyByTicker returns the constituent whose ticker equals ticker exactly,
// byte for byte. The false arm means no constituent matched; absence is a
// normal outcome, not a failure.
func (m *Market) CompanyByTicker(ticker string) (model.Company, bool) {
	c, ok := m.companies[ticker]
	return c, ok
}

// CompaniesByName returns every constituent whose short name contains query,
// compared case-insensitively. A broad query like "bank" may match several
// constituents. The false arm means the result set is empty.
func (m *Market) CompaniesByName(query string) ([]model.Company, bool) {
	query = strings.ToLower(query)

	var matches []model.Company
	for _, c := range m.companies {
		if strings.Contains(strings.ToLower(c.Name()), query) {
			matches = append(matches, c)
		}
	}
	return matches, len(matches) > 0
}

// String renders the market as its display name.
func (m *Market) String() string {
	return m.meta.Name
}

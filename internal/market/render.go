package market

import (
	"fmt"
	"sort"
	"strings"
)

// Describe renders a multi-line diagnostic listing of the market: its
// metadata followed by one line per constituent, sorted by ticker so the
// output is stable regardless of map iteration order.
func Describe(m *Market) string {
	tickers := m.Tickers()
	sort.Strings(tickers)

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, %s-%s UTC), %d constituents\n",
		m.Name(), m.Currency(), m.OpenTime(), m.CloseTime(), len(tickers))

	for _, ticker := range tickers {
		c, _ := m.CompanyByTicker(ticker)
		fmt.Fprintf(&b, "  %-6s %-14s isin=%s", c.Ticker(), c.Name(), c.ISIN())
		if id, ok := c.ExtraID(); ok {
			fmt.Fprintf(&b, " extra_id=%s", id)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

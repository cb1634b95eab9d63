// Package market implements the in-memory registry of an index's constituents.
//
// A Market is built once from a ticker-keyed map of companies and is read-only
// afterwards: there is no add/remove API, so a single instance can serve any
// number of concurrent readers without locking. Rebalancing the index means
// building a new Market.
package market

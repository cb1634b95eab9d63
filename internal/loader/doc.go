// Package loader builds a market registry from a TOML descriptor file.
//
// A descriptor holds one table per constituent, keyed by ticker:
//
//	[CLNX]
//	full_name = "Cellnex Telecom S.A."
//	ticker    = "CLNX"
//	isin      = "ES0105066007"
//	extra_id  = "A64907306"
//
// Loading is a single pass that fails on the first problem; there is never a
// partially filled market. Failures are classified by sentinel error so
// callers can tell an unreadable file from malformed TOML from an invalid
// section.
package loader

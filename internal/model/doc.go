// Package model defines the shared data types of the Ibex market data library.
//
// Conventions:
//   - Identifiers: exchange tickers and ISINs are opaque strings; no checksum
//     or format validation happens at this layer.
//   - Optional attributes: reported through comma-ok accessors; the false arm
//     means the attribute was not supplied at construction.
package model

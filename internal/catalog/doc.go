// Package catalog parses the two whitespace-delimited PDG-style text
// files describing a hadron catalog and its decay channels, and builds a
// populated [network.Network] from them.
//
// Catalog loading is fatal-on-error by design: a malformed line or a
// missing file aborts construction rather than returning a partially
// populated network, since nothing downstream can safely operate on an
// incomplete particle dictionary.
package catalog

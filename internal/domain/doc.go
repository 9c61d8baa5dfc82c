// Package domain contains the core model for the bimtek registration client.
//
// The domain is transport- and persistence-agnostic: it does not depend on
// net/http, JSON decoding, or the filesystem. Infra/adapters map into/from
// these types.
package domain

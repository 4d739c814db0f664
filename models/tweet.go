// Package models defines data structures for configuration and tweet records.
package models

// Tweet is the two-field projection of one decoded tweet record.
// Any other fields present on the wire are ignored by the JSON decoder.
type Tweet struct {
	Lang string `json:"lang"`
	Text string `json:"text"`
}

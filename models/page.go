// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the wire shapes exchanged with the brokerage API:
// paginated envelopes, response resources, and the request/option types
// accepted by the session client.
//
// Response structs mirror the upstream JSON one-to-one and are returned to
// callers unchanged; the client performs no caching or normalisation.
package models

// Page is the paginated list envelope used by every collection endpoint.
// Next and Previous are absolute URLs that can be followed with the client's
// URL passthrough.
type Page[T any] struct {
	Count    *int    `json:"count,omitempty"`
	Next     *string `json:"next,omitempty"`
	Previous *string `json:"previous,omitempty"`
	Results  []T     `json:"results"`
}

// First returns the first result and true, or the zero value and false when
// the page is empty.
func (p Page[T]) First() (T, bool) {
	var zero T
	if len(p.Results) == 0 {
		return zero, false
	}
	return p.Results[0], true
}

// HasNext reports whether the server advertised a following page.
func (p Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

// Package cms implements the taxonomy-and-content engine behind the Raj
// Khabar publishing API: categories and subcategories, the four content
// kinds bound to them (posts, cards, table rows, header components), table
// row validation against named column schemas, and the guarded/forced bulk
// delete coordinator.
//
// The package holds no state beyond injected store handles; every operation
// re-reads current state. Slug pre-checks are best-effort early failures;
// the database unique indexes are the real enforcement under concurrency.
package cms

import (
	"context"

	"rajkhabar/internal/store"
)

// Notification is the payload pushed to registered devices.
type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Notifier delivers push notifications. Implementations must be safe for
// concurrent use. Delivery failures are logged by the caller, never
// propagated to API clients.
type Notifier interface {
	NotifyTokens(ctx context.Context, tokens []string, n Notification) error
}

// Service is the content engine. Construct with New; all dependencies are
// injected, there is no package-level state.
type Service struct {
	stores     store.Stores
	notifier   Notifier
	strictRows bool
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier wires a push-notification gateway. Without one, publish
// events are logged and dropped.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithStrictRows enables per-column required/type checking when validating
// table rows, on top of the always-on count and link checks.
func WithStrictRows() Option {
	return func(s *Service) { s.strictRows = true }
}

// New creates a Service over the given stores.
func New(st store.Stores, opts ...Option) *Service {
	s := &Service{stores: st}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Package handler exposes the HTTP handlers for the flavor API, the HTML
// pages and the diagnostic endpoints.  Handlers depend on small interfaces
// so tests can swap the database, broker and upstream for fakes.
package handler

import (
    "context"

    "github.com/iliyamo/ice-cream-parlor/internal/model"
)

// FlavorStore is the data access contract the handlers rely on.  It is
// satisfied by *repository.FlavorRepo.
type FlavorStore interface {
    List(ctx context.Context) ([]*model.Flavor, error)
    Create(ctx context.Context, name string, description *string) (*model.Flavor, error)
    GetByID(ctx context.Context, id uint64) (*model.Flavor, bool, error)
}

// Pinger reports whether the store answers a trivial query.
type Pinger interface {
    Ping(ctx context.Context) error
}

// EventPublisher announces stored flavors.  Failures never fail a request.
type EventPublisher interface {
    PublishFlavorCreated(ctx context.Context, f *model.Flavor) error
}

// Upstream is the outbound reachability check behind /ping.
type Upstream interface {
    Echo(ctx context.Context) (string, error)
}

// errorBody is the fixed shape of every JSON error response.
func errorBody(msg string) map[string]string {
    return map[string]string{"error": msg}
}

// Package queue defines message payloads exchanged over the message broker.
package queue

import (
    "time"

    "github.com/iliyamo/ice-cream-parlor/internal/model"
)

// FlavorCreatedQueue is the durable queue receiving one message per insert.
const FlavorCreatedQueue = "flavor.created"

// FlavorCreatedEvent is published after a flavor has been stored.  It
// carries the persisted record so consumers never need to query the
// database.
type FlavorCreatedEvent struct {
    FlavorID    uint64  `json:"flavor_id"`
    Name        string  `json:"name"`
    Description *string `json:"description"`
    CreatedAt   string  `json:"created_at"`
    PublishedAt string  `json:"published_at"`
}

// NewFlavorCreatedEvent builds the event for a stored flavor.
func NewFlavorCreatedEvent(f *model.Flavor, now time.Time) FlavorCreatedEvent {
    return FlavorCreatedEvent{
        FlavorID:    f.ID,
        Name:        f.Name,
        Description: f.Description,
        CreatedAt:   f.CreatedAt.UTC().Format(time.RFC3339),
        PublishedAt: now.UTC().Format(time.RFC3339),
    }
}

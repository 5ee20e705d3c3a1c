package model

import "time"

// Flavor represents one ice-cream flavor as stored in the
// `ice_cream_flavors` table.  Rows are created once and never
// updated, so every field is effectively immutable after insert.
//
// Fields:
//  ID          – primary key assigned by the store (AUTO_INCREMENT).
//  Name        – trimmed, non-empty flavor name.
//  Description – optional trimmed text; nil when the column is NULL.
//  CreatedAt   – insertion timestamp assigned by the store.
type Flavor struct {
    ID          uint64    `json:"id"`          // ice_cream_flavors.id
    Name        string    `json:"name"`        // ice_cream_flavors.name
    Description *string   `json:"description"` // ice_cream_flavors.description (NULL -> nil)
    CreatedAt   time.Time `json:"created_at"`  // ice_cream_flavors.created_at
}

// HasDescription reports whether the flavor carries a description.
func (f *Flavor) HasDescription() bool {
    return f.Description != nil
}

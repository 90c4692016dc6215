// Package models defines the read-only views returned by the catalog,
// identity, and playlist components.
//
// Every type here is a plain data-transfer struct produced by an explicit
// query at the point of need. No view carries a live reference to related
// rows; cross-entity data (artist name on a song, song count on a playlist)
// is denormalized into the view by the query that built it.
package models

// Package service contains the use-case layer. It is the single point of
// containment for store faults: no repository error escapes to a handler.
// Read operations fail open (log and degrade to empty/absent/zeroed
// results, availability over strictness); write operations fail closed
// (log and report false so the caller can surface an error).
package service

import "context"

// RequestMeta carries the request attributes recorded alongside contact
// messages and analytics events.
type RequestMeta struct {
	IP        string
	UserAgent string
	Referrer  string
}

// Seeder bootstraps default content. Implemented by the seed package;
// triggered lazily from the profile read path when the store is empty.
type Seeder interface {
	Run(ctx context.Context) error
}

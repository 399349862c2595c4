// Package storage is the persistence layer behind the session manager. It is
// deliberately best-effort: a store that cannot read or write must degrade to
// "absent"/false, never fail the caller. The manager treats its in-memory
// session as the source of truth and this layer as a reload cache.
package storage

import "context"

// Fixed keys of the persisted session record. A record is only usable when
// all three are simultaneously present and valid.
const (
	KeyToken          = "token"
	KeyUser           = "user"
	KeyTokenTimestamp = "tokenTimestamp"
)

// AuthKeys lists the session record keys in their fixed write/purge order.
var AuthKeys = []string{KeyToken, KeyUser, KeyTokenTimestamp}

// Store is a validated key/value store. Get never fails and never yields the
// literal strings "undefined" or "null"; both normalize to absent.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) bool
	Remove(ctx context.Context, key string) bool
}

// ValidValue reports whether a raw stored value counts as present.
func ValidValue(v string) bool {
	return v != "" && v != "undefined" && v != "null"
}

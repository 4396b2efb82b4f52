package interfaces

import "context"

// IRecordStore abstracts the per-user collection persistence.
//
// Keys are "{recordKind}_{userId}" and each value holds the caller's whole
// collection as one JSON array blob. SaveCollection overwrites the blob
// unconditionally: the read-modify-write cycle around it is not atomic and
// two concurrent writers to the same key race last-write-wins on the full
// collection. That is the service's documented concurrency contract; do not
// add conditional writes here without changing the contract everywhere.
type IRecordStore interface {
	// LoadCollection returns the stored blob, or nil when the key is absent.
	LoadCollection(ctx context.Context, key string) ([]byte, error)
	SaveCollection(ctx context.Context, key string, payload []byte) error
}

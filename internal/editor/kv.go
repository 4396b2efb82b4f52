// Package editor holds the client-side estimate editing core: the document
// state store, the date-keyed estimate number sequence and the offline
// supplier/client catalog. Everything that persists does so through the KV
// port so the lifecycle (open on app start, explicit close) stays under the
// embedding application's control.
package editor

// KV is the editor's local persistence port.
//
// Get returns nil for a missing key. Consumers read permissively: a corrupt
// or missing value is treated as empty state, never an error surfaced to the
// user.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

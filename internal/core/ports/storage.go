package ports

import "errors"

// ErrKeyNotFound is returned by Storage.Get for absent keys.
var ErrKeyNotFound = errors.New("storage: key not found")

// Storage keys making up the entire persisted-state surface of the client.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyCart  = "cart"
)

// Storage is the durable key-value port the state containers persist
// through. Implementations may target files, Redis, MongoDB or memory;
// the stores only rely on Get/Set/Delete of opaque byte payloads.
//
// Delete of an absent key is not an error. No cross-process coordination
// is provided: concurrent writers race and the last writer wins.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

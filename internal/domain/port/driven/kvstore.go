package driven

import "context"

// Well-known keys in the persistent store. KeyAuthToken and KeyUserData
// together hold the durable copy of the session; they are written as a
// pair by the session service and cleared as a pair by both the session
// service and the request authorizer.
const (
	KeyAuthToken = "authToken"
	KeyUserData  = "userData"
	KeyInstallID = "installId"
)

// KeyValueStore defines the driven port for durable device-local
// key-value persistence. Values survive process restarts.
type KeyValueStore interface {
	// Set stores or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// Get retrieves the value for key. Returns ("", nil) if absent.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes the value for key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error
}

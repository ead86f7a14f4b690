// Package storage defines the key-value capability used for contacts,
// alerts and incident records. Values are stored as JSON documents.
package storage

import "context"

// Key names shared by the services that persist through a KV.
const (
	KeyEmergencyContacts = "emergencyContacts"
	KeyUserName          = "userName"
	KeyEmergencyAlerts   = "emergencyAlerts"
	KeyIncidents         = "incidents"
	KeyRecordings        = "recordings"
)

type KV interface {
	// Get decodes the value stored under key into dest and reports whether
	// the key was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
}

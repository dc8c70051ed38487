package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Eterniance/whist-points/internal/repositories/session Repository

import (
	"context"
)

// Repository defines the interface for session persistence. A session
// snapshot covers the roster and the hands historic; an in-flight hand
// builder is never persisted.
type Repository interface {
	// SaveSession persists a session snapshot
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session snapshot by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// DeleteSession removes a session snapshot
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// ListSessionIDs retrieves the IDs of all stored sessions
	ListSessionIDs(ctx context.Context, input *ListSessionIDsInput) (*ListSessionIDsOutput, error)
}

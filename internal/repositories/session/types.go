package session

import "github.com/Eterniance/whist-points/internal/models"

// SaveSessionInput contains parameters for persisting a session
type SaveSessionInput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the retrieved session
type GetSessionOutput struct {
	Session *models.Session
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	SessionID string
}

// ListSessionIDsInput contains parameters for listing sessions
type ListSessionIDsInput struct{}

// ListSessionIDsOutput contains the stored session IDs
type ListSessionIDsOutput struct {
	SessionIDs []string
}

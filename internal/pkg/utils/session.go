package utils

import (
	"context"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// GetSessionFromContext decodes the session JSON the auth middleware stored
// on the request context.
func GetSessionFromContext(ctx context.Context) (*models.Session, error) {
	sessionData, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	return session, nil
}

package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lacosdigitais/lacosctl/internal/domain/port/driven"
)

// EnsureInstallID returns this installation's stable identifier, minting
// and persisting a new one on first run. The ID accompanies every API
// request so the platform can distinguish devices without identifying
// users.
func EnsureInstallID(ctx context.Context, kv driven.KeyValueStore) (string, error) {
	id, err := kv.Get(ctx, driven.KeyInstallID)
	if err != nil {
		return "", fmt.Errorf("read install id: %w", err)
	}
	if id != "" {
		return id, nil
	}

	id = uuid.NewString()
	if err := kv.Set(ctx, driven.KeyInstallID, id); err != nil {
		return "", fmt.Errorf("store install id: %w", err)
	}
	return id, nil
}

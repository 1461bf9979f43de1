package audit

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/barbeariajosimar/booking-api/internal/models"
	"github.com/barbeariajosimar/booking-api/internal/store"
	"github.com/barbeariajosimar/booking-api/internal/timezone"
)

type Logger struct {
	store *store.Store
}

func New(st *store.Store) *Logger {
	return &Logger{store: st}
}

func (l *Logger) Log(actor, action, entity, entityID string, metadata any) error {
	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ID:        uuid.NewString(),
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: timezone.Now(),
	}

	return l.store.AppendAuditLog(context.Background(), entry)
}

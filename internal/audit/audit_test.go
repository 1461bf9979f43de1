package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbeariajosimar/booking-api/internal/store"
)

func TestLoggerWritesEntry(t *testing.T) {
	st := store.New(store.NewMemoryKV())
	logger := New(st)

	err := logger.Log("a@x.com", "appointment_created", "appointment", "ap1", map[string]any{"date": "2025-06-10"})
	require.NoError(t, err)

	logs, err := st.AuditLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 1)

	assert.NotEmpty(t, logs[0].ID)
	assert.Equal(t, "a@x.com", logs[0].Actor)
	assert.Equal(t, "appointment_created", logs[0].Action)
	assert.Equal(t, "ap1", logs[0].EntityID)
	assert.JSONEq(t, `{"date":"2025-06-10"}`, logs[0].Metadata)
	assert.False(t, logs[0].CreatedAt.IsZero())
}

func TestDispatcherDeliversAsync(t *testing.T) {
	st := store.New(store.NewMemoryKV())
	d := NewDispatcher(New(st))

	d.Dispatch(Event{Actor: "a@x.com", Action: "user_registered", Entity: "user", EntityID: "u1"})

	require.Eventually(t, func() bool {
		logs, err := st.AuditLogs(context.Background())
		return err == nil && len(logs) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

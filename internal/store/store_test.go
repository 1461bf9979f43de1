package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbeariajosimar/booking-api/internal/models"
)

func TestServicesSeedIsNotPersisted(t *testing.T) {
	kv := NewMemoryKV()
	st := New(kv)

	services, err := st.Services(context.Background())
	require.NoError(t, err)
	assert.Len(t, services, 3)
	assert.Equal(t, "Corte Clássico", services[0].Name)

	// catálogo é só leitura: o fallback de seed não grava nada
	_, err = kv.Get(context.Background(), KeyServices)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestBarbersSeedIsPersistedOnFirstRead(t *testing.T) {
	kv := NewMemoryKV()
	st := New(kv)

	barbers, err := st.Barbers(context.Background())
	require.NoError(t, err)
	assert.Len(t, barbers, 2)

	// equipe é cadastro mutável: o seed precisa ser durável
	raw, err := kv.Get(context.Background(), KeyBarbers)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestUsersAndAppointmentsDefaultEmpty(t *testing.T) {
	st := New(NewMemoryKV())

	users, err := st.Users(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)

	apps, err := st.Appointments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestUpdateAppointmentsIsReadModifyWriteWholesale(t *testing.T) {
	st := New(NewMemoryKV())

	err := st.UpdateAppointments(context.Background(), func(apps []models.Appointment) ([]models.Appointment, error) {
		assert.Empty(t, apps)
		return append(apps, models.Appointment{ID: "a1"}), nil
	})
	require.NoError(t, err)

	err = st.UpdateAppointments(context.Background(), func(apps []models.Appointment) ([]models.Appointment, error) {
		require.Len(t, apps, 1)
		return append(apps, models.Appointment{ID: "a2"}), nil
	})
	require.NoError(t, err)

	apps, err := st.Appointments(context.Background())
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

func TestUpdateErrorLeavesCollectionUntouched(t *testing.T) {
	st := New(NewMemoryKV())

	err := st.UpdateUsers(context.Background(), func(users []models.User) ([]models.User, error) {
		return append(users, models.User{ID: "u1", Email: "a@x.com"}), nil
	})
	require.NoError(t, err)

	boom := assert.AnError
	err = st.UpdateUsers(context.Background(), func(users []models.User) ([]models.User, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	users, err := st.Users(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAppendAuditLog(t *testing.T) {
	st := New(NewMemoryKV())

	require.NoError(t, st.AppendAuditLog(context.Background(), models.AuditLog{ID: "l1", Action: "x"}))
	require.NoError(t, st.AppendAuditLog(context.Background(), models.AuditLog{ID: "l2", Action: "y"}))

	logs, err := st.AuditLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "l1", logs[0].ID)
}

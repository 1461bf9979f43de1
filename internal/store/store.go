package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/barbeariajosimar/booking-api/internal/models"
)

// Chaves das coleções persistidas (namespacing herdado do app original).
const (
	KeyServices     = "barber_services"
	KeyBarbers      = "barber_staff"
	KeyUsers        = "barber_users"
	KeyAppointments = "barber_appointments"
	KeyAuditLogs    = "barber_audit_logs"
)

// Store expõe acesso tipado às coleções sobre um KV. Todas as
// operações compartilham um único mutex: uma sequência
// load → transform → save nunca é intercalada com outra, o que
// elimina o lost-update do padrão regrava-coleção-inteira quando
// os handlers HTTP rodam em paralelo.
type Store struct {
	mu sync.Mutex
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

func loadCollection[T any](ctx context.Context, kv KV, key string) ([]T, bool, error) {
	raw, err := kv.Get(ctx, key)
	if err == ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return out, true, nil
}

func saveCollection[T any](ctx context.Context, kv KV, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, raw)
}

// --------------------------------------------------
// Services (seed sem persistir: catálogo é só leitura)
// --------------------------------------------------

func (s *Store) Services(ctx context.Context) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	services, ok, err := loadCollection[models.Service](ctx, s.kv, KeyServices)
	if err != nil {
		return nil, err
	}
	if !ok {
		return SeedServices(), nil
	}
	return services, nil
}

// --------------------------------------------------
// Barbers (seed persistido: a equipe é um cadastro mutável)
// --------------------------------------------------

func (s *Store) Barbers(ctx context.Context) ([]models.Barber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.barbersLocked(ctx)
}

func (s *Store) barbersLocked(ctx context.Context) ([]models.Barber, error) {
	barbers, ok, err := loadCollection[models.Barber](ctx, s.kv, KeyBarbers)
	if err != nil {
		return nil, err
	}
	if !ok {
		barbers = SeedBarbers()
		if err := saveCollection(ctx, s.kv, KeyBarbers, barbers); err != nil {
			return nil, err
		}
	}
	return barbers, nil
}

func (s *Store) UpdateBarbers(ctx context.Context, fn func([]models.Barber) ([]models.Barber, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	barbers, err := s.barbersLocked(ctx)
	if err != nil {
		return err
	}

	next, err := fn(barbers)
	if err != nil {
		return err
	}
	return saveCollection(ctx, s.kv, KeyBarbers, next)
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, _, err := loadCollection[models.User](ctx, s.kv, KeyUsers)
	return users, err
}

func (s *Store) UpdateUsers(ctx context.Context, fn func([]models.User) ([]models.User, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, _, err := loadCollection[models.User](ctx, s.kv, KeyUsers)
	if err != nil {
		return err
	}

	next, err := fn(users)
	if err != nil {
		return err
	}
	return saveCollection(ctx, s.kv, KeyUsers, next)
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *Store) Appointments(ctx context.Context) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, _, err := loadCollection[models.Appointment](ctx, s.kv, KeyAppointments)
	return apps, err
}

func (s *Store) UpdateAppointments(ctx context.Context, fn func([]models.Appointment) ([]models.Appointment, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, _, err := loadCollection[models.Appointment](ctx, s.kv, KeyAppointments)
	if err != nil {
		return err
	}

	next, err := fn(apps)
	if err != nil {
		return err
	}
	return saveCollection(ctx, s.kv, KeyAppointments, next)
}

// --------------------------------------------------
// Audit trail
// --------------------------------------------------

func (s *Store) AuditLogs(ctx context.Context) ([]models.AuditLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, _, err := loadCollection[models.AuditLog](ctx, s.kv, KeyAuditLogs)
	return logs, err
}

func (s *Store) AppendAuditLog(ctx context.Context, entry models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, _, err := loadCollection[models.AuditLog](ctx, s.kv, KeyAuditLogs)
	if err != nil {
		return err
	}
	return saveCollection(ctx, s.kv, KeyAuditLogs, append(logs, entry))
}

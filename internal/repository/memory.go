// Package repository хранит активности в памяти процесса.
package repository

import (
	"context"
	"fmt"
	"sync"

	"activities-service/internal/model"

	"github.com/samber/lo"
)

// MemoryStore реализует репозиторий активностей поверх map в памяти.
// Все изменения сериализуются одним RWMutex, наружу отдаются только копии.
type MemoryStore struct {
	mu              sync.RWMutex
	order           []string
	items           map[string]*model.Activity
	enforceCapacity bool
}

// Option настраивает MemoryStore при создании.
type Option func(*MemoryStore)

// WithCapacityEnforcement включает проверку max_participants при записи.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *MemoryStore) {
		s.enforceCapacity = enabled
	}
}

// NewMemoryStore создаёт хранилище из начальных данных, сохраняя их порядок.
// Повтор имени активности — нарушение контракта, возвращается ErrDuplicateActivity.
func NewMemoryStore(seed []model.ActivityEntry, opts ...Option) (*MemoryStore, error) {
	s := &MemoryStore{
		order: make([]string, 0, len(seed)),
		items: make(map[string]*model.Activity, len(seed)),
	}
	for _, opt := range opts {
		opt(s)
	}

	for i, e := range seed {
		if err := validateSeedEntry(e); err != nil {
			return nil, fmt.Errorf("seed[%d]: %w", i, err)
		}
		if _, exists := s.items[e.Name]; exists {
			return nil, fmt.Errorf("seed[%d] %q: %w", i, e.Name, ErrDuplicateActivity)
		}
		a := e.Activity.Clone()
		s.items[e.Name] = &a
		s.order = append(s.order, e.Name)
	}

	return s, nil
}

func validateSeedEntry(e model.ActivityEntry) error {
	if e.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidSeed)
	}
	if e.MaxParticipants <= 0 {
		return fmt.Errorf("%w: %q max_participants must be positive", ErrInvalidSeed, e.Name)
	}
	if dup := lo.FindDuplicates(e.Participants); len(dup) > 0 {
		return fmt.Errorf("%w: %q has duplicate participants %v", ErrInvalidSeed, e.Name, dup)
	}
	return nil
}

// List возвращает снимок всех активностей в порядке добавления.
func (s *MemoryStore) List(_ context.Context) (model.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	catalog := make(model.Catalog, 0, len(s.order))
	for _, name := range s.order {
		catalog = append(catalog, model.ActivityEntry{
			Name:     name,
			Activity: s.items[name].Clone(),
		})
	}
	return catalog, nil
}

// Get возвращает снимок одной активности. Если её нет, возвращает ErrActivityNotFound.
func (s *MemoryStore) Get(_ context.Context, name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.items[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// AddParticipant дописывает email в конец списка участников и возвращает обновлённый снимок.
// Все проверки выполняются до изменения, поэтому при ошибке состояние не меняется.
func (s *MemoryStore) AddParticipant(_ context.Context, name, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.items[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	if lo.Contains(a.Participants, email) {
		return model.Activity{}, ErrAlreadySignedUp
	}
	if s.enforceCapacity && len(a.Participants) >= a.MaxParticipants {
		return model.Activity{}, ErrActivityFull
	}

	a.Participants = append(a.Participants, email)
	return a.Clone(), nil
}

// RemoveParticipant удаляет email из списка участников, сохраняя порядок остальных.
func (s *MemoryStore) RemoveParticipant(_ context.Context, name, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.items[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	if !lo.Contains(a.Participants, email) {
		return model.Activity{}, ErrNotSignedUp
	}

	a.Participants = lo.Without(a.Participants, email)
	return a.Clone(), nil
}

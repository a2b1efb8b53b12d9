package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aidar/mergington-activities/internal/domain"
)

// ActivityRepository реализует repository.ActivityRepository в памяти процесса
type ActivityRepository struct {
	mu       sync.RWMutex
	snapshot *domain.Catalog
	catalog  *domain.Catalog
}

// NewActivityRepository создает хранилище, заполненное копией snapshot
func NewActivityRepository(snapshot *domain.Catalog) *ActivityRepository {
	if snapshot == nil {
		snapshot = domain.NewCatalog()
	}
	base := snapshot.Clone()
	return &ActivityRepository{
		snapshot: base,
		catalog:  base.Clone(),
	}
}

// List возвращает копию всех занятий
func (r *ActivityRepository) List(_ context.Context) (*domain.Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.catalog.Clone(), nil
}

// GetByName получает копию занятия по имени
func (r *ActivityRepository) GetByName(_ context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.catalog.Get(name)
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	out := activity.Clone()
	return &out, nil
}

// AddParticipant добавляет email в конец списка участников
func (r *ActivityRepository) AddParticipant(_ context.Context, name, email string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.catalog.Get(name)
	if !ok {
		return 0, domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return len(activity.Participants), domain.ErrAlreadySignedUp
	}

	activity.Participants = append(slices.Clone(activity.Participants), email)
	r.catalog.Add(name, activity)
	return len(activity.Participants), nil
}

// RemoveParticipant удаляет email, сохраняя порядок остальных участников
func (r *ActivityRepository) RemoveParticipant(_ context.Context, name, email string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.catalog.Get(name)
	if !ok {
		return 0, domain.ErrActivityNotFound
	}

	i := slices.Index(activity.Participants, email)
	if i < 0 {
		return len(activity.Participants), domain.ErrParticipantNotFound
	}

	activity.Participants = slices.Delete(slices.Clone(activity.Participants), i, i+1)
	r.catalog.Add(name, activity)
	return len(activity.Participants), nil
}

// Reset заменяет текущее состояние свежей копией исходного набора
func (r *ActivityRepository) Reset(_ context.Context) error {
	fresh := r.snapshot.Clone()

	r.mu.Lock()
	r.catalog = fresh
	r.mu.Unlock()
	return nil
}

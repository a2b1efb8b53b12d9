package repository

import (
	"context"

	"github.com/aidar/mergington-activities/internal/domain"
)

// ActivityRepository определяет методы для работы с занятиями и их участниками
type ActivityRepository interface {
	// List возвращает копию всех занятий в исходном порядке
	List(ctx context.Context) (*domain.Catalog, error)

	// GetByName получает копию занятия по имени
	GetByName(ctx context.Context, name string) (*domain.Activity, error)

	// AddParticipant записывает email на занятие и возвращает новое число участников.
	// Проверка существования занятия и дубликата выполняется атомарно с записью.
	AddParticipant(ctx context.Context, name, email string) (int, error)

	// RemoveParticipant удаляет email из списка участников и возвращает новое число участников
	RemoveParticipant(ctx context.Context, name, email string) (int, error)

	// Reset восстанавливает исходный набор занятий
	Reset(ctx context.Context) error
}

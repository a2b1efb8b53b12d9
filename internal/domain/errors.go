package domain

import "errors"

// Доменные ошибки сервиса записи на занятия
var (
	// ErrActivityNotFound возвращается когда занятие с таким именем не существует
	ErrActivityNotFound = errors.New("activity not found")

	// ErrParticipantNotFound возвращается когда email не записан на занятие
	ErrParticipantNotFound = errors.New("participant not found in this activity")

	// ErrAlreadySignedUp возвращается при повторной записи того же email
	ErrAlreadySignedUp = errors.New("student is already signed up")

	// ErrEmailRequired возвращается когда email не передан
	ErrEmailRequired = errors.New("email is required")
)

// ErrorCode представляет коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeActivityNotFound    ErrorCode = "ACTIVITY_NOT_FOUND"    // Занятие не найдено
	CodeParticipantNotFound ErrorCode = "PARTICIPANT_NOT_FOUND" // Участник не записан
	CodeAlreadySignedUp     ErrorCode = "ALREADY_SIGNED_UP"     // Повторная запись
	CodeValidation          ErrorCode = "VALIDATION_ERROR"      // Не передан обязательный параметр
	CodeInternal            ErrorCode = "INTERNAL_ERROR"
)

// MapErrorToCode преобразует доменные ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return CodeActivityNotFound
	case errors.Is(err, ErrParticipantNotFound):
		return CodeParticipantNotFound
	case errors.Is(err, ErrAlreadySignedUp):
		return CodeAlreadySignedUp
	case errors.Is(err, ErrEmailRequired):
		return CodeValidation
	default:
		return CodeInternal
	}
}

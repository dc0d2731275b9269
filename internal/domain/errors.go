package domain

import "errors"

// Ошибки доменного уровня. HTTP-коды назначаются только в handler.
var (
	// ErrDuplicateEmail — регистрация с уже занятым email.
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrInvalidCredentials — неверный email ИЛИ неверный пароль.
	// Причина намеренно не различается, чтобы не раскрывать, что именно не так.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — подпись не совпала, токен истек или payload поврежден.
	ErrInvalidToken = errors.New("invalid token")

	// ErrValidation — отсутствующие или выходящие за допустимый диапазон поля запроса.
	ErrValidation = errors.New("validation failed")

	// ErrAINotConfigured — API-ключ внешней модели не задан.
	ErrAINotConfigured = errors.New("ai client is not configured")

	// ErrMalformedAIResponse — модель вернула текст, который не парсится как JSON.
	ErrMalformedAIResponse = errors.New("ai response is not valid json")

	// ErrUnexpectedAIShape — JSON распарсился, но поле plan отсутствует или не массив.
	ErrUnexpectedAIShape = errors.New("ai response has unexpected shape")
)

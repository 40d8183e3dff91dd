package service

import "errors"

// Ошибки сервисов, не покрываемые общими apperrors
var (
	// ErrNoQuestions означает, что в категории нет ни одного вопроса и пройти её нельзя
	ErrNoQuestions = errors.New("category has no questions")
	// ErrInvalidCredentials означает неверную пару email/пароль
	ErrInvalidCredentials = errors.New("invalid email or password")
)

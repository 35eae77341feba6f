package apperrors

import (
	"net/http"
)

/*
Этот файл содержит предопределенные доменные ошибки портфолио-бэкенда.
*/

// --- Auth ---

// ErrEmailAlreadyExists - регистрация на занятый email.
// Выбор политики: конфликт отдаем явно (409), не маскируем под общую валидацию.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

// ErrUserNotFound - пользователь с таким email не существует
var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusNotFound,
)

// ErrInvalidCredentials - пароль не совпал с хешем
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Incorrect password",
	http.StatusUnauthorized,
)

// --- Projects ---

// ErrProjectNotFound - проект не существует
var ErrProjectNotFound = New(
	CodeNotFound,
	"projects",
	"Project not found",
	http.StatusNotFound,
)

// ErrNotProjectOwner - аутентифицированный пользователь не владеет проектом
var ErrNotProjectOwner = New(
	CodeForbidden,
	"projects",
	"You do not own this project",
	http.StatusForbidden,
)

// --- Profile ---

// ErrProfileNotFound - профиль или его настройки кастомизации отсутствуют.
// Пара profile+customization существует только вместе: половинки не отдаем.
var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

// --- Contact ---

// ErrDesignerNotFound - designer_id из формы обратной связи не существует.
// designer_id - недоверенный ввод: эндпоинт публичный, FK проверяем сами.
var ErrDesignerNotFound = New(
	CodeNotFound,
	"contact",
	"Designer not found",
	http.StatusNotFound,
)

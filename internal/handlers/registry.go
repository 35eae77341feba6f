package handlers

// AppHandlers - контейнер всех HTTP-хендлеров приложения
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProjectHandler *ProjectHandler
	ProfileHandler *ProfileHandler
	ContactHandler *ContactHandler
}

package services

// ServiceContainer - контейнер всех сервисов приложения
type ServiceContainer struct {
	AuthService    AuthService
	ProjectService ProjectService
	ProfileService ProfileService
	ContactService ContactService
}

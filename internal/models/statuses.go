package models

// UserRole - роль пользователя
type UserRole string

const (
	UserRoleDesigner UserRole = "designer"
	UserRoleVisitor  UserRole = "visitor"
)

// ValidUserRoles - допустимые значения роли при регистрации
var ValidUserRoles = []UserRole{UserRoleDesigner, UserRoleVisitor}

// MediaType - тип медиа-элемента проекта
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// ValidMediaTypes - допустимые типы медиа
var ValidMediaTypes = []MediaType{MediaTypeImage, MediaTypeVideo}

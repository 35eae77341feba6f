package repositories

import (
	"errors"
	"strings"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	ExistsByID(db *gorm.DB, id string) (bool, error)
}

type UserRepositoryImpl struct{}

// Конструктор не принимает db: хендл передается в каждый вызов,
// чтобы операция могла идти и через пул, и через транзакцию
func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	// Email храним и ищем в нижнем регистре: уникальность без учета регистра
	err := db.First(&user, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	user.Email = strings.ToLower(user.Email)

	if err := db.Create(user).Error; err != nil {
		// Арбитр занятости email - уникальный индекс.
		// Предварительный SELECT не защитил бы от гонки двух регистраций.
		// Требует gorm.Config{TranslateError: true} при открытии соединения.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) ExistsByID(db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

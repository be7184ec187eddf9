package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"miniblog/internal/config"
	"miniblog/internal/models"
	"miniblog/internal/repository"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 18
	passwordMinLength = 8

	// bcrypt учитывает только первые 72 байта, GenerateFromPassword на
	// более длинном входе возвращает ошибку
	bcryptMaxPasswordBytes = 72
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, username, password, passwordRepeat string) error
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Authenticate возвращает (nil, nil), если пара логин/пароль не подошла.
// "Нет такого пользователя" и "неверный пароль" для вызывающего неразличимы.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка аутентификации: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, nil
	}

	return user, nil
}

// Register проверяет данные регистрации в фиксированном порядке, первая
// ошибка завершает проверку. Пароль в открытом виде никогда не сохраняется
// и не логируется.
func (s *authService) Register(ctx context.Context, username, password, passwordRepeat string) error {
	username = strings.TrimSpace(username)

	if !usernamePattern.MatchString(username) {
		return ErrUsernameChars
	}

	if len(username) < usernameMinLength || len(username) > usernameMaxLength {
		return ErrUsernameLength
	}

	if len(password) < passwordMinLength {
		return ErrPasswordShort
	}

	if password != passwordRepeat {
		return ErrPasswordMismatch
	}

	_, err := s.userRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return ErrDatabase
	}

	// верхней границы длины пароля нет, поэтому обрезаем сами: при
	// проверке bcrypt и так сравнивает только первые 72 байта
	pw := []byte(password)
	if len(pw) > bcryptMaxPasswordBytes {
		pw = pw[:bcryptMaxPasswordBytes]
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(pw, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	err = s.userRepo.CreateUser(ctx, username, string(hashedPassword))
	if err != nil {
		// двое могли пройти проверку одновременно, арбитр - уникальный
		// индекс в БД
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return ErrDatabase
	}

	return nil
}

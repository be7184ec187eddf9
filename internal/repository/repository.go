package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"miniblog/internal/models"
)

var (
	// ErrNotFound возвращается, когда запрошенная строка отсутствует.
	ErrNotFound = errors.New("запись не найдена")
	// ErrDuplicate возвращается при нарушении уникального ограничения.
	ErrDuplicate = errors.New("запись уже существует")
)

type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash string) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, postID int) (*models.Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID int) ([]models.Comment, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
	}
}

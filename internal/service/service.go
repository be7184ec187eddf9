package service

import (
	"miniblog/internal/config"
	"miniblog/internal/repository"
	"miniblog/internal/storage"
)

type Service struct {
	Auth    AuthService
	Post    PostService
	Comment CommentService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, cfg),
		Post:    NewPostService(rep.Post, storage, cfg),
		Comment: NewCommentService(rep.Comment),
	}
}

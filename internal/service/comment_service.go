package service

import (
	"context"
	"strings"

	"miniblog/internal/models"
	"miniblog/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, postID, authorID int, content string) error
	GetCommentsForPost(ctx context.Context, postID int) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

// AddComment молча игнорирует пустой комментарий и неположительный id
// поста: в форму не возвращается никакого сообщения.
func (s *commentService) AddComment(ctx context.Context, postID, authorID int, content string) error {
	content = strings.TrimSpace(content)

	if postID <= 0 || content == "" {
		return nil
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  authorID,
		Content: content,
	}

	return s.commentRepo.Create(ctx, comment)
}

func (s *commentService) GetCommentsForPost(ctx context.Context, postID int) ([]models.Comment, error) {
	comments, err := s.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	for i := range comments {
		comments[i].DisplayDate = comments[i].CreatedAt.Format(commentDateFormat)
	}

	return comments, nil
}

package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"miniblog/internal/config"
	"miniblog/internal/models"
	"miniblog/internal/repository"
)

func newPostService(postRepo *MockPostRepository, store *fakeStorage) PostService {
	return NewPostService(postRepo, store, &config.Config{})
}

func okUpload(filename string, size int64) *Upload {
	return &Upload{
		File:     bytes.NewReader([]byte("image-bytes")),
		Filename: filename,
		Size:     size,
		Status:   UploadOK,
	}
}

func TestCreatePost_FillFields(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		title   string
		content string
	}{
		{"пустой заголовок", "", "World"},
		{"пустой текст", "Hello", ""},
		{"заголовок из пробелов", "   ", "World"},
		{"текст из пробелов", "Hello", "  \t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(MockPostRepository)
			s := newPostService(postRepo, &fakeStorage{})

			err := s.CreatePost(ctx, 1, tt.title, tt.content, nil)

			assert.ErrorIs(t, err, ErrFillFields)
			postRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreatePost_SizeBoundary(t *testing.T) {
	ctx := context.Background()

	t.Run("ровно 5 MiB проходит", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		store := &fakeStorage{}
		s := newPostService(postRepo, store)

		postRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Post")).Return(nil)

		err := s.CreatePost(ctx, 1, "Hello", "World", okUpload("photo.png", 5*1024*1024))

		assert.NoError(t, err)
		assert.Equal(t, int64(5*1024*1024), store.savedSize)
	})

	t.Run("на байт больше - отказ", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		store := &fakeStorage{}
		s := newPostService(postRepo, store)

		err := s.CreatePost(ctx, 1, "Hello", "World", okUpload("photo.png", 5*1024*1024+1))

		assert.ErrorIs(t, err, ErrImageTooBig)
		assert.Empty(t, store.savedName)
		postRepo.AssertNotCalled(t, "Create")
	})
}

func TestCreatePost_ExtensionAllowList(t *testing.T) {
	ctx := context.Background()

	allowed := []string{"photo.jpg", "photo.jpeg", "photo.png", "photo.gif", "photo.webp", "PHOTO.JPG"}
	for _, filename := range allowed {
		t.Run(filename, func(t *testing.T) {
			postRepo := new(MockPostRepository)
			store := &fakeStorage{}
			s := newPostService(postRepo, store)

			postRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Post")).Return(nil)

			err := s.CreatePost(ctx, 1, "Hello", "World", okUpload(filename, 1024))

			assert.NoError(t, err)
		})
	}

	rejected := []string{"virus.exe", "image.svg", "shell.php", "noextension"}
	for _, filename := range rejected {
		t.Run(filename, func(t *testing.T) {
			postRepo := new(MockPostRepository)
			store := &fakeStorage{}
			s := newPostService(postRepo, store)

			err := s.CreatePost(ctx, 1, "Hello", "World", okUpload(filename, 1024))

			assert.ErrorIs(t, err, ErrImageType)
			assert.Empty(t, store.savedName)
			postRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreatePost_GeneratedObjectName(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	store := &fakeStorage{}
	s := newPostService(postRepo, store)

	postRepo.On("Create", mock.Anything, mock.MatchedBy(func(post *models.Post) bool {
		return post.ImageURL.Valid && strings.HasPrefix(post.ImageURL.String, "uploads/")
	})).Return(nil)

	// имя с обходом пути не должно попадать в итоговый путь
	err := s.CreatePost(ctx, 1, "Hello", "World", okUpload("../../etc/passwd.png", 1024))

	require.NoError(t, err)
	assert.NotContains(t, store.savedName, "/")
	assert.NotContains(t, store.savedName, "..")
	assert.True(t, strings.HasSuffix(store.savedName, ".png"))
	postRepo.AssertExpectations(t)
}

func TestCreatePost_ServerLimit(t *testing.T) {
	ctx := context.Background()

	for _, status := range []UploadStatus{UploadServerLimit, UploadFailed} {
		postRepo := new(MockPostRepository)
		s := newPostService(postRepo, &fakeStorage{})

		err := s.CreatePost(ctx, 1, "Hello", "World", &Upload{Status: status})

		assert.ErrorIs(t, err, ErrServerLimit)
		postRepo.AssertNotCalled(t, "Create")
	}
}

func TestCreatePost_NoFile(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	store := &fakeStorage{}
	s := newPostService(postRepo, store)

	postRepo.On("Create", mock.Anything, mock.MatchedBy(func(post *models.Post) bool {
		return post.UserID == 1 &&
			post.Title == "Hello" &&
			post.Content == "World" &&
			!post.ImageURL.Valid
	})).Return(nil)

	err := s.CreatePost(ctx, 1, "Hello", "World", &Upload{Status: UploadNoFile})

	assert.NoError(t, err)
	assert.Empty(t, store.savedName)
	postRepo.AssertExpectations(t)
}

func TestCreatePost_SaveFailure(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	store := &fakeStorage{failErr: errors.New("disk full")}
	s := newPostService(postRepo, store)

	err := s.CreatePost(ctx, 1, "Hello", "World", okUpload("photo.png", 1024))

	assert.ErrorIs(t, err, ErrImageSave)
	// упавшее сохранение картинки не оставляет строки в БД
	postRepo.AssertNotCalled(t, "Create")
}

func TestCreatePost_DatabaseFailure(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	s := newPostService(postRepo, &fakeStorage{})

	postRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Post")).
		Return(errors.New("connection refused"))

	err := s.CreatePost(ctx, 1, "Hello", "World", &Upload{Status: UploadNoFile})

	assert.ErrorIs(t, err, ErrDatabase)
}

func TestGetAllPosts_PreviewAndDate(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	s := newPostService(postRepo, &fakeStorage{})

	createdAt := time.Date(2024, 3, 7, 15, 42, 0, 0, time.UTC)
	long := strings.Repeat("я", 250)
	exact := strings.Repeat("x", 200)

	postRepo.On("GetAll", mock.Anything).Return([]models.Post{
		{ID: 2, Title: "Длинный", Content: long, CreatedAt: createdAt, AuthorName: "bob"},
		{ID: 1, Title: "Ровный", Content: exact, CreatedAt: createdAt, AuthorName: "alice1"},
	}, nil)

	posts, err := s.GetAllPosts(ctx)

	require.NoError(t, err)
	require.Len(t, posts, 2)

	// 250 видимых символов: превью из первых 200 плюс многоточие
	assert.Equal(t, strings.Repeat("я", 200)+"...", posts[0].Preview)
	// ровно 200: без многоточия
	assert.Equal(t, exact, posts[1].Preview)

	assert.Equal(t, "07.03.2024", posts[0].DisplayDate)
}

func TestGetAllPosts_ShortContentUntouched(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	s := newPostService(postRepo, &fakeStorage{})

	postRepo.On("GetAll", mock.Anything).Return([]models.Post{
		{ID: 1, Title: "Hello", Content: "World", CreatedAt: time.Now()},
	}, nil)

	posts, err := s.GetAllPosts(ctx)

	require.NoError(t, err)
	assert.Equal(t, "World", posts[0].Preview)
}

func TestGetPostByID(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	s := newPostService(postRepo, &fakeStorage{})

	createdAt := time.Date(2024, 3, 7, 15, 42, 0, 0, time.UTC)

	postRepo.On("GetByID", mock.Anything, 1).
		Return(&models.Post{ID: 1, Title: "Hello", Content: "World", CreatedAt: createdAt}, nil)
	postRepo.On("GetByID", mock.Anything, 99).
		Return(nil, repository.ErrNotFound)

	t.Run("найден", func(t *testing.T) {
		post, err := s.GetPostByID(ctx, 1)

		require.NoError(t, err)
		// детальная страница показывает дату со временем
		assert.Equal(t, "07.03.2024 15:42", post.DisplayDate)
	})

	t.Run("не найден", func(t *testing.T) {
		_, err := s.GetPostByID(ctx, 99)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

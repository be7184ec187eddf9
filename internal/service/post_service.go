package service

import (
	"context"
	"database/sql"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/xid"

	"miniblog/internal/config"
	"miniblog/internal/models"
	"miniblog/internal/repository"
	"miniblog/internal/storage"
)

// maxImageSize - прикладной лимит на картинку, ровно 5 MiB проходит.
// Не путать с серверным лимитом на тело запроса (cfg.MaxUploadSize):
// тот срабатывает раньше, ещё на уровне транспорта.
const maxImageSize = 5 * 1024 * 1024

const (
	previewLength     = 200
	listDateFormat    = "02.01.2006"
	detailDateFormat  = "02.01.2006 15:04"
	commentDateFormat = "02.01.2006 15:04"
)

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

type UploadStatus int

const (
	UploadOK UploadStatus = iota
	UploadNoFile
	UploadServerLimit
	UploadFailed
)

// Upload описывает принятый транспортом файл: временное содержимое,
// заявленное имя, размер в байтах и статус приёма.
type Upload struct {
	File     io.Reader
	Filename string
	Size     int64
	Status   UploadStatus
}

type PostService interface {
	CreatePost(ctx context.Context, authorID int, title, content string, upload *Upload) error
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetPostByID(ctx context.Context, postID int) (*models.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, authorID int, title, content string, upload *Upload) error {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" || content == "" {
		return ErrFillFields
	}

	var imageURL sql.NullString

	if upload != nil {
		switch upload.Status {
		case UploadOK:
			ref, err := p.processUpload(ctx, upload)
			if err != nil {
				return err
			}
			imageURL = sql.NullString{String: ref, Valid: true}
		case UploadNoFile:
			// пост без картинки
		default:
			// обычно это превышение серверного лимита на тело запроса
			return ErrServerLimit
		}
	}

	post := &models.Post{
		UserID:   authorID,
		Title:    title,
		Content:  content,
		ImageURL: imageURL,
	}

	// картинка уже на месте: упавшая запись в БД не оставит в постах
	// битой ссылки, максимум осиротевший файл
	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return ErrDatabase
	}

	return nil
}

// processUpload валидирует файл и перекладывает его в публичное хранилище.
// Имя объекта генерируется заново: исходному имени файла нельзя доверять
// ни для пути, ни для уникальности.
func (p *postService) processUpload(ctx context.Context, upload *Upload) (string, error) {
	if upload.Size > maxImageSize {
		return "", ErrImageTooBig
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(upload.Filename), "."))
	if !allowedExtensions[ext] {
		return "", ErrImageType
	}

	objectName := xid.New().String() + "." + ext

	ref, err := p.storage.Save(ctx, objectName, upload.File, upload.Size)
	if err != nil {
		log.Printf("не удалось сохранить изображение %s (%s): %v",
			objectName, humanize.IBytes(uint64(upload.Size)), err)
		return "", ErrImageSave
	}

	return ref, nil
}

func (p *postService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].DisplayDate = posts[i].CreatedAt.Format(listDateFormat)
		posts[i].Preview = previewContent(posts[i].Content)
	}

	return posts, nil
}

func (p *postService) GetPostByID(ctx context.Context, postID int) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.DisplayDate = post.CreatedAt.Format(detailDateFormat)

	return post, nil
}

// previewContent обрезает текст по видимым символам, не по байтам.
// Многоточие добавляется только если обрезка действительно была.
func previewContent(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "..."
}

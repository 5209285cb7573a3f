package post

import (
	"errors"
	"strings"

	"github.com/bemnascer/bemnascer-backend/internal/ownership"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidTitle = errors.New("title is required")
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// ListForClient returns all posts, newest first. The caller must be a
// client; the resolution doubles as the access check.
func (s *PostService) ListForClient(userID uuid.UUID) ([]Post, error) {
	if _, err := ownership.ResolveClient(s.db, userID); err != nil {
		return nil, err
	}

	var posts []Post
	err := s.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (s *PostService) Create(req CreatePostRequest) (*Post, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}

	p := Post{
		ID:          uuid.New(),
		Title:       title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostService) Delete(postID uuid.UUID) error {
	result := s.db.Delete(&Post{}, "id = ?", postID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

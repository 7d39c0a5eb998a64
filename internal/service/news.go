package service

import (
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
)

const defaultPageSize = 10

type newsRepository interface {
	PublishedNews(category string, limit, offset int64) ([]domain.News, int64, error)
	PublishedNewsByID(id int64) (*domain.News, error)
	AllNews(limit, offset int64) ([]domain.News, int64, error)
	CreateNews(item *domain.News) (int64, error)
	UpdateNews(item *domain.News) error
	DeleteNews(id int64) error
}

type NewsPage struct {
	News  []domain.News
	Page  int64
	Pages int64
	Total int64
}

type NewsService struct {
	repo newsRepository
	now  func() time.Time
}

func NewNewsService(repo newsRepository) *NewsService {
	return &NewsService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *NewsService) Published(category string, page, limit int64) (*NewsPage, error) {
	page, limit = normalizePage(page, limit)

	news, total, err := s.repo.PublishedNews(category, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &NewsPage{News: news, Page: page, Pages: pageCount(total, limit), Total: total}, nil
}

// ByID returns a published item and counts the view.
func (s *NewsService) ByID(id int64) (*domain.News, error) {
	return s.repo.PublishedNewsByID(id)
}

func (s *NewsService) All(page, limit int64) (*NewsPage, error) {
	page, limit = normalizePage(page, limit)

	news, total, err := s.repo.AllNews(limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &NewsPage{News: news, Page: page, Pages: pageCount(total, limit), Total: total}, nil
}

func (s *NewsService) Create(authorID int64, item *domain.News) (int64, error) {
	if item.Category == "" {
		item.Category = "general"
	}
	if item.Priority == "" {
		item.Priority = "medium"
	}
	item.AuthorID = &authorID
	item.PublishedAt = s.now()

	return s.repo.CreateNews(item)
}

func (s *NewsService) Update(item *domain.News) error {
	return s.repo.UpdateNews(item)
}

func (s *NewsService) Delete(id int64) error {
	return s.repo.DeleteNews(id)
}

func normalizePage(page, limit int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	return page, limit
}

func pageCount(total, limit int64) int64 {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return pages
}

package newshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/internal/service"
	"github.com/AmanYaqoob/SocialPayX/pkg/dto"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type newsService interface {
	Published(category string, page, limit int64) (*service.NewsPage, error)
	ByID(id int64) (*domain.News, error)
	All(page, limit int64) (*service.NewsPage, error)
	Create(authorID int64, item *domain.News) (int64, error)
	Update(item *domain.News) error
	Delete(id int64) error
}

type NewsHandler struct {
	srv newsService
}

func New(srv newsService) *NewsHandler {
	return &NewsHandler{
		srv: srv,
	}
}

func (h NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page")
	limit := queryInt(r, "limit")
	category := r.URL.Query().Get("category")

	newsPage, err := h.srv.Published(category, page, limit)
	if err != nil {
		logger.Log.Error("error while fetching news", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writePage(w, newsPage)
}

func (h NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	item, err := h.srv.ByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNewsNotFound) {
			http.Error(w, "news not found", http.StatusNotFound)
			return
		}

		logger.Log.Error("error while fetching news item", logger.Int64("news_id", id), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toDTO(*item))
	if err != nil {
		logger.Log.Error("error while encoding news to JSON", logger.Int64("news_id", id), logger.Error(err))
		return
	}
}

func (h NewsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	newsPage, err := h.srv.All(queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		logger.Log.Error("error while fetching news", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writePage(w, newsPage)
}

func (h NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userIDHeader := r.Header.Get("User-ID")
	userID, err := strconv.ParseInt(userIDHeader, 10, 64)
	if err != nil {
		logger.Log.Error("error while parsing user ID from header", logger.String("user_id", userIDHeader), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	input, err := decodeInput(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item := inputToNews(input)
	id, err := h.srv.Create(userID, item)
	if err != nil {
		logger.Log.Error("error while creating news", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	item.ID = id

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(toDTO(*item))
	if err != nil {
		logger.Log.Error("error while encoding news to JSON", logger.Int64("news_id", id), logger.Error(err))
		return
	}
}

func (h NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	input, err := decodeInput(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item := inputToNews(input)
	item.ID = id

	if err := h.srv.Update(item); err != nil {
		if errors.Is(err, domain.ErrNewsNotFound) {
			http.Error(w, "news not found", http.StatusNotFound)
			return
		}

		logger.Log.Error("error while updating news", logger.Int64("news_id", id), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.srv.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNewsNotFound) {
			http.Error(w, "news not found", http.StatusNotFound)
			return
		}

		logger.Log.Error("error while deleting news", logger.Int64("news_id", id), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeInput(r *http.Request) (*dto.NewsInput, error) {
	var input dto.NewsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Log.Warn("error while decoding a news request")
		return nil, errors.New(http.StatusText(http.StatusBadRequest))
	}

	if err := input.IsValid(); err != nil {
		logger.Log.Warn("invalid news fields", logger.Error(err))
		return nil, err
	}

	return &input, nil
}

func inputToNews(input *dto.NewsInput) *domain.News {
	item := &domain.News{
		Title:       input.Title,
		Content:     input.Content,
		Category:    input.Category,
		Priority:    input.Priority,
		IsPublished: true,
		ImageURL:    input.ImageURL,
	}
	if input.IsPublished != nil {
		item.IsPublished = *input.IsPublished
	}

	return item
}

func toDTO(item domain.News) dto.News {
	return dto.News{
		ID:          item.ID,
		Title:       item.Title,
		Content:     item.Content,
		Category:    item.Category,
		Priority:    item.Priority,
		IsPublished: item.IsPublished,
		PublishedAt: item.PublishedAt.Format(time.RFC3339),
		Author:      item.AuthorName,
		ImageURL:    item.ImageURL,
		Views:       item.Views,
	}
}

func writePage(w http.ResponseWriter, page *service.NewsPage) {
	resp := dto.NewsPage{
		News: make([]dto.News, len(page.News)),
		Pagination: dto.Pagination{
			Current: page.Page,
			Pages:   page.Pages,
			Total:   page.Total,
		},
	}
	for i, item := range page.News {
		resp.News[i] = toDTO(item)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding news page to JSON", logger.Error(err))
		return
	}
}

func queryInt(r *http.Request, name string) int64 {
	value, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0
	}

	return value
}

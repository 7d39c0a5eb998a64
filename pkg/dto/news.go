package dto

import (
	"fmt"
	"strings"
)

/**
{
  "id": 12,
  "title": "Scheduled maintenance",
  "category": "maintenance",
  "priority": "high",
  "published_at": "2024-06-01T10:00:00Z",
  "author": "admin",
  "views": 105
}
*/

type News struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	IsPublished bool   `json:"is_published"`
	PublishedAt string `json:"published_at"`
	Author      string `json:"author,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Views       int64  `json:"views"`
}

type NewsPage struct {
	News       []News     `json:"news"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Current int64 `json:"current"`
	Pages   int64 `json:"pages"`
	Total   int64 `json:"total"`
}

type NewsInput struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	IsPublished *bool  `json:"is_published"`
	ImageURL    string `json:"image_url"`
}

func (n NewsInput) IsValid() error {
	if strings.TrimSpace(n.Title) == "" || strings.TrimSpace(n.Content) == "" {
		return fmt.Errorf("title and content are required")
	}

	return nil
}

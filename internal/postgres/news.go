package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/AmanYaqoob/SocialPayX/internal/domain"
	"github.com/AmanYaqoob/SocialPayX/pkg/logger"
)

func (p *Postgres) PublishedNews(category string, limit, offset int64) ([]domain.News, int64, error) {
	countQuery := "SELECT COUNT(*) FROM news WHERE is_published"
	listQuery := `SELECT n.id, n.title, n.content, n.category, n.priority, n.is_published,
			n.published_at, n.author_id, COALESCE(u.username, ''), n.image_url, n.views, n.created_at
		 FROM news n LEFT JOIN users u ON u.id = n.author_id
		 WHERE n.is_published`

	countArgs := []any{}
	listArgs := []any{}
	if category != "" {
		countQuery += " AND category = $1"
		countArgs = append(countArgs, category)
		listQuery += " AND n.category = $3"
		listArgs = append(listArgs, category)
	}
	listQuery += " ORDER BY n.published_at DESC LIMIT $1 OFFSET $2"
	listArgs = append([]any{limit, offset}, listArgs...)

	var total int64
	if err := p.DB.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting news: %w", err)
	}

	news, err := p.queryNews(listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}

	return news, total, nil
}

func (p *Postgres) AllNews(limit, offset int64) ([]domain.News, int64, error) {
	var total int64
	if err := p.DB.QueryRow("SELECT COUNT(*) FROM news").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting news: %w", err)
	}

	news, err := p.queryNews(
		`SELECT n.id, n.title, n.content, n.category, n.priority, n.is_published,
			n.published_at, n.author_id, COALESCE(u.username, ''), n.image_url, n.views, n.created_at
		 FROM news n LEFT JOIN users u ON u.id = n.author_id
		 ORDER BY n.created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}

	return news, total, nil
}

func (p *Postgres) queryNews(query string, args ...any) ([]domain.News, error) {
	rows, err := p.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching news: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("error closing rows", logger.Error(err))
		}
	}(rows)

	var news []domain.News
	for rows.Next() {
		var item domain.News
		err := rows.Scan(
			&item.ID, &item.Title, &item.Content, &item.Category, &item.Priority,
			&item.IsPublished, &item.PublishedAt, &item.AuthorID, &item.AuthorName,
			&item.ImageURL, &item.Views, &item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning news: %w", err)
		}
		news = append(news, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over news: %w", err)
	}

	return news, nil
}

// PublishedNewsByID returns a single published item, bumping its view counter
// in the same statement.
func (p *Postgres) PublishedNewsByID(id int64) (*domain.News, error) {
	var item domain.News
	err := p.DB.QueryRow(
		`UPDATE news SET views = views + 1
		 WHERE id = $1 AND is_published
		 RETURNING id, title, content, category, priority, is_published,
			published_at, author_id, image_url, views, created_at`,
		id,
	).Scan(
		&item.ID, &item.Title, &item.Content, &item.Category, &item.Priority,
		&item.IsPublished, &item.PublishedAt, &item.AuthorID,
		&item.ImageURL, &item.Views, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, fmt.Errorf("error fetching news item: %w", err)
	}

	if item.AuthorID != nil {
		err = p.DB.QueryRow("SELECT username FROM users WHERE id = $1", *item.AuthorID).Scan(&item.AuthorName)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("error fetching news author: %w", err)
		}
	}

	return &item, nil
}

func (p *Postgres) CreateNews(item *domain.News) (int64, error) {
	var id int64
	err := p.DB.QueryRow(
		`INSERT INTO news (title, content, category, priority, is_published, published_at, author_id, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		item.Title, item.Content, item.Category, item.Priority,
		item.IsPublished, item.PublishedAt, item.AuthorID, item.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating news: %w", err)
	}

	return id, nil
}

func (p *Postgres) UpdateNews(item *domain.News) error {
	result, err := p.DB.Exec(
		`UPDATE news SET title = $1, content = $2, category = $3, priority = $4, is_published = $5, image_url = $6
		 WHERE id = $7`,
		item.Title, item.Content, item.Category, item.Priority, item.IsPublished, item.ImageURL, item.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating news: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for news update: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNewsNotFound
	}

	return nil
}

func (p *Postgres) DeleteNews(id int64) error {
	result, err := p.DB.Exec("DELETE FROM news WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting news: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for news delete: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNewsNotFound
	}

	return nil
}

// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"rajkhabar/internal/models"
)

const socialColumns = `id, name, slug, type, link, created_at, updated_at`

// SocialLinkStore handles the flat social/policy link directory.
type SocialLinkStore struct {
	db *sql.DB
}

// NewSocialLinkStore creates a SocialLinkStore over the given connection.
func NewSocialLinkStore(db *sql.DB) *SocialLinkStore {
	return &SocialLinkStore{db: db}
}

func scanSocialLink(row interface{ Scan(...any) error }) (*models.SocialLink, error) {
	l := &models.SocialLink{}
	err := row.Scan(&l.ID, &l.Name, &l.Slug, &l.Type, &l.Link, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *SocialLinkStore) Create(ctx context.Context, l *models.SocialLink) (*models.SocialLink, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO social_links (name, slug, type, link)
		VALUES ($1, $2, $3, $4)
		RETURNING `+socialColumns,
		l.Name, l.Slug, l.Type, l.Link,
	)
	created, err := scanSocialLink(row)
	if err != nil {
		return nil, fmt.Errorf("create social link: %w", err)
	}
	return created, nil
}

func (s *SocialLinkStore) Update(ctx context.Context, l *models.SocialLink) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE social_links SET name = $1, slug = $2, type = $3, link = $4, updated_at = NOW()
		WHERE id = $5
	`, l.Name, l.Slug, l.Type, l.Link, l.ID)
	if err != nil {
		return fmt.Errorf("update social link: %w", err)
	}
	return nil
}

func (s *SocialLinkStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM social_links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete social link: %w", err)
	}
	return nil
}

func (s *SocialLinkStore) FindByID(ctx context.Context, id uuid.UUID) (*models.SocialLink, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+socialColumns+` FROM social_links WHERE id = $1`, id)
	l, err := scanSocialLink(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find social link by id: %w", err)
	}
	return l, nil
}

func (s *SocialLinkStore) FindBySlug(ctx context.Context, slug string) (*models.SocialLink, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+socialColumns+` FROM social_links WHERE slug = $1`, slug)
	l, err := scanSocialLink(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find social link by slug: %w", err)
	}
	return l, nil
}

func (s *SocialLinkStore) List(ctx context.Context) ([]models.SocialLink, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+socialColumns+` FROM social_links ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	defer rows.Close()

	var items []models.SocialLink
	for rows.Next() {
		l, err := scanSocialLink(rows)
		if err != nil {
			return nil, fmt.Errorf("scan social link: %w", err)
		}
		items = append(items, *l)
	}
	return items, rows.Err()
}

func (s *SocialLinkStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM social_links`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count social links: %w", err)
	}
	return count, nil
}

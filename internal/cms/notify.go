// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"log/slog"
	"time"

	"rajkhabar/internal/models"
)

const notifyTimeout = 30 * time.Second

// notifyPublish fans a "new post" push out to every registered device with
// notifications enabled. Fire-and-forget: delivery runs on its own
// goroutine with its own deadline and never blocks or fails the publish.
func (s *Service) notifyPublish(p *models.Post, c *models.Category) {
	if s.notifier == nil {
		slog.Debug("no notifier configured, skipping publish notification", "post", p.Slug)
		return
	}
	title := p.Title
	categoryName := ""
	if c != nil {
		categoryName = c.Name
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		tokens, err := s.stores.Devices.ListEnabledTokens(ctx)
		if err != nil {
			slog.Error("list device tokens", "post", p.Slug, "error", err)
			return
		}
		if len(tokens) == 0 {
			return
		}

		n := Notification{
			Title: title,
			Body:  "New in " + categoryName,
			Data: map[string]string{
				"slug":            p.Slug,
				"categorySlug":    p.CategorySlug,
				"subCategorySlug": p.SubcategorySlug,
				"type":            "post",
			},
		}
		if categoryName == "" {
			n.Body = "A new post is live"
		}
		if err := s.notifier.NotifyTokens(ctx, tokens, n); err != nil {
			slog.Error("publish notification failed", "post", p.Slug, "tokens", len(tokens), "error", err)
			return
		}
		slog.Info("publish notification sent", "post", p.Slug, "tokens", len(tokens))
	}()
}

// SendNotificationToAll pushes an ad-hoc notification to every enabled
// device, synchronously. Used by the admin panel's broadcast form.
func (s *Service) SendNotificationToAll(ctx context.Context, n Notification) (int, error) {
	if n.Title == "" || n.Body == "" {
		return 0, ErrValidation
	}
	if s.notifier == nil {
		return 0, ErrNotifierUnavailable
	}
	tokens, err := s.stores.Devices.ListEnabledTokens(ctx)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, nil
	}
	if err := s.notifier.NotifyTokens(ctx, tokens, n); err != nil {
		return 0, err
	}
	return len(tokens), nil
}

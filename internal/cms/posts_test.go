// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rajkhabar/internal/models"
)

// captureNotifier records the last delivery and signals on a channel so
// tests can wait for the fire-and-forget goroutine.
type captureNotifier struct {
	ch chan Notification
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{ch: make(chan Notification, 4)}
}

func (n *captureNotifier) NotifyTokens(ctx context.Context, tokens []string, msg Notification) error {
	n.ch <- msg
	return nil
}

func (n *captureNotifier) wait(t *testing.T) Notification {
	t.Helper()
	select {
	case msg := <-n.ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no notification delivered")
		return Notification{}
	}
}

func TestCreatePostTypeGating(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	// Posts only bind to post-typed subcategories.
	for _, sub := range []string{"jobs", "exam-results"} {
		_, err := svc.CreatePost(ctx, CreatePostRequest{
			Title: "Wrong Home", CategorySlug: "news", SubcategorySlug: sub,
			Content: postContent(),
		})
		require.ErrorIs(t, err, ErrTypeMismatch)
	}

	p, err := svc.CreatePost(ctx, CreatePostRequest{
		Title: "Right Home", CategorySlug: "news", SubcategorySlug: "headlines",
		Content: postContent(),
	})
	require.NoError(t, err)
	require.Equal(t, models.PostStatusDraft, p.Status)
	require.Nil(t, p.PublishedAt)
}

func TestPostSlugGloballyUnique(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Sports", Slug: "sports"})
	require.NoError(t, err)
	_, err = svc.CreateSubcategory(ctx, CreateSubcategoryRequest{
		Name: "Cricket", Slug: "cricket", Type: models.SubcategoryTypePost, ParentSlug: "sports",
	})
	require.NoError(t, err)

	_, err = svc.CreatePost(ctx, CreatePostRequest{
		Title: "Match Report", Slug: "report", CategorySlug: "news", SubcategorySlug: "headlines",
		Content: postContent(),
	})
	require.NoError(t, err)

	// Same slug under a different binding still collides.
	_, err = svc.CreatePost(ctx, CreatePostRequest{
		Title: "Other Report", Slug: "report", CategorySlug: "sports", SubcategorySlug: "cricket",
		Content: postContent(),
	})
	require.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestUpdatePostPublishSetsTimestamp(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	p, err := svc.CreatePost(ctx, CreatePostRequest{
		Title: "Draft First", CategorySlug: "news", SubcategorySlug: "headlines",
		Content: postContent(),
	})
	require.NoError(t, err)
	require.Nil(t, p.PublishedAt)

	published := models.PostStatusPublished
	p, err = svc.UpdatePost(ctx, p.Slug, UpdatePostRequest{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, p.PublishedAt)

	first := *p.PublishedAt
	draft := models.PostStatusDraft
	p, err = svc.UpdatePost(ctx, p.Slug, UpdatePostRequest{Status: &draft})
	require.NoError(t, err)
	p, err = svc.UpdatePost(ctx, p.Slug, UpdatePostRequest{Status: &published})
	require.NoError(t, err)
	// Republishing keeps the original timestamp.
	require.Equal(t, first, *p.PublishedAt)
}

func TestPublishSendsNotification(t *testing.T) {
	notifier := newCaptureNotifier()
	svc := newTestService(t, WithNotifier(notifier))
	seedTaxonomy(t, svc)
	ctx := context.Background()

	_, err := svc.RegisterDevice(ctx, RegisterDeviceRequest{DeviceID: "dev-1", FCMToken: "tok-1"})
	require.NoError(t, err)

	p, err := svc.CreatePost(ctx, CreatePostRequest{
		Title: "Quiet Draft", CategorySlug: "news", SubcategorySlug: "headlines",
		Content: postContent(), SendNotification: true,
	})
	require.NoError(t, err)

	published := models.PostStatusPublished
	_, err = svc.UpdatePost(ctx, p.Slug, UpdatePostRequest{Status: &published})
	require.NoError(t, err)

	msg := notifier.wait(t)
	require.Equal(t, "Quiet Draft", msg.Title)
	require.Equal(t, "New in News", msg.Body)
	require.Equal(t, p.Slug, msg.Data["slug"])

	// A second non-transition update stays silent.
	desc := "edited"
	_, err = svc.UpdatePost(ctx, p.Slug, UpdatePostRequest{Description: &desc})
	require.NoError(t, err)
	select {
	case <-notifier.ch:
		t.Fatal("unexpected notification for a non-publish update")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestListPostsPaginationAndSearch(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := svc.CreatePost(ctx, CreatePostRequest{
			Title: fmt.Sprintf("Story %02d", i), CategorySlug: "news", SubcategorySlug: "headlines",
			Content: postContent(),
		})
		require.NoError(t, err)
	}

	list, err := svc.ListPosts(ctx, 1, 10, "")
	require.NoError(t, err)
	require.Equal(t, 25, list.Total)
	require.Equal(t, 3, list.TotalPages)
	require.Len(t, list.Posts, 10)
	// Newest first.
	require.Equal(t, "Story 24", list.Posts[0].Title)

	list, err = svc.ListPosts(ctx, 3, 10, "")
	require.NoError(t, err)
	require.Len(t, list.Posts, 5)

	list, err = svc.SearchPosts(ctx, "story 1", 1, 50)
	require.NoError(t, err)
	require.Equal(t, 10, list.Total)

	_, err = svc.SearchPosts(ctx, "", 1, 10)
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeletePostNotFound(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.DeletePost(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrContentNotFound)
}

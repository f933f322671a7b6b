// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"rajkhabar/internal/models"
)

func TestSocialLinkCRUD(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.CreateSocialLink(ctx, CreateSocialLinkRequest{
		Name: "Raj Khabar on YouTube", Link: "https://youtube.com/@rajkhabar",
	})
	require.NoError(t, err)
	// Type defaults to social.
	require.Equal(t, models.SocialLinkTypeSocial, l.Type)

	_, err = svc.CreateSocialLink(ctx, CreateSocialLinkRequest{
		Name: "Privacy Policy", Slug: "privacy", Type: models.SocialLinkTypePolicy,
		Link: "https://rajkhabar.example/privacy",
	})
	require.NoError(t, err)

	_, err = svc.CreateSocialLink(ctx, CreateSocialLinkRequest{
		Name: "Dup Privacy", Slug: "privacy", Link: "https://elsewhere.example",
	})
	require.ErrorIs(t, err, ErrDuplicateSlug)

	policy := models.SocialLinkTypePolicy
	links, err := svc.ListSocialLinks(ctx, policy)
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, "privacy", links[0].Slug)

	all, err := svc.ListSocialLinks(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	_, err = svc.ListSocialLinks(ctx, "sponsored")
	require.ErrorIs(t, err, ErrValidation)

	newLink := "https://youtube.com/@rajkhabarofficial"
	l, err = svc.UpdateSocialLink(ctx, l.Slug, UpdateSocialLinkRequest{Link: &newLink})
	require.NoError(t, err)
	require.Equal(t, newLink, l.Link)

	_, err = svc.DeleteSocialLink(ctx, l.Slug)
	require.NoError(t, err)
	_, err = svc.DeleteSocialLink(ctx, l.Slug)
	require.ErrorIs(t, err, ErrContentNotFound)
}

func TestRegisterDeviceUpsert(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	d, err := svc.RegisterDevice(ctx, RegisterDeviceRequest{
		DeviceID: "install-1", DeviceName: "Pixel 7", FCMToken: "tok-a",
	})
	require.NoError(t, err)
	// New devices opt in by default.
	require.True(t, d.NotificationEnabled)

	// Re-registration rotates the token in place.
	d2, err := svc.RegisterDevice(ctx, RegisterDeviceRequest{
		DeviceID: "install-1", FCMToken: "tok-b",
	})
	require.NoError(t, err)
	require.Equal(t, d.ID, d2.ID)
	require.Equal(t, "tok-b", d2.FCMToken)

	devices, err := svc.ListDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)

	_, err = svc.RegisterDevice(ctx, RegisterDeviceRequest{FCMToken: "tok-c"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeviceNotificationToggleAndBroadcast(t *testing.T) {
	notifier := newCaptureNotifier()
	svc := newTestService(t, WithNotifier(notifier))
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := svc.RegisterDevice(ctx, RegisterDeviceRequest{DeviceID: id, FCMToken: "tok-" + id})
		require.NoError(t, err)
	}
	_, err := svc.SetDeviceNotifications(ctx, "b", false)
	require.NoError(t, err)

	sent, err := svc.SendNotificationToAll(ctx, Notification{Title: "Hi", Body: "There"})
	require.NoError(t, err)
	require.Equal(t, 2, sent)

	_, err = svc.SendNotificationToAll(ctx, Notification{Title: "Hi"})
	require.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.UnregisterDevice(ctx, "c"))
	require.ErrorIs(t, svc.UnregisterDevice(ctx, "c"), ErrContentNotFound)
}

func TestBroadcastWithoutNotifier(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SendNotificationToAll(context.Background(), Notification{Title: "Hi", Body: "There"})
	require.ErrorIs(t, err, ErrNotifierUnavailable)
}

func TestGetStatistics(t *testing.T) {
	svc := newTestService(t)
	seedTaxonomy(t, svc)
	ctx := context.Background()

	published := models.PostStatusPublished
	_, err := svc.CreatePost(ctx, CreatePostRequest{
		Title: "Live", CategorySlug: "news", SubcategorySlug: "headlines",
		Content: postContent(), Status: published,
	})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, CreatePostRequest{
		Title: "Pending", CategorySlug: "news", SubcategorySlug: "headlines",
		Content: postContent(),
	})
	require.NoError(t, err)
	_, err = svc.CreateCard(ctx, CreateCardRequest{
		Name: "Job", CardHeading: "Apply",
		CategorySlug: "news", SubcategorySlug: "jobs",
	})
	require.NoError(t, err)

	stats, err := svc.GetStatistics(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Categories)
	require.Equal(t, 3, stats.Subcategories)
	require.Equal(t, 2, stats.Posts)
	require.Equal(t, 1, stats.PublishedPosts)
	require.Equal(t, 1, stats.DraftPosts)
	require.Equal(t, 1, stats.Cards)
	require.Len(t, stats.PerCategory, 1)
	require.Equal(t, "news", stats.PerCategory[0].Slug)
}

// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

// Package notify delivers push notifications to registered devices
// through Firebase Cloud Messaging.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rajkhabar/internal/cms"
)

const (
	defaultEndpoint = "https://fcm.googleapis.com/fcm/send"

	// androidChannel must match the channel the app registers on install.
	androidChannel = "raj_khabar_channel"

	// FCM caps registration_ids at 1000 per request.
	batchSize = 1000
)

// FCM sends multicast pushes via the FCM HTTP API. It implements
// cms.Notifier.
type FCM struct {
	serverKey string
	endpoint  string
	client    *http.Client
}

// NewFCM creates the FCM gateway. Returns nil when serverKey is empty so
// callers can wire the notifier conditionally.
func NewFCM(serverKey string) *FCM {
	if serverKey == "" {
		return nil
	}
	return &FCM{
		serverKey: serverKey,
		endpoint:  defaultEndpoint,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type fcmNotification struct {
	Title            string `json:"title"`
	Body             string `json:"body"`
	AndroidChannelID string `json:"android_channel_id"`
	Sound            string `json:"sound"`
}

type fcmRequest struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Priority        string            `json:"priority"`
	Notification    fcmNotification   `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
}

type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// NotifyTokens pushes one notification to all tokens, batching to the FCM
// multicast limit. A batch that fails stops the remaining batches.
func (f *FCM) NotifyTokens(ctx context.Context, tokens []string, n cms.Notification) error {
	for start := 0; start < len(tokens); start += batchSize {
		end := start + batchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		if err := f.send(ctx, tokens[start:end], n); err != nil {
			return err
		}
	}
	return nil
}

// send performs one multicast HTTP call.
func (f *FCM) send(ctx context.Context, tokens []string, n cms.Notification) error {
	body := fcmRequest{
		RegistrationIDs: tokens,
		Priority:        "high",
		Notification: fcmNotification{
			Title:            n.Title,
			Body:             n.Body,
			AndroidChannelID: androidChannel,
			Sound:            "default",
		},
		Data: n.Data,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("fcm marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("fcm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+f.serverKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("fcm http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("fcm read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fcm API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result fcmResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("fcm unmarshal: %w", err)
	}
	if result.Success == 0 && result.Failure > 0 {
		return fmt.Errorf("fcm: all %d deliveries failed", result.Failure)
	}
	return nil
}

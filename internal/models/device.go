// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Device is a registered mobile device in the push-notification registry.
// DeviceID is the client-generated installation id and is unique; the FCM
// token may rotate and is updated in place on re-registration.
type Device struct {
	ID                  uuid.UUID `json:"id"`
	DeviceID            string    `json:"deviceId"`
	DeviceName          string    `json:"deviceName,omitempty"`
	FCMToken            string    `json:"fcmToken,omitempty"`
	NotificationEnabled bool      `json:"notificationEnabled"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

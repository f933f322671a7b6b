// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package cms

import (
	"context"
	"fmt"

	"rajkhabar/internal/models"
)

// RegisterDeviceRequest carries the device registration payload sent by
// the mobile app on startup.
type RegisterDeviceRequest struct {
	DeviceID            string `json:"deviceId"`
	DeviceName          string `json:"deviceName"`
	FCMToken            string `json:"fcmToken"`
	NotificationEnabled *bool  `json:"notificationEnabled"`
}

// RegisterDevice upserts a device by its installation id. Re-registration
// refreshes the FCM token in place; tokens rotate on app reinstall.
func (s *Service) RegisterDevice(ctx context.Context, req RegisterDeviceRequest) (*models.Device, error) {
	if req.DeviceID == "" {
		return nil, fmt.Errorf("%w: deviceId is required", ErrValidation)
	}

	existing, err := s.stores.Devices.FindByDeviceID(ctx, req.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("find device: %w", err)
	}
	if existing != nil {
		if req.FCMToken != "" {
			existing.FCMToken = req.FCMToken
		}
		if req.DeviceName != "" {
			existing.DeviceName = req.DeviceName
		}
		if req.NotificationEnabled != nil {
			existing.NotificationEnabled = *req.NotificationEnabled
		}
		if err := s.stores.Devices.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update device: %w", err)
		}
		return existing, nil
	}

	d := &models.Device{
		DeviceID:            req.DeviceID,
		DeviceName:          req.DeviceName,
		FCMToken:            req.FCMToken,
		NotificationEnabled: true,
	}
	if req.NotificationEnabled != nil {
		d.NotificationEnabled = *req.NotificationEnabled
	}
	created, err := s.stores.Devices.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("register device: %w", err)
	}
	return created, nil
}

// SetDeviceNotifications toggles push delivery for one device.
func (s *Service) SetDeviceNotifications(ctx context.Context, deviceID string, enabled bool) (*models.Device, error) {
	d, err := s.stores.Devices.FindByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("find device: %w", err)
	}
	if d == nil {
		return nil, fmt.Errorf("device %w: %q", ErrContentNotFound, deviceID)
	}
	d.NotificationEnabled = enabled
	if err := s.stores.Devices.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("update device: %w", err)
	}
	return d, nil
}

// UnregisterDevice removes a device from the registry.
func (s *Service) UnregisterDevice(ctx context.Context, deviceID string) error {
	d, err := s.stores.Devices.FindByDeviceID(ctx, deviceID)
	if err != nil {
		return fmt.Errorf("find device: %w", err)
	}
	if d == nil {
		return fmt.Errorf("device %w: %q", ErrContentNotFound, deviceID)
	}
	if err := s.stores.Devices.Delete(ctx, d.ID); err != nil {
		return fmt.Errorf("unregister device %q: %w", deviceID, err)
	}
	return nil
}

// ListDevices returns every registered device.
func (s *Service) ListDevices(ctx context.Context) ([]models.Device, error) {
	return s.stores.Devices.List(ctx)
}

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

const deviceColumns = `id, device_id, device_name, fcm_token, notification_enabled, created_at, updated_at`

// DeviceStore handles the push-notification device registry.
type DeviceStore struct {
	db *sql.DB
}

// NewDeviceStore creates a DeviceStore over the given connection.
func NewDeviceStore(db *sql.DB) *DeviceStore {
	return &DeviceStore{db: db}
}

func scanDevice(row interface{ Scan(...any) error }) (*models.Device, error) {
	d := &models.Device{}
	err := row.Scan(&d.ID, &d.DeviceID, &d.DeviceName, &d.FCMToken, &d.NotificationEnabled, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DeviceStore) Create(ctx context.Context, d *models.Device) (*models.Device, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO devices (device_id, device_name, fcm_token, notification_enabled)
		VALUES ($1, $2, $3, $4)
		RETURNING `+deviceColumns,
		d.DeviceID, d.DeviceName, d.FCMToken, d.NotificationEnabled,
	)
	created, err := scanDevice(row)
	if err != nil {
		return nil, fmt.Errorf("create device: %w", err)
	}
	return created, nil
}

func (s *DeviceStore) Update(ctx context.Context, d *models.Device) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE devices SET device_name = $1, fcm_token = $2, notification_enabled = $3, updated_at = NOW()
		WHERE id = $4
	`, d.DeviceName, d.FCMToken, d.NotificationEnabled, d.ID)
	if err != nil {
		return fmt.Errorf("update device: %w", err)
	}
	return nil
}

func (s *DeviceStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete device: %w", err)
	}
	return nil
}

func (s *DeviceStore) FindByDeviceID(ctx context.Context, deviceID string) (*models.Device, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+deviceColumns+` FROM devices WHERE device_id = $1`, deviceID)
	d, err := scanDevice(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find device: %w", err)
	}
	return d, nil
}

func (s *DeviceStore) List(ctx context.Context) ([]models.Device, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+deviceColumns+` FROM devices ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()

	var items []models.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		items = append(items, *d)
	}
	return items, rows.Err()
}

func (s *DeviceStore) ListEnabledTokens(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT fcm_token FROM devices WHERE notification_enabled AND fcm_token <> ''`)
	if err != nil {
		return nil, fmt.Errorf("list device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan device token: %w", err)
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (s *DeviceStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM devices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count devices: %w", err)
	}
	return count, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

//go:generate mockgen -source=interfaces.go -destination=../mock/config_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pi-config/models"
)

// ConfigService is the part of the config service the commands drive.
// *configsvc.Service[models.Document] satisfies it.
type ConfigService interface {
	AppName() string
	Config() models.Document
	Origins() map[string]string
	Paths() map[models.LayerName]string
	Set(ctx context.Context, key string, value any, target models.LayerName) error
	Unset(ctx context.Context, key string, target models.LayerName) error
	Save(ctx context.Context, target models.LayerName) error
}

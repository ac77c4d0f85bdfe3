// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-pi-config/internal/logger"
	"github.com/MKhiriev/go-pi-config/models"
)

// validate checks that the merged [Settings] can drive a picfg run.
func (s *Settings) validate() error {
	if len(s.Args) == 0 {
		return ErrMissingCommand
	}

	// version describes picfg itself and needs no application.
	if s.App == "" && s.Args[0] != CommandVersion {
		return ErrMissingApp
	}

	if s.Target != "" {
		target, err := models.ParseLayerName(s.Target)
		if err != nil || target == models.LayerEnvironment {
			return fmt.Errorf("%w: %q", ErrInvalidTarget, s.Target)
		}
	}

	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, s.LogLevel)
	}

	switch s.LogFormat {
	case "", logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, s.LogFormat)
	}

	return nil
}

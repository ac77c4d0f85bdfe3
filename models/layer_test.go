// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayerName(t *testing.T) {
	tests := []struct {
		in      string
		want    LayerName
		wantErr bool
	}{
		{in: "environment", want: LayerEnvironment},
		{in: "project", want: LayerProject},
		{in: "home", want: LayerHome},
		{in: "", wantErr: true},
		{in: "Home", wantErr: true},
		{in: "global", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLayerName(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownTarget)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLayerNames_AscendingPrecedence(t *testing.T) {
	assert.Equal(t, []LayerName{LayerHome, LayerProject, LayerEnvironment}, LayerNames)
}

func TestNewAppBuildInfo_FillsEmptyValues(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "", "")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: 1.2.3\nBuild date: N/A\nBuild commit: N/A\n", info.String())
}

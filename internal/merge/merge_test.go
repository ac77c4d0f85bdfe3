// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import (
	"fmt"
	"testing"

	"github.com/MKhiriev/go-pi-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_ExampleScenario(t *testing.T) {
	got := Merge(
		models.Document{"a": "d"},
		models.Document{"c": "p", "shared": "p"},
		models.Document{"b": "h", "shared": "h"},
		nil,
	)

	assert.Equal(t, models.Document{"a": "d", "b": "h", "c": "p", "shared": "p"}, got)
}

func TestMerge_Matrix(t *testing.T) {
	defaults := models.Document{"defaultOnly": "default", "shared": "default"}
	home := models.Document{"homeOnly": "home", "shared": "home"}
	project := models.Document{"projectOnly": "project", "shared": "project"}

	for _, hasDefaults := range []bool{false, true} {
		for _, hasHome := range []bool{false, true} {
			for _, hasProject := range []bool{false, true} {
				name := fmt.Sprintf("defaults=%t,home=%t,project=%t", hasDefaults, hasHome, hasProject)
				t.Run(name, func(t *testing.T) {
					var d, h, p models.Document
					want := models.Document{}
					if hasDefaults {
						d = defaults
						want["defaultOnly"] = "default"
						want["shared"] = "default"
					}
					if hasHome {
						h = home
						want["homeOnly"] = "home"
						want["shared"] = "home"
					}
					if hasProject {
						p = project
						want["projectOnly"] = "project"
						want["shared"] = "project"
					}

					assert.Equal(t, want, Merge(d, p, h, nil))
				})
			}
		}
	}
}

func TestMerge_EnvironmentWins(t *testing.T) {
	got := Merge(
		models.Document{"k": "default"},
		models.Document{"k": "project"},
		models.Document{"k": "home"},
		models.Document{"k": "env"},
	)

	assert.Equal(t, "env", got["k"])
}

func TestMerge_IsShallow(t *testing.T) {
	got := Merge(
		nil,
		models.Document{"db": map[string]any{"host": "project-host"}},
		models.Document{"db": map[string]any{"host": "home-host", "port": float64(5432)}},
		nil,
	)

	assert.Equal(t, map[string]any{"host": "project-host"}, got["db"])
}

func TestMerge_AllEmptyIsEmptyDocument(t *testing.T) {
	got := Merge(nil, nil, nil, nil)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFold_OriginsAndRankOrder(t *testing.T) {
	res := Fold(
		Entry{Origin: "high", Rank: 30, Doc: models.Document{"a": 3}},
		Entry{Origin: "low", Rank: 0, Doc: models.Document{"a": 1, "b": 1}},
		Entry{Origin: "mid", Rank: 10, Doc: models.Document{"b": 2}},
	)

	assert.Equal(t, models.Document{"a": 3, "b": 2}, res.Doc)
	assert.Equal(t, map[string]string{"a": "high", "b": "mid"}, res.Origins)
}

func TestFold_EqualRanksKeepInputOrder(t *testing.T) {
	res := Fold(
		Entry{Origin: "first", Rank: 5, Doc: models.Document{"a": "first"}},
		Entry{Origin: "second", Rank: 5, Doc: models.Document{"a": "second"}},
	)

	assert.Equal(t, "second", res.Doc["a"])
}

func TestFold_ResultDoesNotAliasInputs(t *testing.T) {
	nested := map[string]any{"x": "before"}
	list := []any{"one"}
	res := Fold(Entry{Origin: "src", Doc: models.Document{"nested": nested, "list": list}})

	res.Doc["nested"].(map[string]any)["x"] = "after"
	res.Doc["list"].([]any)[0] = "two"

	assert.Equal(t, "before", nested["x"])
	assert.Equal(t, "one", list[0])
}

func TestRankOf(t *testing.T) {
	assert.Less(t, RankOf(models.LayerHome), RankOf(models.LayerProject))
	assert.Less(t, RankOf(models.LayerProject), RankOf(models.LayerEnvironment))
	assert.Equal(t, RankDefaults, RankOf("unknown"))
}

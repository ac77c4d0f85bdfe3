// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import (
	"slices"

	"github.com/MKhiriev/go-pi-config/models"
)

// Ranks of the standard sources. Higher ranks override lower ones.
const (
	RankDefaults    = 0
	RankHome        = 10
	RankProject     = 20
	RankEnvironment = 30
)

// Entry is one ranked document taking part in a fold.
type Entry struct {
	// Origin names the source of Doc (a layer name or "defaults").
	Origin string
	// Rank orders the fold; entries with equal rank keep their input order.
	Rank int
	// Doc may be nil, which is treated as empty.
	Doc models.Document
}

// Result is the outcome of a fold.
type Result struct {
	// Doc is the merged view. It is never nil and shares no maps or slices
	// with the input documents.
	Doc models.Document
	// Origins maps every top-level key of Doc to the Origin of the entry
	// that supplied it.
	Origins map[string]string
}

// Fold shallow-merges entries in ascending rank order.
func Fold(entries ...Entry) Result {
	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b Entry) int {
		return a.Rank - b.Rank
	})

	res := Result{
		Doc:     make(models.Document),
		Origins: make(map[string]string),
	}
	for _, e := range ordered {
		for key, val := range e.Doc {
			res.Doc[key] = CloneValue(val)
			res.Origins[key] = e.Origin
		}
	}

	return res
}

// Merge folds the four standard sources with the precedence
// defaults < home < project < environment.
func Merge(defaults, project, home, env models.Document) models.Document {
	return Fold(
		Entry{Origin: models.OriginDefaults, Rank: RankDefaults, Doc: defaults},
		Entry{Origin: models.LayerHome.String(), Rank: RankHome, Doc: home},
		Entry{Origin: models.LayerProject.String(), Rank: RankProject, Doc: project},
		Entry{Origin: models.LayerEnvironment.String(), Rank: RankEnvironment, Doc: env},
	).Doc
}

// RankOf returns the standard rank of a layer.
func RankOf(name models.LayerName) int {
	switch name {
	case models.LayerHome:
		return RankHome
	case models.LayerProject:
		return RankProject
	case models.LayerEnvironment:
		return RankEnvironment
	default:
		return RankDefaults
	}
}

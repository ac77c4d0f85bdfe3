// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configsvc

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-pi-config/internal/discovery"
	"github.com/MKhiriev/go-pi-config/internal/logger"
	"github.com/MKhiriev/go-pi-config/internal/merge"
	"github.com/MKhiriev/go-pi-config/internal/store"
	"github.com/MKhiriev/go-pi-config/models"
	"github.com/MKhiriev/go-pi-config/validators"
)

// snapshot is one published resolution result. It is never mutated after
// being stored.
type snapshot[T any] struct {
	config  T
	origins map[string]string
}

// Service holds the layers of one application and its current typed
// config.
//
// Set, Unset, Reload and Save are serialized per instance: each call runs
// its whole resolution cycle before the next one starts. Config, Origins
// and Paths never block and always observe a fully validated snapshot.
type Service[T any] struct {
	appName   string
	defaults  models.Document
	validator validators.Validator[T]
	stack     *store.Stack
	log       *logger.Logger

	mu      sync.Mutex
	current atomic.Pointer[snapshot[T]]
}

// New resolves the configuration of appName and returns a service holding
// it.
//
// The project root is discovered with git (see [WithDiscoverer]); when
// discovery fails the working directory is used instead. All layers are read
// and validated once. If any layer cannot be read or the validator rejects
// the merged view, New returns the error and no service.
func New[T any](ctx context.Context, appName string, opts ...Option[T]) (*Service[T], error) {
	if err := validateAppName(appName); err != nil {
		return nil, err
	}

	o := &options[T]{}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.fillDefaults(); err != nil {
		return nil, fmt.Errorf("error resolving config directories: %w", err)
	}

	log := o.log.WithStr("app", appName)

	stack := o.stack
	if stack == nil {
		root, err := discovery.RootOrFallback(ctx, o.discoverer, o.workingDir)
		if err != nil {
			log.Debug().Err(err).Str("fallback", root).Msg("project root not discovered, using working directory")
		}
		stack = store.NewStandardStack(appName, o.homeDir, root, o.environ)
	}

	s := &Service[T]{
		appName:   appName,
		defaults:  o.defaults,
		validator: o.validator,
		stack:     stack,
		log:       log,
	}

	if err := s.reload(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// AppName returns the application name the service was created for.
func (s *Service[T]) AppName() string {
	return s.appName
}

// Config returns the most recently published typed config. When T holds a
// [models.Document] the caller gets its own copy.
func (s *Service[T]) Config() T {
	cfg := s.current.Load().config
	if doc, ok := any(cfg).(models.Document); ok {
		if clone, ok := any(merge.Clone(doc)).(T); ok {
			return clone
		}
	}
	return cfg
}

// Origins reports, for each top-level key of the merged view behind
// [Service.Config], the source that supplied it: a layer name or
// [models.OriginDefaults].
func (s *Service[T]) Origins() map[string]string {
	return maps.Clone(s.current.Load().origins)
}

// Paths returns the backing-store descriptor of every layer.
func (s *Service[T]) Paths() map[models.LayerName]string {
	paths := make(map[models.LayerName]string)
	for _, l := range s.stack.All() {
		paths[l.Name()] = l.Path()
	}
	return paths
}

// Set stores value at key (segments separated by ".") in the in-memory
// snapshot of target and republishes the config. An empty target means
// [models.LayerProject]. Nothing is written to disk; call [Service.Save] for
// that.
//
// If the new merged view fails validation, the layer is restored and the
// previous config stays published.
func (s *Service[T]) Set(ctx context.Context, key string, value any, target models.LayerName) error {
	if target == "" {
		target = models.LayerProject
	}

	return s.mutate(ctx, target, func(l store.Layer) error {
		if err := l.Set(key, value); err != nil {
			return fmt.Errorf("error setting %q in %s config: %w", key, target, err)
		}
		return nil
	})
}

// Unset removes key from the in-memory snapshot of target and republishes
// the config. An empty target means [models.LayerProject]. Removing a key
// that is not present is not an error.
func (s *Service[T]) Unset(ctx context.Context, key string, target models.LayerName) error {
	if target == "" {
		target = models.LayerProject
	}

	return s.mutate(ctx, target, func(l store.Layer) error {
		if err := l.Unset(key); err != nil {
			return fmt.Errorf("error removing %q from %s config: %w", key, target, err)
		}
		return nil
	})
}

// Reload re-reads every layer from its backing store, discarding unsaved
// changes, and republishes the config. On failure the layers and the
// published config are left as they were.
func (s *Service[T]) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reload(ctx)
}

// Save writes the in-memory snapshot of target to its backing store and then
// reloads all layers. An empty target means [models.LayerHome].
func (s *Service[T]) Save(ctx context.Context, target models.LayerName) error {
	if target == "" {
		target = models.LayerHome
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.stack.Lookup(target)
	if err != nil {
		return err
	}

	if err = l.Persist(ctx); err != nil {
		return fmt.Errorf("error saving %s config: %w", target, err)
	}
	s.log.Debug().Str("layer", target.String()).Str("path", l.Path()).Msg("config layer saved")

	return s.reload(ctx)
}

// mutate applies change to the target layer and republishes. The layer is
// rolled back when resolution fails.
func (s *Service[T]) mutate(ctx context.Context, target models.LayerName, change func(store.Layer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.stack.Lookup(target)
	if err != nil {
		return err
	}

	before := l.Get()
	if err = change(l); err != nil {
		return err
	}

	layers := s.stack.All()
	docs := make([]models.Document, len(layers))
	for i, layer := range layers {
		docs[i] = layer.Get()
	}

	snap, err := s.resolve(ctx, docs)
	if err != nil {
		l.Apply(before)
		return err
	}

	s.current.Store(snap)
	return nil
}

// reload stages every layer's backing-store document, resolves them, and
// commits the staged documents only if resolution succeeds. Callers hold mu
// (or own the service exclusively, as New does).
func (s *Service[T]) reload(ctx context.Context) error {
	layers := s.stack.All()
	staged := make([]models.Document, len(layers))
	for i, l := range layers {
		doc, err := l.Load(ctx)
		if err != nil {
			return fmt.Errorf("error loading %s config: %w", l.Name(), err)
		}
		staged[i] = doc
	}

	snap, err := s.resolve(ctx, staged)
	if err != nil {
		return err
	}

	for i, l := range layers {
		l.Apply(staged[i])
	}
	s.current.Store(snap)

	return nil
}

// resolve merges defaults with docs (one per stack layer, same order) and
// runs the validator once.
func (s *Service[T]) resolve(ctx context.Context, docs []models.Document) (*snapshot[T], error) {
	layers := s.stack.All()
	entries := make([]merge.Entry, 0, len(layers)+1)
	entries = append(entries, merge.Entry{Origin: models.OriginDefaults, Rank: merge.RankDefaults, Doc: s.defaults})
	for i, l := range layers {
		entries = append(entries, merge.Entry{
			Origin: l.Name().String(),
			Rank:   merge.RankOf(l.Name()),
			Doc:    docs[i],
		})
	}

	res := merge.Fold(entries...)

	cfg, err := s.validator.Validate(ctx, res.Doc)
	if err != nil {
		s.log.Debug().Err(err).Msg("merged config rejected by validator")
		return nil, &ValidationError{Err: err}
	}

	s.log.Debug().Int("keys", len(res.Doc)).Msg("config resolved")

	return &snapshot[T]{config: cfg, origins: res.Origins}, nil
}

func validateAppName(appName string) error {
	if strings.TrimSpace(appName) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAppName)
	}
	if strings.ContainsAny(appName, `/\`) || appName == "." || appName == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidAppName, appName)
	}
	return nil
}

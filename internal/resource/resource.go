// Package resource implements the uniform CRUD contract every manipulable
// entity shares: list/get/create/update/delete over the HTTP client, a
// per-resource collection cache invalidated on every successful write, and
// user-facing notifications on mutation outcomes. Writes are
// last-write-confirmed, never optimistic: a failed mutation leaves cached
// state untouched.
package resource

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	"github.com/chrom13/schoolmanager-web/api"
	"github.com/chrom13/schoolmanager-web/internal/cache"
	"github.com/chrom13/schoolmanager-web/notify"
)

// Deps are the collaborators shared by all resource services.
type Deps struct {
	Client   *api.Client
	Cache    *cache.Cache
	Notifier notify.Notifier
}

// Validate reports the first missing dependency.
func (d Deps) Validate() error {
	if d.Client == nil {
		return errors.New("[resource.Deps] Client is required")
	}
	if d.Cache == nil {
		return errors.New("[resource.Deps] Cache is required")
	}
	if d.Notifier == nil {
		return errors.New("[resource.Deps] Notifier is required")
	}
	return nil
}

// Labels are the notification messages for one resource, in the user's
// language. Failure labels are fallbacks used when the server sends no
// message of its own.
type Labels struct {
	Created   string
	Updated   string
	Deleted   string
	CreateErr string
	UpdateErr string
	DeleteErr string
}

// Service is the typed CRUD accessor for one resource. T is the entity,
// C and U the create and update inputs.
type Service[T any, C any, U any] struct {
	deps   Deps
	name   string // cache key, e.g. "niveles"
	path   string // URL prefix, e.g. "/niveles"
	labels Labels
}

// New builds a Service. name doubles as the cache key; path is the URL
// prefix of the resource's endpoints.
func New[T any, C any, U any](deps Deps, name, path string, labels Labels) *Service[T, C, U] {
	return &Service[T, C, U]{
		deps:   deps,
		name:   name,
		path:   path,
		labels: labels,
	}
}

// List returns the full collection, serving the cached copy when present.
func (s *Service[T, C, U]) List(ctx context.Context) ([]T, error) {
	return s.ListVariant(ctx, "", "", nil)
}

// ListVariant returns a filtered or searched collection. Variant names the
// cache slot ("" for the plain list); subpath extends the resource path
// (e.g. "/search"); query carries the filter parameters.
func (s *Service[T, C, U]) ListVariant(ctx context.Context, variant, subpath string, query url.Values) ([]T, error) {
	if cached, ok := cache.Lookup[[]T](s.deps.Cache, s.name, variant); ok {
		return cached, nil
	}
	var resp api.Envelope[[]T]
	if err := s.deps.Client.Get(ctx, s.path+subpath, query, &resp); err != nil {
		return nil, errors.Wrapf(err, "[List] fetching %s", s.name)
	}
	s.deps.Cache.Set(s.name, variant, resp.Data)
	return resp.Data, nil
}

// Get fetches a single record by id, bypassing the cache.
func (s *Service[T, C, U]) Get(ctx context.Context, id int) (T, error) {
	var resp api.Envelope[T]
	if err := s.deps.Client.Get(ctx, s.itemPath(id), nil, &resp); err != nil {
		return resp.Data, errors.Wrapf(err, "[Get] fetching %s %d", s.name, id)
	}
	return resp.Data, nil
}

// Create posts a new record. Success invalidates the cached lists and
// notifies; failure notifies with the server message and leaves the cache
// alone.
func (s *Service[T, C, U]) Create(ctx context.Context, input C) (T, error) {
	var resp api.Envelope[T]
	if err := s.deps.Client.Post(ctx, s.path, input, &resp); err != nil {
		s.deps.Notifier.Error(failureMessage(err, s.labels.CreateErr))
		return resp.Data, errors.Wrapf(err, "[Create] creating %s", s.name)
	}
	s.invalidate()
	s.deps.Notifier.Success(s.labels.Created)
	return resp.Data, nil
}

// Update puts a partial update for the record.
func (s *Service[T, C, U]) Update(ctx context.Context, id int, input U) (T, error) {
	var resp api.Envelope[T]
	if err := s.deps.Client.Put(ctx, s.itemPath(id), input, &resp); err != nil {
		s.deps.Notifier.Error(failureMessage(err, s.labels.UpdateErr))
		return resp.Data, errors.Wrapf(err, "[Update] updating %s %d", s.name, id)
	}
	s.invalidate()
	s.deps.Notifier.Success(s.labels.Updated)
	return resp.Data, nil
}

// Delete removes the record.
func (s *Service[T, C, U]) Delete(ctx context.Context, id int) error {
	if err := s.deps.Client.Delete(ctx, s.itemPath(id)); err != nil {
		s.deps.Notifier.Error(failureMessage(err, s.labels.DeleteErr))
		return errors.Wrapf(err, "[Delete] deleting %s %d", s.name, id)
	}
	s.invalidate()
	s.deps.Notifier.Success(s.labels.Deleted)
	return nil
}

// Mutate runs an arbitrary write against the resource (association
// endpoints), with the same invalidation and notification discipline. also
// names additional resources whose caches the write touches; association
// mutations pass the other side of the link.
func (s *Service[T, C, U]) Mutate(ctx context.Context, run func(ctx context.Context, c *api.Client) error, success, failure string, also ...string) error {
	if err := run(ctx, s.deps.Client); err != nil {
		s.deps.Notifier.Error(failureMessage(err, failure))
		return err
	}
	s.invalidate(also...)
	s.deps.Notifier.Success(success)
	return nil
}

// Client exposes the transport for resource-specific endpoints that fall
// outside the uniform contract.
func (s *Service[T, C, U]) Client() *api.Client {
	return s.deps.Client
}

func (s *Service[T, C, U]) itemPath(id int) string {
	return fmt.Sprintf("%s/%d", s.path, id)
}

func (s *Service[T, C, U]) invalidate(also ...string) {
	s.deps.Cache.Invalidate(s.name)
	for _, other := range also {
		s.deps.Cache.Invalidate(other)
	}
}

// failureMessage prefers the server-provided message over the local
// fallback, except for network failures where the server said nothing
// meaningful.
func failureMessage(err error, fallback string) string {
	if apiErr, ok := api.AsError(err); ok && !apiErr.Network && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

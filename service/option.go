package service

import (
	"github.com/viant/afs"
	"github.com/viant/aiperson/internal/modelcache"
)

// Option customises Service.
type Option func(s *Service)

// WithFS sets the storage service.
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// WithModelLoader overrides the provider factory.
func WithModelLoader(loader ModelLoader) Option {
	return func(s *Service) { s.loader = loader }
}

// WithMaterializer overrides the hub downloader.
func WithMaterializer(materializer modelcache.Materializer) Option {
	return func(s *Service) { s.materializer = materializer }
}

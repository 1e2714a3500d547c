package hub

import (
	"io"
	"net/http"
)

type Option func(s *Service)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

// WithProgress sends download progress bars to w instead of stderr.
func WithProgress(w io.Writer) Option {
	return func(s *Service) {
		s.progress = w
	}
}

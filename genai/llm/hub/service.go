package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/aiperson/internal/log"
)

const stagingSuffix = ".download"

// Service downloads model repositories from a hub and removes local copies.
type Service struct {
	fs       afs.Service
	client   *http.Client
	config   *Config
	progress io.Writer
}

type modelInfo struct {
	ID       string `json:"id"`
	Siblings []struct {
		Filename string `json:"rfilename"`
	} `json:"siblings"`
}

// Materialize downloads the files of modelID matching the configured patterns
// into targetDir and returns targetDir. Files land in a staging directory that
// replaces targetDir only once every download succeeded.
func (s *Service) Materialize(ctx context.Context, modelID, targetDir string) (string, error) {
	modelID = strings.Trim(strings.TrimSpace(modelID), "/")
	if modelID == "" {
		return "", fmt.Errorf("model id was empty")
	}
	files, err := s.listFiles(ctx, modelID)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("model %v has no files matching %v", modelID, s.config.Patterns)
	}

	staging := targetDir + stagingSuffix
	_ = s.fs.Delete(ctx, staging)
	for _, name := range files {
		if err := s.download(ctx, modelID, name, url.Join(staging, name)); err != nil {
			_ = s.fs.Delete(ctx, staging)
			return "", err
		}
	}
	if ok, _ := s.fs.Exists(ctx, targetDir); ok {
		if err := s.fs.Delete(ctx, targetDir); err != nil {
			_ = s.fs.Delete(ctx, staging)
			return "", fmt.Errorf("failed to replace %v: %w", targetDir, err)
		}
	}
	if err := s.fs.Move(ctx, staging, targetDir); err != nil {
		_ = s.fs.Delete(ctx, staging)
		return "", fmt.Errorf("failed to move %v to %v: %w", staging, targetDir, err)
	}
	log.Emit(log.ModelCache, map[string]interface{}{"model": modelID, "path": targetDir, "files": files})
	return targetDir, nil
}

// Remove deletes a materialized model directory; a missing path is not an error.
func (s *Service) Remove(ctx context.Context, location string) error {
	ok, err := s.fs.Exists(ctx, location)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return s.fs.Delete(ctx, location)
}

func (s *Service) listFiles(ctx context.Context, modelID string) ([]string, error) {
	URL := strings.TrimRight(s.config.URL, "/") + "/api/models/" + modelID
	if s.config.Revision != "" && s.config.Revision != DefaultRevision {
		URL += "/revision/" + s.config.Revision
	}
	resp, err := s.get(ctx, URL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	info := &modelInfo{}
	if err := json.NewDecoder(resp.Body).Decode(info); err != nil {
		return nil, fmt.Errorf("failed to decode model info for %v: %w", modelID, err)
	}
	var result []string
	for _, sibling := range info.Siblings {
		if s.matches(sibling.Filename) {
			result = append(result, sibling.Filename)
		}
	}
	return result, nil
}

func (s *Service) matches(name string) bool {
	base := path.Base(name)
	for _, pattern := range s.config.Patterns {
		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

func (s *Service) download(ctx context.Context, modelID, name, dest string) error {
	URL := strings.TrimRight(s.config.URL, "/") + "/" + modelID + "/resolve/" + s.config.Revision + "/" + name
	resp, err := s.get(ctx, URL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	bar := s.progressBar(resp.ContentLength, name)
	if err := s.fs.Upload(ctx, dest, file.DefaultFileOsMode, io.TeeReader(resp.Body, bar)); err != nil {
		return fmt.Errorf("failed to download %v: %w", name, err)
	}
	return nil
}

func (s *Service) progressBar(size int64, name string) *progressbar.ProgressBar {
	if s.progress == nil {
		return progressbar.DefaultBytes(size, name)
	}
	return progressbar.NewOptions64(size,
		progressbar.OptionSetDescription(name),
		progressbar.OptionSetWriter(s.progress),
		progressbar.OptionShowBytes(true))
}

func (s *Service) get(ctx context.Context, URL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, err
	}
	if token := os.Getenv(s.config.TokenEnv); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get %v: %w", URL, err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("failed to get %v: status %d: %s", URL, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return resp, nil
}

// New creates a hub service.
func New(fs afs.Service, config *Config, options ...Option) *Service {
	if config == nil {
		config = &Config{}
	}
	cfg := *config
	cfg.Init()
	ret := &Service{fs: fs, client: http.DefaultClient, config: &cfg}
	for _, option := range options {
		option(ret)
	}
	return ret
}

package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/viant/aiperson/genai/llm"
)

// Generate sends a raw generate request to the Ollama API and returns the
// concatenated streamed response.
func (c *Client) Generate(ctx context.Context, request *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if c.Model == "" {
		return nil, fmt.Errorf("%w: model is required", llm.ErrInference)
	}
	if request == nil {
		return nil, fmt.Errorf("%w: request was nil", llm.ErrInference)
	}
	req := ToRequest(request, c.Model, c.RequestOptions(request))

	resp, err := c.post(ctx, "/api/generate", req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrInference, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: API request failed with status %d: %s", llm.ErrInference, resp.StatusCode, string(body))
	}

	apiResp, err := readStream(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrInference, err)
	}
	llmResp := ToLLMResponse(apiResp)
	if c.UsageListener != nil && llmResp.Usage.TotalTokens > 0 {
		c.UsageListener.OnUsage(req.Model, llmResp.Usage)
	}
	return llmResp, nil
}

// readStream folds NDJSON chunks into a single Response.
func readStream(body io.Reader) (*Response, error) {
	reader := bufio.NewReader(body)
	apiResp := &Response{}
	for {
		line, err := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			var chunk Response
			if uErr := json.Unmarshal(line, &chunk); uErr != nil {
				return nil, fmt.Errorf("failed to unmarshal stream chunk: %w", uErr)
			}
			if chunk.Error != "" {
				return nil, errors.New(chunk.Error)
			}
			apiResp.Response += chunk.Response
			apiResp.PromptEvalCount += chunk.PromptEvalCount
			apiResp.EvalCount += chunk.EvalCount
			apiResp.Done = chunk.Done
			apiResp.CreatedAt = chunk.CreatedAt
			if chunk.Model != "" {
				apiResp.Model = chunk.Model
			}
			if chunk.Done {
				return apiResp, nil
			}
		}
		if err != nil {
			if err == io.EOF {
				return apiResp, nil
			}
			return nil, fmt.Errorf("failed to read response: %w", err)
		}
	}
}

// Load checks the model is known to the server, pulling it first when
// AutoPull is enabled.
func (c *Client) Load(ctx context.Context) error {
	if c.Model == "" {
		return fmt.Errorf("%w: model is required", llm.ErrModelLoad)
	}
	resp, err := c.post(ctx, "/api/show", &ShowRequest{Name: c.Model})
	if err != nil {
		return fmt.Errorf("%w: %v", llm.ErrModelLoad, err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound && c.AutoPull:
		if _, err := c.PullModel(ctx, c.Model); err != nil {
			return fmt.Errorf("%w: %v", llm.ErrModelLoad, err)
		}
		return nil
	}
	return fmt.Errorf("%w: model %s: status %d: %s", llm.ErrModelLoad, c.Model, resp.StatusCode, string(body))
}

// sendPullRequest sends a pull request to the Ollama API and returns the response
func (c *Client) sendPullRequest(ctx context.Context, request *PullRequest) (*PullResponse, error) {
	resp, err := c.post(ctx, "/api/pull", request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	var pullResp PullResponse
	if err := json.Unmarshal(body, &pullResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pull response: %w", err)
	}
	if pullResp.Error != "" {
		return nil, errors.New(pullResp.Error)
	}
	return &pullResp, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

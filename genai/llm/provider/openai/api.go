package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/viant/aiperson/genai/llm"
)

// Generate sends the prompt to /completions and returns the first choice.
func (c *Client) Generate(ctx context.Context, request *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if c.Model == "" {
		return nil, fmt.Errorf("%w: model is required", llm.ErrInference)
	}
	if request == nil {
		return nil, fmt.Errorf("%w: request was nil", llm.ErrInference)
	}
	req := ToRequest(request, c.Model, c.RequestOptions(request))
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", llm.ErrInference, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/completions", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create HTTP request: %v", llm.ErrInference, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %v", llm.ErrInference, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", llm.ErrInference, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: API request failed with status %d: %s", llm.ErrInference, resp.StatusCode, string(body))
	}
	var apiResp Response
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal response: %v", llm.ErrInference, err)
	}
	if apiResp.Error != nil {
		return nil, fmt.Errorf("%w: %s", llm.ErrInference, apiResp.Error.Message)
	}
	if len(apiResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices returned", llm.ErrInference)
	}
	llmResp := ToLLMResponse(&apiResp)
	if c.UsageListener != nil && llmResp.Usage != nil && llmResp.Usage.TotalTokens > 0 {
		c.UsageListener.OnUsage(req.Model, llmResp.Usage)
	}
	return llmResp, nil
}

// Load checks the model is listed by the /models endpoint.
func (c *Client) Load(ctx context.Context) error {
	if c.Model == "" {
		return fmt.Errorf("%w: model is required", llm.ErrModelLoad)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create HTTP request: %v", llm.ErrModelLoad, err)
	}
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to send request: %v", llm.ErrModelLoad, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", llm.ErrModelLoad, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: model %s: status %d: %s", llm.ErrModelLoad, c.Model, resp.StatusCode, string(body))
	}
	var list ModelList
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("%w: failed to unmarshal model list: %v", llm.ErrModelLoad, err)
	}
	if list.Error != nil {
		return fmt.Errorf("%w: %s", llm.ErrModelLoad, list.Error.Message)
	}
	for _, model := range list.Data {
		if model.ID == c.Model {
			return nil
		}
	}
	return fmt.Errorf("%w: model %s is not served by %s", llm.ErrModelLoad, c.Model, c.BaseURL)
}

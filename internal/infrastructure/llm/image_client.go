// Package llm 提供 LLM 客户端工厂与图片生成客户端
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"inkwell-cms-api/internal/config"
)

// ImageClient 图片生成客户端。
// Eino 没有图片生成组件，这里直接调 OpenAI 兼容的 images/generations 端点。
type ImageClient struct {
	config     *config.LLMConfig
	httpClient *http.Client
}

// NewImageClient 创建图片生成客户端
func NewImageClient(cfg *config.Config) *ImageClient {
	return &ImageClient{
		config: &cfg.LLM,
		httpClient: &http.Client{
			Timeout: 180 * time.Second,
		},
	}
}

// ImageRequest 图片生成请求
type ImageRequest struct {
	Provider string
	APIKey   string
	Prompt   string
	Size     string
	Count    int
}

// GeneratedImage 生成结果
type GeneratedImage struct {
	URL           string `json:"url,omitempty"`
	B64JSON       string `json:"b64_json,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

type imageAPIRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size,omitempty"`
}

type imageAPIResponse struct {
	Data []GeneratedImage `json:"data"`
	Err  *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate 生成图片
func (c *ImageClient) Generate(ctx context.Context, req *ImageRequest) ([]GeneratedImage, error) {
	provider := req.Provider
	if provider == "" {
		provider = c.config.DefaultProvider
	}
	providerCfg, ok := c.config.Providers[provider]
	if !ok {
		return nil, fmt.Errorf("provider %s not found in LLM config", provider)
	}
	if providerCfg.ImageModel == "" {
		return nil, fmt.Errorf("provider %s does not support image generation", provider)
	}

	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = providerCfg.APIKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no api key available for provider %s", provider)
	}

	count := req.Count
	if count < 1 {
		count = 1
	}
	if count > 4 {
		count = 4
	}

	body, err := json.Marshal(imageAPIRequest{
		Model:  providerCfg.ImageModel,
		Prompt: req.Prompt,
		N:      count,
		Size:   req.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal image request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		providerCfg.BaseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read image response: %w", err)
	}

	var parsed imageAPIResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode image response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Err != nil {
			return nil, fmt.Errorf("image api error (status %d): %s", resp.StatusCode, parsed.Err.Message)
		}
		return nil, fmt.Errorf("image api error: status %d", resp.StatusCode)
	}

	return parsed.Data, nil
}

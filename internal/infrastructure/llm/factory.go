// Package llm 提供 LLM 客户端工厂与图片生成客户端
package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"inkwell-cms-api/internal/config"
)

// ModelFactory 管理多个 Eino ChatModel 客户端实例。
// 代理调用使用租户托管的密钥，所以缓存键是 provider 加密钥摘要，
// 不同租户的同名 provider 各自持有客户端。
type ModelFactory struct {
	config *config.LLMConfig
	models map[string]model.BaseChatModel
	mu     sync.RWMutex
}

// NewModelFactory 创建 LLM 工厂
func NewModelFactory(cfg *config.Config) *ModelFactory {
	return &ModelFactory{
		config: &cfg.LLM,
		models: make(map[string]model.BaseChatModel),
	}
}

// ProviderConfig 返回某提供商的静态配置
func (f *ModelFactory) ProviderConfig(provider string) (config.ProviderConfig, bool) {
	cfg, ok := f.config.Providers[provider]
	return cfg, ok
}

// DefaultProvider 返回默认提供商名称
func (f *ModelFactory) DefaultProvider() string {
	return f.config.DefaultProvider
}

// Get 获取指定提供商的 ChatModel。
// apiKey 为空时回退到配置中的平台密钥。
func (f *ModelFactory) Get(ctx context.Context, provider, apiKey string) (model.BaseChatModel, error) {
	if provider == "" {
		provider = f.config.DefaultProvider
	}

	providerCfg, ok := f.config.Providers[provider]
	if !ok {
		return nil, fmt.Errorf("provider %s not found in LLM config", provider)
	}
	if apiKey == "" {
		apiKey = providerCfg.APIKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no api key available for provider %s", provider)
	}

	cacheKey := provider + ":" + digest(apiKey)

	f.mu.RLock()
	m, ok := f.models[cacheKey]
	f.mu.RUnlock()
	if ok {
		return m, nil
	}

	// 惰性加载
	f.mu.Lock()
	defer f.mu.Unlock()

	// 再次检查防止竞态
	if m, ok = f.models[cacheKey]; ok {
		return m, nil
	}

	// 统一走 OpenAI 兼容协议，Anthropic 通过其兼容端点接入
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      apiKey,
		BaseURL:     providerCfg.BaseURL,
		Model:       providerCfg.Model,
		MaxTokens:   &providerCfg.MaxTokens,
		Temperature: ptrFloat32(float32(providerCfg.Temperature)),
		Timeout:     providerCfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model for %s: %w", provider, err)
	}

	f.models[cacheKey] = chatModel
	return chatModel, nil
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}

func ptrFloat32(f float32) *float32 {
	return &f
}

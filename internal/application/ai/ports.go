// Package ai 提供 AI 代理应用服务
package ai

import (
	"context"

	"github.com/cloudwego/eino/components/model"

	"inkwell-cms-api/internal/config"
)

// ChatModelFactory 定义应用层对 LLM ChatModel 的最小依赖（port）。
// 由基础设施层提供具体实现（ModelFactory）。
type ChatModelFactory interface {
	Get(ctx context.Context, provider, apiKey string) (model.BaseChatModel, error)
	ProviderConfig(provider string) (config.ProviderConfig, bool)
	DefaultProvider() string
}

// Package ai 提供 AI 代理应用服务
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.opentelemetry.io/otel"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/infrastructure/llm"
	"inkwell-cms-api/pkg/errors"
	"inkwell-cms-api/pkg/logger"
	"inkwell-cms-api/pkg/metrics"
)

var tracer = otel.Tracer("application/ai")

// ImageGenerator 图片生成端口
type ImageGenerator interface {
	Generate(ctx context.Context, req *llm.ImageRequest) ([]llm.GeneratedImage, error)
}

// Generator 内容生成应用服务。
// 统一流程：配额检查 -> 解析租户 Key（无则平台 Key）-> 调用 -> 记账。
type Generator struct {
	factory     ChatModelFactory
	keyService  *KeyService
	quota       *QuotaChecker
	recorder    *UsageRecorder
	imageClient ImageGenerator
}

// NewGenerator 创建内容生成服务
func NewGenerator(
	factory ChatModelFactory,
	keyService *KeyService,
	quota *QuotaChecker,
	recorder *UsageRecorder,
	imageClient ImageGenerator,
) *Generator {
	return &Generator{
		factory:     factory,
		keyService:  keyService,
		quota:       quota,
		recorder:    recorder,
		imageClient: imageClient,
	}
}

// GenerateInput 文章生成参数
type GenerateInput struct {
	Provider     string
	Topic        string
	Tone         string
	Length       string
	Instructions string
}

// TitlesInput 标题生成参数
type TitlesInput struct {
	Provider string
	Topic    string
	Count    int
}

// SocialInput 社交文案生成参数
type SocialInput struct {
	Provider  string
	Content   string
	Platforms []string
}

// socialPlatforms 支持的社交平台
var socialPlatforms = map[string]int{
	"twitter":   280,
	"facebook":  500,
	"instagram": 400,
	"linkedin":  700,
}

// Generate 生成文章草稿。
// 模型输出优先按 JSON 草稿解析，解析失败降级为原文返回，不视为错误。
func (g *Generator) Generate(ctx context.Context, tenantID, userID string, input *GenerateInput) (*GenerationResult, error) {
	ctx, span := tracer.Start(ctx, "Generator.Generate")
	defer span.End()

	if strings.TrimSpace(input.Topic) == "" {
		return nil, errors.New(errors.CodeInvalidParam, "topic is required")
	}

	system := "You are a writing assistant for a blog CMS. " +
		"Respond with a single JSON object: " +
		`{"title": string, "excerpt": string, "content": string (markdown), "tags": [string]}. ` +
		"Do not wrap the JSON in markdown fences."
	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a blog post about: %s.", input.Topic)
	if input.Tone != "" {
		fmt.Fprintf(&sb, " Tone: %s.", input.Tone)
	}
	if input.Length != "" {
		fmt.Fprintf(&sb, " Target length: %s.", input.Length)
	}
	if input.Instructions != "" {
		fmt.Fprintf(&sb, " Additional instructions: %s", input.Instructions)
	}

	content, usage, providerName, modelName, err := g.invoke(ctx, tenantID, userID, input.Provider, entity.OperationGenerate, system, sb.String(), nil)
	if err != nil {
		return nil, err
	}

	result := &GenerationResult{Usage: usage}
	raw := ExtractJSONObject(content)
	var draft StructuredDraft
	if jsonErr := json.Unmarshal([]byte(raw), &draft); jsonErr == nil && draft.Title != "" && draft.Content != "" {
		result.Shape = ShapeStructured
		result.Draft = &draft
	} else {
		result.Shape = ShapeUnstructured
		result.RawText = content
		logger.Debug(ctx, "generation output not structured, falling back to raw text",
			"tenant_id", tenantID, "provider", providerName, "model", modelName)
	}
	metrics.GenerationResultTotal.WithLabelValues(string(result.Shape)).Inc()
	return result, nil
}

// Titles 生成候选标题列表
func (g *Generator) Titles(ctx context.Context, tenantID, userID string, input *TitlesInput) ([]string, TokenUsage, error) {
	ctx, span := tracer.Start(ctx, "Generator.Titles")
	defer span.End()

	if strings.TrimSpace(input.Topic) == "" {
		return nil, TokenUsage{}, errors.New(errors.CodeInvalidParam, "topic is required")
	}
	count := input.Count
	if count < 1 {
		count = 5
	}
	if count > 20 {
		count = 20
	}

	system := "You are a writing assistant for a blog CMS. " +
		`Respond with a single JSON object: {"titles": [string]}. No markdown fences.`
	user := fmt.Sprintf("Suggest %d engaging blog post titles about: %s", count, input.Topic)

	content, usage, _, _, err := g.invoke(ctx, tenantID, userID, input.Provider, entity.OperationTitles, system, user, nil)
	if err != nil {
		return nil, TokenUsage{}, err
	}

	var parsed struct {
		Titles []string `json:"titles"`
	}
	if jsonErr := json.Unmarshal([]byte(ExtractJSONObject(content)), &parsed); jsonErr != nil || len(parsed.Titles) == 0 {
		// 逐行切原文兜底
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
			if line != "" {
				parsed.Titles = append(parsed.Titles, line)
			}
		}
	}
	if len(parsed.Titles) > count {
		parsed.Titles = parsed.Titles[:count]
	}
	return parsed.Titles, usage, nil
}

// Social 将文章内容改写为各平台的社交文案
func (g *Generator) Social(ctx context.Context, tenantID, userID string, input *SocialInput) (map[string]string, TokenUsage, error) {
	ctx, span := tracer.Start(ctx, "Generator.Social")
	defer span.End()

	if strings.TrimSpace(input.Content) == "" {
		return nil, TokenUsage{}, errors.New(errors.CodeInvalidParam, "content is required")
	}
	platforms := input.Platforms
	if len(platforms) == 0 {
		platforms = []string{"twitter", "facebook"}
	}
	for _, p := range platforms {
		if _, ok := socialPlatforms[p]; !ok {
			return nil, TokenUsage{}, errors.New(errors.CodeInvalidParam, "unsupported platform: "+p)
		}
	}

	var limits strings.Builder
	for _, p := range platforms {
		fmt.Fprintf(&limits, "%s (max %d chars), ", p, socialPlatforms[p])
	}
	system := "You are a social media copywriter. " +
		"Respond with a single JSON object mapping platform name to post text. No markdown fences."
	user := fmt.Sprintf("Write promotional posts for these platforms: %s\n\nArticle:\n%s",
		strings.TrimSuffix(limits.String(), ", "), truncate(input.Content, 6000))

	content, usage, _, _, err := g.invoke(ctx, tenantID, userID, input.Provider, entity.OperationSocial, system, user, nil)
	if err != nil {
		return nil, TokenUsage{}, err
	}

	var parsed map[string]string
	if jsonErr := json.Unmarshal([]byte(ExtractJSONObject(content)), &parsed); jsonErr != nil {
		return nil, usage, errors.Wrap(jsonErr, errors.CodeLLMProviderError, "failed to parse social copy response")
	}
	out := make(map[string]string, len(platforms))
	for _, p := range platforms {
		if text, ok := parsed[p]; ok {
			out[p] = text
		}
	}
	return out, usage, nil
}

// ImageInput 图片生成参数
type ImageInput struct {
	Provider string
	Prompt   string
	Size     string
	Count    int
}

// GenerateImage 生成配图
func (g *Generator) GenerateImage(ctx context.Context, tenantID, userID string, input *ImageInput) ([]llm.GeneratedImage, error) {
	ctx, span := tracer.Start(ctx, "Generator.GenerateImage")
	defer span.End()

	if strings.TrimSpace(input.Prompt) == "" {
		return nil, errors.New(errors.CodeInvalidParam, "prompt is required")
	}
	if err := g.quota.Check(ctx, tenantID); err != nil {
		return nil, err
	}

	provider := input.Provider
	if provider == "" {
		provider = g.factory.DefaultProvider()
	}
	apiKey, err := g.keyService.ResolveKey(ctx, tenantID, provider)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	images, err := g.imageClient.Generate(ctx, &llm.ImageRequest{
		Provider: provider,
		APIKey:   apiKey,
		Prompt:   input.Prompt,
		Size:     input.Size,
		Count:    input.Count,
	})
	duration := time.Since(start)

	modelName := "image"
	if cfg, ok := g.factory.ProviderConfig(provider); ok && cfg.ImageModel != "" {
		modelName = cfg.ImageModel
	}
	g.recorder.Record(ctx, tenantID, userID, entity.AIProvider(provider), modelName,
		entity.OperationImage, TokenUsage{}, duration, err == nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeLLMProviderError, "image generation failed")
	}
	return images, nil
}

// ValidateKey 用最小开销的一次调用验证某 Key 是否可用
func (g *Generator) ValidateKey(ctx context.Context, tenantID string, provider, apiKey string) error {
	ctx, span := tracer.Start(ctx, "Generator.ValidateKey")
	defer span.End()

	if !entity.ValidProvider(provider) {
		return errors.New(errors.CodeInvalidParam, "unknown provider")
	}
	if apiKey == "" {
		return errors.New(errors.CodeInvalidParam, "api key is required")
	}

	chatModel, err := g.factory.Get(ctx, provider, apiKey)
	if err != nil {
		return errors.Wrap(err, errors.CodeLLMProviderError, "failed to build chat model")
	}

	msgs := []*schema.Message{schema.UserMessage("ping")}
	start := time.Now()
	_, err = chatModel.Generate(ctx, msgs, model.WithMaxTokens(1))
	duration := time.Since(start)

	cfg, _ := g.factory.ProviderConfig(provider)
	g.recorder.Record(ctx, tenantID, "", entity.AIProvider(provider), cfg.Model,
		entity.OperationValidateKey, TokenUsage{}, duration, err == nil)
	if err != nil {
		return errors.Wrap(err, errors.CodeLLMProviderError, "key validation failed")
	}
	return nil
}

// invoke 执行一次对话调用并记账
func (g *Generator) invoke(ctx context.Context, tenantID, userID, provider string, operation entity.AIOperation, system, user string, opts []model.Option) (string, TokenUsage, string, string, error) {
	if err := g.quota.Check(ctx, tenantID); err != nil {
		return "", TokenUsage{}, "", "", err
	}

	if provider == "" {
		provider = g.factory.DefaultProvider()
	}
	apiKey, err := g.keyService.ResolveKey(ctx, tenantID, provider)
	if err != nil {
		return "", TokenUsage{}, "", "", err
	}

	chatModel, err := g.factory.Get(ctx, provider, apiKey)
	if err != nil {
		return "", TokenUsage{}, "", "", errors.Wrap(err, errors.CodeLLMProviderError, "failed to build chat model")
	}

	cfg, _ := g.factory.ProviderConfig(provider)
	modelName := cfg.Model

	msgs := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}

	start := time.Now()
	outMsg, err := chatModel.Generate(ctx, msgs, opts...)
	duration := time.Since(start)
	metrics.LLMCallDuration.WithLabelValues(provider, modelName).Observe(duration.Seconds())

	var usage TokenUsage
	if outMsg != nil && outMsg.ResponseMeta != nil && outMsg.ResponseMeta.Usage != nil {
		usage.PromptTokens = outMsg.ResponseMeta.Usage.PromptTokens
		usage.CompletionTokens = outMsg.ResponseMeta.Usage.CompletionTokens
		usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
	}
	g.recorder.Record(ctx, tenantID, userID, entity.AIProvider(provider), modelName, operation, usage, duration, err == nil)

	if err != nil {
		return "", usage, provider, modelName, errors.Wrap(err, errors.CodeLLMProviderError, "llm call failed")
	}
	if outMsg == nil || outMsg.Content == "" {
		return "", usage, provider, modelName, errors.New(errors.CodeLLMProviderError, "llm returned empty response")
	}
	return outMsg.Content, usage, provider, modelName, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

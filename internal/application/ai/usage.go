// Package ai 提供 AI 代理应用服务
package ai

import (
	"context"
	"time"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/pkg/errors"
	"inkwell-cms-api/pkg/logger"
	"inkwell-cms-api/pkg/metrics"
)

// UsageRecorder AI 用量记录器，只追加不修改
type UsageRecorder struct {
	usageRepo repository.AIUsageRepository
}

// NewUsageRecorder 创建用量记录器
func NewUsageRecorder(usageRepo repository.AIUsageRepository) *UsageRecorder {
	return &UsageRecorder{usageRepo: usageRepo}
}

// Record 记录一次服务端发起的 LLM 调用。
// 记账失败只告警不阻断，生成结果已经产生，不能因为记账回滚。
func (r *UsageRecorder) Record(ctx context.Context, tenantID, userID string, provider entity.AIProvider, model string, operation entity.AIOperation, usage TokenUsage, duration time.Duration, success bool) {
	event := entity.NewAIUsageEvent(tenantID, userID, provider, model, operation)
	event.SetTokens(int64(usage.PromptTokens), int64(usage.CompletionTokens))
	event.DurationMs = duration.Milliseconds()
	event.Success = success

	if err := r.usageRepo.Create(ctx, event); err != nil {
		logger.Warn(ctx, "failed to record ai usage", "tenant_id", tenantID, "provider", provider, "error", err)
		return
	}

	status := "ok"
	if !success {
		status = "error"
	}
	metrics.LLMCallTotal.WithLabelValues(string(provider), model, status).Inc()
	metrics.LLMTokensUsed.WithLabelValues(string(provider), model, "prompt").Add(float64(usage.PromptTokens))
	metrics.LLMTokensUsed.WithLabelValues(string(provider), model, "completion").Add(float64(usage.CompletionTokens))
}

// TrackInput 客户端上报的用量条目（前端直连提供商时的补记通道）
type TrackInput struct {
	Provider         string
	Model            string
	Operation        string
	PromptTokens     int64
	CompletionTokens int64
	DurationMs       int64
	Success          *bool
}

// Track 补记一条客户端上报的用量
func (r *UsageRecorder) Track(ctx context.Context, tenantID, userID string, input *TrackInput) error {
	event, err := buildTrackedEvent(tenantID, userID, input)
	if err != nil {
		return err
	}
	return r.usageRepo.Create(ctx, event)
}

// TrackBatch 批量补记客户端上报的用量
func (r *UsageRecorder) TrackBatch(ctx context.Context, tenantID, userID string, inputs []*TrackInput) error {
	if len(inputs) == 0 {
		return nil
	}
	events := make([]*entity.AIUsageEvent, 0, len(inputs))
	for _, input := range inputs {
		event, err := buildTrackedEvent(tenantID, userID, input)
		if err != nil {
			return err
		}
		events = append(events, event)
	}
	return r.usageRepo.CreateBatch(ctx, events)
}

// Summary 汇总租户时间窗内的用量
func (r *UsageRecorder) Summary(ctx context.Context, tenantID string, from, to time.Time) ([]*repository.UsageSummaryRow, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, -1, 0)
	}
	return r.usageRepo.Summarize(ctx, tenantID, from, to)
}

func buildTrackedEvent(tenantID, userID string, input *TrackInput) (*entity.AIUsageEvent, error) {
	if !entity.ValidProvider(input.Provider) {
		return nil, errors.New(errors.CodeInvalidParam, "unknown provider")
	}
	if input.Model == "" {
		return nil, errors.New(errors.CodeInvalidParam, "model is required")
	}
	operation := entity.AIOperation(input.Operation)
	if operation == "" {
		operation = entity.OperationGenerate
	}
	if input.PromptTokens < 0 || input.CompletionTokens < 0 {
		return nil, errors.New(errors.CodeInvalidParam, "token counts must be non-negative")
	}

	event := entity.NewAIUsageEvent(tenantID, userID, entity.AIProvider(input.Provider), input.Model, operation)
	event.SetTokens(input.PromptTokens, input.CompletionTokens)
	event.DurationMs = input.DurationMs
	if input.Success != nil {
		event.Success = *input.Success
	}
	return event, nil
}

// Package ai 提供 AI 代理应用服务
package ai

// ResultShape 生成结果形态，显式双变体，调用方必须处理两种分支
type ResultShape string

const (
	// ShapeStructured 模型输出成功解析为结构化草稿
	ShapeStructured ResultShape = "structured"
	// ShapeUnstructured 解析失败，原文以 raw_text 返回
	ShapeUnstructured ResultShape = "unstructured"
)

// StructuredDraft 结构化文章草稿
type StructuredDraft struct {
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// GenerationResult 生成结果。
// Shape 为 structured 时 Draft 有效，为 unstructured 时 RawText 有效。
type GenerationResult struct {
	Shape   ResultShape      `json:"shape"`
	Draft   *StructuredDraft `json:"draft,omitempty"`
	RawText string           `json:"raw_text,omitempty"`
	Usage   TokenUsage       `json:"usage"`
}

// TokenUsage 单次调用的 token 用量
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

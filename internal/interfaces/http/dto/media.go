package dto

import (
	"inkwell-cms-api/internal/application/content"
)

// MediaUpdateRequest 媒体元数据更新请求
type MediaUpdateRequest struct {
	AltText *string `json:"alt_text"`
	Caption *string `json:"caption"`
}

// ToInput 转换为应用层输入
func (r *MediaUpdateRequest) ToInput() *content.MediaUpdateInput {
	return &content.MediaUpdateInput{
		AltText: r.AltText,
		Caption: r.Caption,
	}
}

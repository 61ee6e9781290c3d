package dto

import (
	"inkwell-cms-api/internal/application/content"
	"inkwell-cms-api/internal/domain/entity"
)

// TenantUpdateRequest 站点设置更新请求
type TenantUpdateRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Theme       *entity.TenantTheme   `json:"theme"`
	Contact     *entity.TenantContact `json:"contact"`
}

// ToInput 转换为应用层输入
func (r *TenantUpdateRequest) ToInput() *content.TenantUpdateInput {
	return &content.TenantUpdateInput{
		Name:        r.Name,
		Description: r.Description,
		Theme:       r.Theme,
		Contact:     r.Contact,
	}
}

// Package entity 定义领域实体
package entity

import (
	"time"
)

// AIProvider AI 提供商，闭集枚举
type AIProvider string

const (
	ProviderOpenAI    AIProvider = "openai"
	ProviderAnthropic AIProvider = "anthropic"
)

// ValidProvider 检查提供商是否属于闭集
func ValidProvider(p string) bool {
	switch AIProvider(p) {
	case ProviderOpenAI, ProviderAnthropic:
		return true
	}
	return false
}

// APIKey 租户托管的 AI 提供商密钥。
// EncryptedKey 是 AES-GCM 密文，明文只在代理调用时短暂解密，绝不出现在响应里。
type APIKey struct {
	ID           string     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID     string     `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_api_keys_tenant_provider,priority:1"`
	Provider     AIProvider `json:"provider" gorm:"type:varchar(50);not null;uniqueIndex:idx_api_keys_tenant_provider,priority:2"`
	EncryptedKey string     `json:"-" gorm:"type:text;not null"`
	Fingerprint  string     `json:"fingerprint" gorm:"type:varchar(64);not null"`
	Label        string     `json:"label,omitempty" gorm:"type:varchar(255)"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastUsedAt   *time.Time `json:"last_used_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (APIKey) TableName() string {
	return "api_keys"
}

// NewAPIKey 创建托管密钥记录
func NewAPIKey(tenantID string, provider AIProvider, encryptedKey, fingerprint, label string) *APIKey {
	now := time.Now()
	return &APIKey{
		TenantID:     tenantID,
		Provider:     provider,
		EncryptedKey: encryptedKey,
		Fingerprint:  fingerprint,
		Label:        label,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MaskedFingerprint 返回指纹的展示形式，只露前 8 位
func (k *APIKey) MaskedFingerprint() string {
	if len(k.Fingerprint) <= 8 {
		return k.Fingerprint
	}
	return k.Fingerprint[:8] + "..."
}

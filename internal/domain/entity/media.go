// Package entity 定义领域实体
package entity

import (
	"time"
)

// Media 媒体对象实体。
// StorageKey 是对象存储中的完整键，按租户前缀隔离。
type Media struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID   string    `json:"tenant_id" gorm:"type:uuid;index;not null"`
	UploaderID string    `json:"uploader_id,omitempty" gorm:"type:uuid"`
	StorageKey string    `json:"storage_key" gorm:"type:varchar(1024);not null"`
	URL        string    `json:"url" gorm:"type:varchar(1024);not null"`
	Filename   string    `json:"filename" gorm:"type:varchar(512);not null"`
	MimeType   string    `json:"mime_type" gorm:"type:varchar(255);not null"`
	SizeBytes  int64     `json:"size_bytes" gorm:"not null"`
	AltText    string    `json:"alt_text,omitempty" gorm:"type:varchar(512)"`
	Caption    string    `json:"caption,omitempty" gorm:"type:varchar(1024)"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (Media) TableName() string {
	return "media"
}

// NewMedia 创建媒体记录
func NewMedia(tenantID, uploaderID, storageKey, url, filename, mimeType string, sizeBytes int64) *Media {
	return &Media{
		TenantID:   tenantID,
		UploaderID: uploaderID,
		StorageKey: storageKey,
		URL:        url,
		Filename:   filename,
		MimeType:   mimeType,
		SizeBytes:  sizeBytes,
		CreatedAt:  time.Now(),
	}
}

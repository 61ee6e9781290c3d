// Package content 提供内容管理应用服务
package content

import (
	"context"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/internal/infrastructure/storage/s3"
	"inkwell-cms-api/pkg/errors"
	"inkwell-cms-api/pkg/logger"
	"inkwell-cms-api/pkg/metrics"
)

// MediaService 媒体应用服务
type MediaService struct {
	mediaRepo repository.MediaRepository
	store     *s3.Client
	maxBytes  int64
}

// NewMediaService 创建媒体服务
func NewMediaService(mediaRepo repository.MediaRepository, store *s3.Client, maxBytes int64) *MediaService {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return &MediaService{
		mediaRepo: mediaRepo,
		store:     store,
		maxBytes:  maxBytes,
	}
}

// MaxUploadBytes 上传大小上限
func (s *MediaService) MaxUploadBytes() int64 {
	return s.maxBytes
}

// UploadInput 上传参数
type UploadInput struct {
	Filename string
	MimeType string
	Data     []byte
	AltText  string
}

// Upload 上传媒体对象并登记。对象键按租户前缀隔离。
func (s *MediaService) Upload(ctx context.Context, tenantID, uploaderID string, input *UploadInput) (*entity.Media, error) {
	if len(input.Data) == 0 {
		return nil, errors.New(errors.CodeInvalidParam, "empty upload")
	}
	if int64(len(input.Data)) > s.maxBytes {
		metrics.MediaUploadTotal.WithLabelValues(tenantID, "too_large").Inc()
		return nil, errors.New(errors.CodeUploadTooLarge, "upload exceeds size limit")
	}

	key := s3.BuildObjectKey(tenantID, input.Filename)
	if err := s.store.Upload(ctx, key, input.MimeType, input.Data); err != nil {
		metrics.MediaUploadTotal.WithLabelValues(tenantID, "error").Inc()
		return nil, errors.Wrap(err, errors.CodeStorageError, "failed to store media object")
	}

	url, err := s.store.PublicObjectURL(key)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeStorageError, "failed to build object url")
	}

	media := entity.NewMedia(tenantID, uploaderID, key, url, input.Filename, input.MimeType, int64(len(input.Data)))
	media.AltText = input.AltText
	if err := s.mediaRepo.Create(ctx, media); err != nil {
		// 登记失败时回收已上传对象，避免孤儿文件
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.Warn(ctx, "failed to clean up orphan object", "key", key, "error", delErr)
		}
		return nil, err
	}

	metrics.MediaUploadTotal.WithLabelValues(tenantID, "ok").Inc()
	metrics.MediaUploadBytes.WithLabelValues(tenantID).Observe(float64(len(input.Data)))
	return media, nil
}

// MediaUpdateInput 元数据更新参数
type MediaUpdateInput struct {
	AltText *string
	Caption *string
}

// Update 更新媒体元数据，对象本身不可变
func (s *MediaService) Update(ctx context.Context, tenantID, id string, input *MediaUpdateInput) (*entity.Media, error) {
	media, err := s.mediaRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, errors.ErrMediaNotFound
	}

	if input.AltText != nil {
		media.AltText = *input.AltText
	}
	if input.Caption != nil {
		media.Caption = *input.Caption
	}
	if err := s.mediaRepo.Update(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

// Delete 删除媒体对象与登记记录
func (s *MediaService) Delete(ctx context.Context, tenantID, id string) error {
	media, err := s.mediaRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if media == nil {
		return errors.ErrMediaNotFound
	}

	if err := s.store.Delete(ctx, media.StorageKey); err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "failed to delete media object")
	}
	return s.mediaRepo.Delete(ctx, tenantID, id)
}

// List 媒体列表
func (s *MediaService) List(ctx context.Context, tenantID string, filter *repository.MediaFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.Media], error) {
	return s.mediaRepo.List(ctx, tenantID, filter, pagination)
}

// PresignDownload 生成限时下载链接
func (s *MediaService) PresignDownload(ctx context.Context, tenantID, id string) (string, error) {
	media, err := s.mediaRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return "", err
	}
	if media == nil {
		return "", errors.ErrMediaNotFound
	}
	return s.store.PresignGet(media.StorageKey)
}

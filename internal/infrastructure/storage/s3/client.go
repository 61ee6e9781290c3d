// Package s3 提供 S3 兼容对象存储客户端
package s3

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"inkwell-cms-api/internal/config"
)

var tracer = otel.Tracer("storage.s3")

// Client S3 客户端封装
type Client struct {
	svc        *awss3.S3
	bucket     string
	publicURL  string
	presignTTL time.Duration
}

// NewClient 创建 S3 客户端。
// Endpoint 非空时走自定义端点（R2 等兼容存储），并强制 path-style。
func NewClient(cfg *config.S3Config) (*Client, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	presignTTL := cfg.PresignTTL
	if presignTTL <= 0 {
		presignTTL = 15 * time.Minute
	}

	return &Client{
		svc:        awss3.New(sess),
		bucket:     cfg.Bucket,
		publicURL:  strings.TrimRight(cfg.PublicURL, "/"),
		presignTTL: presignTTL,
	}, nil
}

// BuildObjectKey 构建租户隔离的对象键：<tenantID>/media/<uuid><ext>
func BuildObjectKey(tenantID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/media/%s%s", tenantID, uuid.NewString(), ext)
}

// Upload 上传对象
func (c *Client) Upload(ctx context.Context, key, contentType string, data []byte) error {
	ctx, span := tracer.Start(ctx, "s3.Upload",
		trace.WithAttributes(
			attribute.String("s3.key", key),
			attribute.Int("s3.size", len(data)),
		))
	defer span.End()

	_, err := c.svc.PutObjectWithContext(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// Delete 删除对象
func (c *Client) Delete(ctx context.Context, key string) error {
	ctx, span := tracer.Start(ctx, "s3.Delete",
		trace.WithAttributes(attribute.String("s3.key", key)))
	defer span.End()

	_, err := c.svc.DeleteObjectWithContext(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// PresignGet 生成限时下载链接
func (c *Client) PresignGet(key string) (string, error) {
	req, _ := c.svc.GetObjectRequest(&awss3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	url, err := req.Presign(c.presignTTL)
	if err != nil {
		return "", fmt.Errorf("failed to presign url: %w", err)
	}
	return url, nil
}

// PublicObjectURL 返回对象的公开访问地址。
// 配置了 CDN 公共域名时走公共域名，否则退回到预签名链接。
func (c *Client) PublicObjectURL(key string) (string, error) {
	if c.publicURL != "" {
		return c.publicURL + "/" + key, nil
	}
	return c.PresignGet(key)
}

// HealthCheck 健康检查
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "s3.HealthCheck")
	defer span.End()

	_, err := c.svc.HeadBucketWithContext(ctx, &awss3.HeadBucketInput{
		Bucket: aws.String(c.bucket),
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("bucket head failed: %w", err)
	}
	return nil
}

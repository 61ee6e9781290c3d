// Package config 提供配置加载和管理功能
package config

import (
	"time"
)

// Config 应用配置根结构
type Config struct {
	App           AppConfig           `yaml:"app" mapstructure:"app"`
	Server        ServerConfig        `yaml:"server" mapstructure:"server"`
	Database      DatabaseConfig      `yaml:"database" mapstructure:"database"`
	Cache         CacheConfig         `yaml:"cache" mapstructure:"cache"`
	Storage       StorageConfig       `yaml:"storage" mapstructure:"storage"`
	Media         MediaConfig         `yaml:"media" mapstructure:"media"`
	LLM           LLMConfig           `yaml:"llm" mapstructure:"llm"`
	Messaging     MessagingConfig     `yaml:"messaging" mapstructure:"messaging"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Security      SecurityConfig      `yaml:"security" mapstructure:"security"`
	Features      FeaturesConfig      `yaml:"features" mapstructure:"features"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
	Env     string `yaml:"env" mapstructure:"env"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTP HTTPServerConfig `yaml:"http" mapstructure:"http"`
}

// HTTPServerConfig HTTP 服务器配置
type HTTPServerConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Postgres PostgresConfig `yaml:"postgres" mapstructure:"postgres"`
}

// PostgresConfig PostgreSQL 配置
type PostgresConfig struct {
	Host            string        `yaml:"host" mapstructure:"host"`
	Port            int           `yaml:"port" mapstructure:"port"`
	User            string        `yaml:"user" mapstructure:"user"`
	Password        string        `yaml:"password" mapstructure:"password"`
	Database        string        `yaml:"database" mapstructure:"database"`
	SSLMode         string        `yaml:"ssl_mode" mapstructure:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" mapstructure:"conn_max_idle_time"`
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`
	// PublicTTL 公共读（租户解析、已发布文章）的缓存时长
	PublicTTL time.Duration `yaml:"public_ttl" mapstructure:"public_ttl"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	Password     string        `yaml:"password" mapstructure:"password"`
	DB           int           `yaml:"db" mapstructure:"db"`
	PoolSize     int           `yaml:"pool_size" mapstructure:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns" mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout" mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// StorageConfig 对象存储配置
type StorageConfig struct {
	S3 S3Config `yaml:"s3" mapstructure:"s3"`
}

// S3Config S3 兼容对象存储配置（AWS S3 / R2 / GCS 互操作端点）
type S3Config struct {
	Endpoint        string        `yaml:"endpoint" mapstructure:"endpoint"`
	Region          string        `yaml:"region" mapstructure:"region"`
	AccessKeyID     string        `yaml:"access_key_id" mapstructure:"access_key_id"`
	SecretAccessKey string        `yaml:"secret_access_key" mapstructure:"secret_access_key"`
	Bucket          string        `yaml:"bucket" mapstructure:"bucket"`
	PublicURL       string        `yaml:"public_url" mapstructure:"public_url"`
	PresignTTL      time.Duration `yaml:"presign_ttl" mapstructure:"presign_ttl"`
}

// MediaConfig 媒体上传配置
type MediaConfig struct {
	// MaxUploadBytes 单次上传大小上限，上传整体缓冲在内存中
	MaxUploadBytes int64 `yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
}

// LLMConfig LLM 配置
type LLMConfig struct {
	DefaultProvider string                    `yaml:"default_provider" mapstructure:"default_provider"`
	Providers       map[string]ProviderConfig `yaml:"providers" mapstructure:"providers"`
}

// ProviderConfig LLM 提供商配置
type ProviderConfig struct {
	APIKey      string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	Model       string        `yaml:"model" mapstructure:"model"`
	ImageModel  string        `yaml:"image_model" mapstructure:"image_model"`
	MaxTokens   int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64       `yaml:"temperature" mapstructure:"temperature"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// MessagingConfig 消息队列配置
type MessagingConfig struct {
	RedisStream RedisStreamConfig `yaml:"redis_stream" mapstructure:"redis_stream"`
}

// RedisStreamConfig Redis Stream 配置
type RedisStreamConfig struct {
	MaxLen int `yaml:"max_len" mapstructure:"max_len"`
}

// ObservabilityConfig 可观测性配置
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// TracingConfig 追踪配置
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	JWT           JWTConfig        `yaml:"jwt" mapstructure:"jwt"`
	AdminPassword string           `yaml:"admin_password" mapstructure:"admin_password"`
	Encryption    EncryptionConfig `yaml:"encryption" mapstructure:"encryption"`
	RateLimit     RateLimitConfig  `yaml:"rate_limit" mapstructure:"rate_limit"`
	CORS          CORSConfig       `yaml:"cors" mapstructure:"cors"`
}

// JWTConfig JWT 配置
type JWTConfig struct {
	Secret     string        `yaml:"secret" mapstructure:"secret"`
	Issuer     string        `yaml:"issuer" mapstructure:"issuer"`
	Expiration time.Duration `yaml:"expiration" mapstructure:"expiration"`
}

// EncryptionConfig 字段加密配置
type EncryptionConfig struct {
	Secret string `yaml:"secret" mapstructure:"secret"`
	Salt   string `yaml:"salt" mapstructure:"salt"`
}

// RateLimitConfig 限流配置（按客户端 IP 的滑动窗口）
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled" mapstructure:"enabled"`
	RequestsPerSecond int  `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int  `yaml:"burst" mapstructure:"burst"`
}

// CORSConfig CORS 配置
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods" mapstructure:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers" mapstructure:"allowed_headers"`
}

// 功能组名称
const (
	FeatureAIAssistant     = "ai_assistant"
	FeatureImageGeneration = "image_generation"
	FeatureSocialAdapter   = "social_adapter"
	FeatureClubs           = "clubs"
	FeatureTestimonials    = "testimonials"
)

// 部署模式
const (
	ModeDevelopment    = "development"
	ModeStaging        = "staging"
	ModeProduction     = "production"
	ModeClientDelivery = "client_delivery"
)

// FeaturesConfig 功能开关配置。
// Mode 选择一组预设，Overrides 在预设之上逐项覆盖。
type FeaturesConfig struct {
	Mode      string          `yaml:"mode" mapstructure:"mode"`
	Overrides map[string]bool `yaml:"overrides" mapstructure:"overrides"`
}

// 各部署模式的功能组预设
var modePresets = map[string]map[string]bool{
	ModeDevelopment: {
		FeatureAIAssistant:     true,
		FeatureImageGeneration: true,
		FeatureSocialAdapter:   true,
		FeatureClubs:           true,
		FeatureTestimonials:    true,
	},
	ModeStaging: {
		FeatureAIAssistant:     true,
		FeatureImageGeneration: true,
		FeatureSocialAdapter:   true,
		FeatureClubs:           true,
		FeatureTestimonials:    true,
	},
	ModeProduction: {
		FeatureAIAssistant:     true,
		FeatureImageGeneration: false,
		FeatureSocialAdapter:   true,
		FeatureClubs:           true,
		FeatureTestimonials:    true,
	},
	ModeClientDelivery: {
		FeatureAIAssistant:     false,
		FeatureImageGeneration: false,
		FeatureSocialAdapter:   false,
		FeatureClubs:           true,
		FeatureTestimonials:    true,
	},
}

// Enabled 判断某个功能组在当前模式下是否开启
func (f FeaturesConfig) Enabled(name string) bool {
	if v, ok := f.Overrides[name]; ok {
		return v
	}
	preset, ok := modePresets[f.Mode]
	if !ok {
		preset = modePresets[ModeDevelopment]
	}
	return preset[name]
}

// EnabledGroups 返回当前模式下开启的全部功能组
func (f FeaturesConfig) EnabledGroups() map[string]bool {
	out := make(map[string]bool)
	preset, ok := modePresets[f.Mode]
	if !ok {
		preset = modePresets[ModeDevelopment]
	}
	for name, v := range preset {
		out[name] = v
	}
	for name, v := range f.Overrides {
		out[name] = v
	}
	return out
}

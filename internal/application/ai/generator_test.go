package ai

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-cms-api/internal/config"
	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/infrastructure/llm"
	"inkwell-cms-api/pkg/crypto"
	"inkwell-cms-api/pkg/errors"
)

// fakeChatModel 可编程的 ChatModel 替身
type fakeChatModel struct {
	reply   string
	err     error
	gotMsgs []*schema.Message
}

func (m *fakeChatModel) Generate(_ context.Context, in []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	m.gotMsgs = in
	if m.err != nil {
		return nil, m.err
	}
	return &schema.Message{
		Role:    schema.Assistant,
		Content: m.reply,
		ResponseMeta: &schema.ResponseMeta{
			Usage: &schema.TokenUsage{PromptTokens: 12, CompletionTokens: 34},
		},
	}, nil
}

func (m *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, stderrors.New("stream not supported")
}

// fakeFactory 固定返回同一个 ChatModel
type fakeFactory struct {
	chatModel model.BaseChatModel
	err       error
	gotKey    string
}

func (f *fakeFactory) Get(_ context.Context, _, apiKey string) (model.BaseChatModel, error) {
	f.gotKey = apiKey
	if f.err != nil {
		return nil, f.err
	}
	return f.chatModel, nil
}

func (f *fakeFactory) ProviderConfig(_ string) (config.ProviderConfig, bool) {
	return config.ProviderConfig{Model: "gpt-test", ImageModel: "img-test"}, true
}

func (f *fakeFactory) DefaultProvider() string { return "openai" }

// fakeImageGen 图片生成替身
type fakeImageGen struct {
	images []llm.GeneratedImage
	err    error
	got    *llm.ImageRequest
}

func (f *fakeImageGen) Generate(_ context.Context, req *llm.ImageRequest) ([]llm.GeneratedImage, error) {
	f.got = req
	return f.images, f.err
}

type generatorFixture struct {
	generator *Generator
	chatModel *fakeChatModel
	factory   *fakeFactory
	usageRepo *fakeUsageRepo
	imageGen  *fakeImageGen
}

func newGeneratorFixture(t *testing.T, quotaLimit int64, used int64) *generatorFixture {
	t.Helper()

	cipher, err := crypto.NewFieldCipher("test-secret", "test-salt")
	require.NoError(t, err)

	chatModel := &fakeChatModel{}
	factory := &fakeFactory{chatModel: chatModel}
	usageRepo := &fakeUsageRepo{used: used}
	imageGen := &fakeImageGen{}

	keyService := NewKeyService(newFakeKeyRepo(), cipher)
	quota := NewQuotaChecker(&fakeTenantRepo{tenant: tenantWithQuota(quotaLimit)}, usageRepo)
	recorder := NewUsageRecorder(usageRepo)

	return &generatorFixture{
		generator: NewGenerator(factory, keyService, quota, recorder, imageGen),
		chatModel: chatModel,
		factory:   factory,
		usageRepo: usageRepo,
		imageGen:  imageGen,
	}
}

func TestGeneratorGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("structured draft", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		fx.chatModel.reply = `{"title": "Go Tips", "excerpt": "short", "content": "# Body", "tags": ["go"]}`

		result, err := fx.generator.Generate(ctx, "tenant-1", "user-1", &GenerateInput{Topic: "go tips"})
		require.NoError(t, err)
		assert.Equal(t, ShapeStructured, result.Shape)
		require.NotNil(t, result.Draft)
		assert.Equal(t, "Go Tips", result.Draft.Title)
		assert.Equal(t, "# Body", result.Draft.Content)
		assert.Equal(t, []string{"go"}, result.Draft.Tags)
		assert.Equal(t, 46, result.Usage.TotalTokens)

		// system + user 两条消息
		require.Len(t, fx.chatModel.gotMsgs, 2)
		assert.Equal(t, schema.System, fx.chatModel.gotMsgs[0].Role)
		assert.Equal(t, schema.User, fx.chatModel.gotMsgs[1].Role)

		// 服务端调用必须记账
		require.Len(t, fx.usageRepo.events, 1)
		event := fx.usageRepo.events[0]
		assert.Equal(t, entity.OperationGenerate, event.Operation)
		assert.Equal(t, int64(46), event.TotalTokens)
		assert.True(t, event.Success)
	})

	t.Run("unstructured fallback is not an error", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		fx.chatModel.reply = "Just a plain prose draft without JSON."

		result, err := fx.generator.Generate(ctx, "tenant-1", "user-1", &GenerateInput{Topic: "go tips"})
		require.NoError(t, err)
		assert.Equal(t, ShapeUnstructured, result.Shape)
		assert.Nil(t, result.Draft)
		assert.Equal(t, fx.chatModel.reply, result.RawText)
	})

	t.Run("missing title degrades to raw text", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		fx.chatModel.reply = `{"excerpt": "no title", "content": "body"}`

		result, err := fx.generator.Generate(ctx, "tenant-1", "user-1", &GenerateInput{Topic: "go tips"})
		require.NoError(t, err)
		assert.Equal(t, ShapeUnstructured, result.Shape)
	})

	t.Run("topic required", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		_, err := fx.generator.Generate(ctx, "tenant-1", "user-1", &GenerateInput{Topic: "  "})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		fx := newGeneratorFixture(t, 100, 100)
		_, err := fx.generator.Generate(ctx, "tenant-1", "user-1", &GenerateInput{Topic: "go tips"})
		assert.Equal(t, errors.ErrQuotaExceeded, err)
		assert.Empty(t, fx.usageRepo.events)
	})

	t.Run("provider failure is recorded", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		fx.chatModel.err = stderrors.New("upstream 500")

		_, err := fx.generator.Generate(ctx, "tenant-1", "user-1", &GenerateInput{Topic: "go tips"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeLLMProviderError, errors.AsAppError(err).Code)

		require.Len(t, fx.usageRepo.events, 1)
		assert.False(t, fx.usageRepo.events[0].Success)
	})
}

func TestGeneratorTitles(t *testing.T) {
	ctx := context.Background()

	t.Run("json response", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		fx.chatModel.reply = `{"titles": ["One", "Two", "Three"]}`

		titles, usage, err := fx.generator.Titles(ctx, "tenant-1", "user-1", &TitlesInput{Topic: "go", Count: 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"One", "Two", "Three"}, titles)
		assert.Equal(t, 46, usage.TotalTokens)
	})

	t.Run("line fallback with clamp", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		fx.chatModel.reply = "1. First title\n2. Second title\n- Third title\n\nFourth title"

		titles, _, err := fx.generator.Titles(ctx, "tenant-1", "user-1", &TitlesInput{Topic: "go", Count: 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"First title", "Second title", "Third title"}, titles)
	})

	t.Run("topic required", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		_, _, err := fx.generator.Titles(ctx, "tenant-1", "user-1", &TitlesInput{})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})
}

func TestGeneratorSocial(t *testing.T) {
	ctx := context.Background()

	t.Run("returns requested platforms only", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		fx.chatModel.reply = `{"twitter": "tweet text", "facebook": "fb text", "linkedin": "ignored"}`

		posts, _, err := fx.generator.Social(ctx, "tenant-1", "user-1", &SocialInput{
			Content:   "article body",
			Platforms: []string{"twitter", "facebook"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"twitter": "tweet text", "facebook": "fb text"}, posts)
	})

	t.Run("unsupported platform", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		_, _, err := fx.generator.Social(ctx, "tenant-1", "user-1", &SocialInput{
			Content:   "article body",
			Platforms: []string{"myspace"},
		})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})

	t.Run("unparseable response is an error", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		fx.chatModel.reply = "not json at all"

		_, _, err := fx.generator.Social(ctx, "tenant-1", "user-1", &SocialInput{Content: "article body"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeLLMProviderError, errors.AsAppError(err).Code)
	})
}

func TestGeneratorGenerateImage(t *testing.T) {
	ctx := context.Background()

	t.Run("success records usage", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		fx.imageGen.images = []llm.GeneratedImage{{URL: "https://cdn/img.png"}}

		images, err := fx.generator.GenerateImage(ctx, "tenant-1", "user-1", &ImageInput{Prompt: "a gopher"})
		require.NoError(t, err)
		require.Len(t, images, 1)
		assert.Equal(t, "a gopher", fx.imageGen.got.Prompt)
		assert.Equal(t, "openai", fx.imageGen.got.Provider)

		require.Len(t, fx.usageRepo.events, 1)
		event := fx.usageRepo.events[0]
		assert.Equal(t, entity.OperationImage, event.Operation)
		assert.Equal(t, "img-test", event.Model)
	})

	t.Run("prompt required", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		_, err := fx.generator.GenerateImage(ctx, "tenant-1", "user-1", &ImageInput{})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})

	t.Run("provider failure", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		fx.imageGen.err = stderrors.New("image api down")

		_, err := fx.generator.GenerateImage(ctx, "tenant-1", "user-1", &ImageInput{Prompt: "a gopher"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeLLMProviderError, errors.AsAppError(err).Code)

		require.Len(t, fx.usageRepo.events, 1)
		assert.False(t, fx.usageRepo.events[0].Success)
	})
}

func TestGeneratorValidateKey(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown provider", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		err := fx.generator.ValidateKey(ctx, "tenant-1", "gemini", "sk-x")
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})

	t.Run("empty key", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		err := fx.generator.ValidateKey(ctx, "tenant-1", "openai", "")
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})

	t.Run("ping succeeds", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		fx.chatModel.reply = "pong"

		require.NoError(t, fx.generator.ValidateKey(ctx, "tenant-1", "openai", "sk-x"))
		assert.Equal(t, "sk-x", fx.factory.gotKey)

		require.Len(t, fx.usageRepo.events, 1)
		assert.Equal(t, entity.OperationValidateKey, fx.usageRepo.events[0].Operation)
	})

	t.Run("ping fails", func(t *testing.T) {
		fx := newGeneratorFixture(t, 0, 0)
		fx.chatModel.err = stderrors.New("401 unauthorized")

		err := fx.generator.ValidateKey(ctx, "tenant-1", "openai", "sk-bad")
		require.Error(t, err)
		assert.Equal(t, errors.CodeLLMProviderError, errors.AsAppError(err).Code)
	})
}

package analysis

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"measure_service/internal/config"
	"measure_service/internal/usecase/interfaces"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrGeminiGatewayNotConfigured = errors.New("gemini gateway not configured")
var ErrEmptyModelAnswer = errors.New("model returned an empty answer")

const DefaultGeminiModel = "gemini-1.5-pro"

// fileUploader and contentGenerator are the two Gemini calls the gateway makes.
type fileUploader interface {
	UploadFromPath(ctx context.Context, path string, cfg *genai.UploadFileConfig) (*genai.File, error)
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGateway reads meter values with Gemini: the image is uploaded through
// the Files API and the model is asked to answer the prompt about it.
type GeminiGateway struct {
	files    fileUploader
	models   contentGenerator
	model    string
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IAnalysisGateway = (*GeminiGateway)(nil)

func NewGeminiGateway(ctx context.Context, cfg config.AnalysisConfig, logger *zap.Logger) (*GeminiGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("analysis.gateway")

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultGeminiModel
	}

	if cfg.MockMode {
		logger.Info("mock mode enabled")
		return &GeminiGateway{mockMode: true, model: model, logger: logger}, nil
	}

	if cfg.APIKey == "" {
		logger.Error("missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Error("failed creating genai client", zap.Error(err))
		return nil, err
	}
	logger.Info("gemini client initialized", zap.String("model", model))

	return &GeminiGateway{
		files:  client.Files,
		models: client.Models,
		model:  model,
		logger: logger,
	}, nil
}

func (g *GeminiGateway) Analyze(ctx context.Context, image interfaces.ResolvedImage, prompt string) (interfaces.AnalysisResult, error) {
	if g != nil && g.mockMode {
		return g.mockAnalyze(image), nil
	}
	if g == nil || g.files == nil || g.models == nil {
		return interfaces.AnalysisResult{}, ErrGeminiGatewayNotConfigured
	}

	g.logger.Debug("upload start", zap.String("name", image.Name), zap.String("mime_type", image.MIMEType), zap.Int64("size", image.Size))
	file, err := g.files.UploadFromPath(ctx, image.Path, &genai.UploadFileConfig{
		MIMEType:    image.MIMEType,
		DisplayName: image.Name,
	})
	if err != nil {
		g.logger.Warn("file upload failed", zap.Error(err))
		return interfaces.AnalysisResult{}, fmt.Errorf("upload image: %w", err)
	}

	mimeType := file.MIMEType
	if mimeType == "" {
		mimeType = image.MIMEType
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(file.URI, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		g.logger.Warn("generate content failed", zap.String("file_uri", file.URI), zap.Error(err))
		return interfaces.AnalysisResult{}, fmt.Errorf("generate content: %w", err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return interfaces.AnalysisResult{}, ErrEmptyModelAnswer
	}
	g.logger.Debug("analysis success", zap.String("file_uri", file.URI), zap.String("answer", answer))

	return interfaces.AnalysisResult{RawValue: answer, ImageURL: file.URI}, nil
}

// mockAnalyze answers with a stable value derived from the image name so local
// runs do not need Gemini credentials.
func (g *GeminiGateway) mockAnalyze(image interfaces.ResolvedImage) interfaces.AnalysisResult {
	h := fnv.New32a()
	_, _ = h.Write([]byte(image.Name))
	value := strconv.FormatUint(uint64(h.Sum32()%100000), 10)
	g.logger.Debug("mock analysis", zap.String("name", image.Name), zap.String("value", value))
	return interfaces.AnalysisResult{
		RawValue: value,
		ImageURL: "mock://files/" + image.Name,
	}
}

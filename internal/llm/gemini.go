package llm

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

// contentGenerator is the slice of the genai Models service this package uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// geminiClient implements LLMClient on the Gemini API.
type geminiClient struct {
	cfg      LLMConfig
	models   contentGenerator
	observer Observer
}

// NewGeminiClient creates an LLMClient backed by the Gemini API.
func NewGeminiClient(ctx context.Context, cfg LLMConfig, observer Observer) (LLMClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return newGeminiClient(cfg, client.Models, observer), nil
}

func newGeminiClient(cfg LLMConfig, models contentGenerator, observer Observer) *geminiClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{cfg: cfg, models: models, observer: observer}
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	config := c.buildConfig(req)

	parts := make([]*genai.Part, 0, len(req.Images)+1)
	for _, img := range req.Images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(req.UserPrompt))
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	return generateWithRetry(ctx, c.cfg, c.observer, req.Task, func(ctx context.Context) (string, string, error) {
		res, err := c.models.GenerateContent(ctx, c.cfg.Model, contents, config)
		if err != nil {
			return "", "", err
		}
		return strings.TrimSpace(res.Text()), res.ModelVersion, nil
	})
}

func (c *geminiClient) buildConfig(req GenerateRequest) *genai.GenerateContentConfig {
	s := c.cfg.sampling(req)

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(s.temperature)),
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}
	if s.topP > 0 {
		config.TopP = genai.Ptr(float32(s.topP))
	}
	if s.maxTokens > 0 {
		config.MaxOutputTokens = int32(s.maxTokens)
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = toGenaiSchema(req.Schema)
	}
	return config
}

// Available reports whether a key is configured; the Gemini API has no
// cheap liveness probe.
func (c *geminiClient) Available(context.Context) bool {
	return c.cfg.APIKey != ""
}

func toGenaiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:             genaiType(s.Type),
		Description:      s.Description,
		Required:         s.Required,
		PropertyOrdering: s.Ordering,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = toGenaiSchema(p)
		}
	}
	if s.Items != nil {
		out.Items = toGenaiSchema(s.Items)
	}
	return out
}

func genaiType(t SchemaType) genai.Type {
	switch t {
	case TypeObject:
		return genai.TypeObject
	case TypeArray:
		return genai.TypeArray
	case TypeNumber:
		return genai.TypeNumber
	case TypeInteger:
		return genai.TypeInteger
	case TypeBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}

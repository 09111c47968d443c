// Package extraction turns an uploaded resume document into a MasterResume using an LLM.
package extraction

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/jonathan/resume-tailor/internal/validation"
	"go.uber.org/zap"
)

// Extractor sends resume documents to an LLM and parses the structured reply.
// It is safe for concurrent use when the client is.
type Extractor struct {
	client llm.Client
	tier   llm.ModelTier
	logger *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTier selects the model tier used for extraction.
func WithTier(tier llm.ModelTier) Option {
	return func(e *Extractor) {
		e.tier = tier
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Extractor around an existing client.
func New(client llm.Client, opts ...Option) *Extractor {
	e := &Extractor{
		client: client,
		tier:   llm.TierStandard,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromAPIKey creates an Extractor backed by a Gemini client.
// Callers must Close the returned Extractor.
func NewFromAPIKey(ctx context.Context, apiKey string, config *llm.Config, opts ...Option) (*Extractor, error) {
	if apiKey == "" {
		return nil, &ExtractionError{Message: "API key is required"}
	}

	client, err := llm.NewClient(ctx, config, apiKey)
	if err != nil {
		return nil, &ExtractionError{
			Message: "failed to create LLM client",
			Cause:   err,
		}
	}
	return New(client, opts...), nil
}

// Close releases the underlying client.
func (e *Extractor) Close() error {
	if e == nil || e.client == nil {
		return nil
	}
	return e.client.Close()
}

// ExtractResume decodes the uploaded file, asks the model for the master resume
// structure, and returns the parsed result with every list present.
func (e *Extractor) ExtractResume(ctx context.Context, req types.ParseResumeRequest) (*types.MasterResume, error) {
	if e == nil || e.client == nil {
		return nil, &ExtractionError{Message: "extractor is not configured"}
	}
	if err := req.Validate(); err != nil {
		return nil, &ExtractionError{Message: "invalid request", Cause: err}
	}

	data, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		return nil, &ExtractionError{Message: "file data is not valid base64", Cause: err}
	}

	mimeType, data, err := prepareDocument(req.MimeType, data)
	if err != nil {
		return nil, &ExtractionError{Message: "failed to read document", Cause: err}
	}

	if mimeType == types.MIMETypePlainText {
		validation.WarnOnInjection(e.logger, string(data), "uploaded resume")
	}

	e.logger.Debug("extracting resume",
		zap.String("mime_type", mimeType),
		zap.Int("bytes", len(data)),
		zap.String("tier", string(e.tier)),
	)

	prompt := llm.BuildExtractionPrompt(llm.MasterResumeSchema(), "")
	responseText, err := e.client.GenerateFromDocument(ctx, prompt, mimeType, data, e.tier)
	if err != nil {
		return nil, &ExtractionError{Message: "failed to generate content from LLM", Cause: err}
	}

	resume, err := parseJSONResponse(llm.CleanJSONBlock(responseText))
	if err != nil {
		return nil, err
	}

	postProcessResume(resume)

	e.logger.Debug("resume extracted",
		zap.Int("experience", len(resume.Experience)),
		zap.Int("projects", len(resume.Projects)),
		zap.Int("skills", resume.Skills.Total()),
	)
	return resume, nil
}

// prepareDocument converts formats the model cannot read inline into plain text
func prepareDocument(mimeType string, data []byte) (string, []byte, error) {
	if mimeType != types.MIMETypeDOCX {
		return mimeType, data, nil
	}

	text, err := ingestion.ExtractText(mimeType, data)
	if err != nil {
		return "", nil, err
	}
	return types.MIMETypePlainText, []byte(text), nil
}

// parseJSONResponse parses the JSON response into a MasterResume
func parseJSONResponse(jsonText string) (*types.MasterResume, error) {
	if strings.TrimSpace(jsonText) == "" {
		return nil, &ExtractionError{Message: "no response from model"}
	}

	var resume types.MasterResume
	if err := json.Unmarshal([]byte(jsonText), &resume); err != nil {
		return nil, &ExtractionError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}
	return &resume, nil
}

// postProcessResume trims fields, drops blank bullets, and canonicalizes skill names
func postProcessResume(r *types.MasterResume) {
	r.PersonalInfo.FullName = strings.TrimSpace(r.PersonalInfo.FullName)
	r.PersonalInfo.Email = strings.TrimSpace(r.PersonalInfo.Email)

	for i := range r.Experience {
		r.Experience[i].Bullets = compactStrings(r.Experience[i].Bullets)
	}
	for i := range r.Projects {
		r.Projects[i].Technologies = compactStrings(r.Projects[i].Technologies)
		r.Projects[i].Bullets = compactStrings(r.Projects[i].Bullets)
	}
	for _, category := range types.SkillCategories() {
		r.Skills.Set(category, NormalizeSkills(r.Skills.Get(category)))
	}

	r.Normalize()
}

func compactStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

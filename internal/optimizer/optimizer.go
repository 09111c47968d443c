// Package optimizer tailors a master resume to a job description and assembles the result.
package optimizer

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/types"
	"go.uber.org/zap"
)

// Defaults for the assembled result
const (
	DefaultKeywordLimit = 12
	explainKeywordCount = 3
)

// DocumentRenderer turns selected content into document source.
// Implementations must be deterministic for identical input.
type DocumentRenderer interface {
	Render(info types.PersonalInfo, education []types.Education, experience []types.Experience, projects []types.Project, skills types.Skills) (string, error)
}

// Optimizer runs term extraction, scoring, selection and rendering.
// It holds no per-run state and is safe for concurrent use.
type Optimizer struct {
	renderer     DocumentRenderer
	maxProjects  int
	keywordLimit int
	logger       *zap.Logger
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithMaxProjects sets how many projects are kept. A negative value keeps all of them.
func WithMaxProjects(n int) Option {
	return func(o *Optimizer) { o.maxProjects = n }
}

// WithKeywordLimit sets how many technical keywords are reported.
func WithKeywordLimit(n int) Option {
	return func(o *Optimizer) { o.keywordLimit = n }
}

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *Optimizer) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates an optimizer that renders through renderer.
// A nil renderer uses the built-in LaTeX template.
func New(renderer DocumentRenderer, opts ...Option) *Optimizer {
	o := &Optimizer{
		renderer:     renderer,
		maxProjects:  ranking.MaxProjects,
		keywordLimit: DefaultKeywordLimit,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Optimize tailors resume to jobDescription using the built-in LaTeX template.
func Optimize(resume *types.MasterResume, jobDescription string) (*types.OptimizationResult, error) {
	return New(nil).Optimize(resume, jobDescription)
}

// Optimize selects and reorders resume content for jobDescription and renders it.
// The master resume is never modified. The only failure after input checks is a renderer error.
func (o *Optimizer) Optimize(resume *types.MasterResume, jobDescription string) (*types.OptimizationResult, error) {
	if resume == nil {
		return nil, ErrNilResume
	}

	weights := ranking.ExtractTermWeights(jobDescription)
	scorer := ranking.NewScorer(weights)

	selected := types.SelectedContent{
		Experience: ranking.SelectExperience(scorer, resume.Experience),
		Projects:   ranking.SelectProjects(scorer, resume.Projects, o.maxProjects),
		Skills:     ranking.SelectSkills(weights, jobDescription, resume.Skills),
	}
	keywords := ranking.TopKeywords(weights, o.keywordLimit)

	o.logger.Debug("content selected",
		zap.Int("terms", weights.Len()),
		zap.Int("keywords", len(keywords)),
		zap.Int("experience", len(selected.Experience)),
		zap.Int("projects", len(selected.Projects)),
		zap.Int("skills", selected.Skills.Total()),
	)

	renderer, err := o.documentRenderer()
	if err != nil {
		return nil, err
	}

	source, err := renderer.Render(
		resume.PersonalInfo,
		cloneEducation(resume.Education),
		selected.Experience,
		selected.Projects,
		selected.Skills,
	)
	if err != nil {
		return nil, &OptimizeError{
			Message: "failed to render document",
			Cause:   err,
		}
	}

	return &types.OptimizationResult{
		LaTeX:             source,
		KeywordsExtracted: keywords,
		Explanation:       Explain(keywords, len(selected.Experience), len(selected.Projects)),
		OptimizedData:     selected,
	}, nil
}

// Explain builds the human-readable summary for a run.
func Explain(keywords []string, roles, projects int) string {
	top := keywords
	if len(top) > explainKeywordCount {
		top = top[:explainKeywordCount]
	}
	return fmt.Sprintf("Optimized for %s. Scored %d roles and %d projects based on relevance.",
		strings.Join(top, ", "), roles, projects)
}

func (o *Optimizer) documentRenderer() (DocumentRenderer, error) {
	if o.renderer != nil {
		return o.renderer, nil
	}
	r, err := rendering.NewLaTeXRenderer()
	if err != nil {
		return nil, &OptimizeError{Message: "failed to load built-in template", Cause: err}
	}
	return r, nil
}

func cloneEducation(in []types.Education) []types.Education {
	if in == nil {
		return nil
	}
	out := make([]types.Education, len(in))
	copy(out, in)
	return out
}

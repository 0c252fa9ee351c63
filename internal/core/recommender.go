// ABOUTME: Recommender orchestrates aggregation, retrieval, and explanation
// ABOUTME: The single entry point exposed to the HTTP, MCP, and CLI boundaries
package core

import (
	"context"
	"log"

	"github.com/rasheed1306/movienight/internal/models"
	"github.com/rasheed1306/movienight/internal/prompts"
)

// Options carries the retrieval tuning for a Recommender. The zero
// threshold accepts everything with non-negative similarity, which is the
// operative default for group recommendation.
type Options struct {
	SimilarityThreshold float64
	MatchCount          int
}

// Recommender wires the pipeline components together.
type Recommender struct {
	aggregator *Aggregator
	retriever  *Retriever
	explainer  *Explainer
	registry   *prompts.Registry
	opts       Options
}

// NewRecommender builds a Recommender from injected providers.
func NewRecommender(embedder Embedder, completer Completer, store CatalogStore, registry *prompts.Registry, opts Options) *Recommender {
	if opts.MatchCount <= 0 {
		opts.MatchCount = 3
	}
	return &Recommender{
		aggregator: NewAggregator(embedder),
		retriever:  NewRetriever(store),
		explainer:  NewExplainer(completer, registry),
		registry:   registry,
		opts:       opts,
	}
}

// Recommend runs the full pipeline: aggregate the group's preferences into
// one query vector, retrieve and re-rank catalog matches, and generate an
// explanation for the top result only. A failed explanation degrades the
// response (explanation left unset) instead of aborting it; aggregation
// and retrieval failures abort.
func (r *Recommender) Recommend(ctx context.Context, prefs models.PreferenceRecord, templateName string) ([]models.RankedResult, error) {
	query, err := r.aggregator.Aggregate(ctx, prefs)
	if err != nil {
		return nil, err
	}

	results, err := r.retriever.Retrieve(query, r.opts.SimilarityThreshold, r.opts.MatchCount)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return results, nil
	}

	explanation, err := r.explainer.Explain(ctx, results[0], prefs, templateName)
	if err != nil {
		log.Printf("Warning: explanation generation failed, returning results without it: %v", err)
		return results, nil
	}
	results[0].Explanation = explanation
	return results, nil
}

// TemplateNames returns the available explanation template names.
func (r *Recommender) TemplateNames() []string {
	return r.registry.Names()
}

// DefaultTemplateName returns the designated default template name.
func (r *Recommender) DefaultTemplateName() string {
	return prompts.DefaultName
}

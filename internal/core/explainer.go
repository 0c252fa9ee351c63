// ABOUTME: Generates the natural-language justification for the top match
// ABOUTME: Renders group preferences into a prompt template and calls the LLM
package core

import (
	"context"
	"strings"

	"github.com/rasheed1306/movienight/internal/models"
	"github.com/rasheed1306/movienight/internal/prompts"
)

// Explainer produces a justification for a single ranked result.
type Explainer struct {
	completer Completer
	registry  *prompts.Registry
}

// NewExplainer creates an Explainer using the given completion provider
// and template registry.
func NewExplainer(completer Completer, registry *prompts.Registry) *Explainer {
	return &Explainer{completer: completer, registry: registry}
}

// Explain fills the named template (default on unknown names) with the
// movie and a group preference summary, then makes one generation call.
// It is invoked only for the top-ranked result.
func (e *Explainer) Explain(ctx context.Context, item models.RankedResult, prefs models.PreferenceRecord, templateName string) (string, error) {
	prompt := e.registry.Render(templateName, item.Title, item.Description, FormatGroupPreferences(prefs))

	text, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		return "", &ExplanationError{Err: err}
	}
	return strings.TrimSpace(text), nil
}

// FormatGroupPreferences renders the record into readable text, one
// "Name (stem: answer, ...)" segment per user joined by "; ". The stem is
// the question text up to its first "?", lower-cased, as is the answer.
func FormatGroupPreferences(prefs models.PreferenceRecord) string {
	segments := make([]string, 0, len(prefs))
	for _, user := range prefs {
		pairs := make([]string, 0, len(user.Answers))
		for _, answer := range user.Answers {
			stem, _, _ := strings.Cut(answer.Question, "?")
			pairs = append(pairs, strings.ToLower(stem)+": "+strings.ToLower(answer.Text))
		}
		segments = append(segments, user.User+" ("+strings.Join(pairs, ", ")+")")
	}
	return strings.Join(segments, "; ")
}

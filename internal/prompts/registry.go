// ABOUTME: Named prompt templates for movie recommendation explanations
// ABOUTME: Read-only registry populated at startup with a guaranteed default
package prompts

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultName is the template used when a requested name is unknown.
const DefaultName = "default"

// Placeholders every template must define, and the only ones permitted.
const (
	placeholderTitle       = "{movie_title}"
	placeholderDescription = "{movie_description}"
	placeholderGroupText   = "{group_text}"
)

var builtinTemplates = map[string]string{
	"default": `Write a compelling 2-3 sentence explanation for why this group will love this movie.

Movie: {movie_title}
Description: {movie_description}

Group Preferences: {group_text}

Connect the movie to the group's preferences. Be specific, conversational, and enthusiastic.

Explanation:`,

	"conversational": `Hey! Tell this group in 2-3 sentences why this movie is perfect for them.

Movie: {movie_title} - {movie_description}
Group wants: {group_text}

Keep it friendly and match their preferences to the movie.

Explanation:`,

	"balanced": `Explain in 2-3 sentences why this movie works for the whole group.

Movie: {movie_title}
Description: {movie_description}
Group Preferences: {group_text}

Show how the movie addresses different members' preferences while being a cohesive experience.

Explanation:`,
}

// Matches any brace-delimited marker, not just well-formed names, so
// typos like "{movie_title }" are rejected rather than left unfilled.
var placeholderPattern = regexp.MustCompile(`\{[^{}]*\}`)

// Registry maps template names to validated template strings. It is
// immutable after construction.
type Registry struct {
	templates map[string]string
}

// NewRegistry builds a registry containing the built-in templates.
func NewRegistry() (*Registry, error) {
	return newRegistry(nil)
}

// NewRegistryWithFile builds a registry containing the built-in templates
// plus any defined in the given YAML file (name -> template text). File
// entries may override built-ins, except the default template's presence.
func NewRegistryWithFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading templates file: %w", err)
	}

	var extra map[string]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parsing templates file: %w", err)
	}
	return newRegistry(extra)
}

func newRegistry(extra map[string]string) (*Registry, error) {
	templates := make(map[string]string, len(builtinTemplates)+len(extra))
	for name, text := range builtinTemplates {
		templates[name] = text
	}
	for name, text := range extra {
		if name == "" {
			return nil, fmt.Errorf("template with empty name")
		}
		templates[name] = text
	}

	for name, text := range templates {
		if err := validateTemplate(text); err != nil {
			return nil, fmt.Errorf("template %q: %w", name, err)
		}
	}
	if _, ok := templates[DefaultName]; !ok {
		return nil, fmt.Errorf("registry is missing the %q template", DefaultName)
	}

	return &Registry{templates: templates}, nil
}

func validateTemplate(text string) error {
	required := map[string]bool{
		placeholderTitle:       false,
		placeholderDescription: false,
		placeholderGroupText:   false,
	}

	for _, marker := range placeholderPattern.FindAllString(text, -1) {
		if _, ok := required[marker]; !ok {
			return fmt.Errorf("unknown placeholder %s", marker)
		}
		required[marker] = true
	}
	for marker, found := range required {
		if !found {
			return fmt.Errorf("missing placeholder %s", marker)
		}
	}
	return nil
}

// Render fills the named template with the movie title, description, and
// group preference summary. An unknown name falls back to the default
// template.
func (r *Registry) Render(name, movieTitle, movieDescription, groupText string) string {
	text, ok := r.templates[name]
	if !ok {
		text = r.templates[DefaultName]
	}

	return strings.NewReplacer(
		placeholderTitle, movieTitle,
		placeholderDescription, movieDescription,
		placeholderGroupText, groupText,
	).Replace(text)
}

// Names returns the sorted template names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the registry contains the named template.
func (r *Registry) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

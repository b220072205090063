// Package render fills text templates with plan parameters. Missing
// keys are hard errors; a template that silently renders "<no value>"
// into a config file is worse than one that fails.
package render

import (
	"fmt"
	"os"
	"strings"
	"text/template"
)

// Render parses text as a template and executes it with params.
func Render(name, text string, params map[string]any) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, params); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return sb.String(), nil
}

// ToFile renders the template file at src into dst.
func ToFile(src, dst string, params map[string]any) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	out, err := Render(src, string(raw), params)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, []byte(out), 0o644)
}

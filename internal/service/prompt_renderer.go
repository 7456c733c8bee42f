package service

import (
	"fmt"
	"strings"
	"text/template"
)

// RenderPrompt executes a stored prompt body as a text/template. Missing keys
// render as empty strings so admins can write optional placeholders.
func RenderPrompt(body string, data interface{}) (string, error) {
	tmpl, err := parsePrompt(body)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: prompt template failed to render: %s", ErrInvalidInput, err.Error())
	}
	// A missing key in a map[string]interface{} still prints "<no value>" under missingkey=zero.
	rendered := strings.ReplaceAll(sb.String(), "<no value>", "")
	return strings.TrimSpace(rendered), nil
}

func parsePrompt(body string) (*template.Template, error) {
	tmpl, err := template.New("prompt").
		Option("missingkey=zero").
		Funcs(template.FuncMap{
			"join":  strings.Join,
			"upper": strings.ToUpper,
			"lower": strings.ToLower,
			"add":   func(a, b int) int { return a + b },
		}).
		Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: prompt template does not parse: %s", ErrInvalidInput, err.Error())
	}
	return tmpl, nil
}

package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// renderTemplate renders one html template file from dir with the given
// environment.
func renderTemplate(dir, file string, environment map[string]any) (string, error) {
	tmpl, err := template.ParseFiles(filepath.Join(dir, file))
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", file, err)
	}

	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, environment); err != nil {
		return "", fmt.Errorf("render template %s: %w", file, err)
	}

	return buf.String(), nil
}

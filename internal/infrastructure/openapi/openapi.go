package openapi

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Rewrite post-processes the OpenAPI document in place: every operationId
// loses its "{tag}-" prefix so generated clients get flat method names. The
// root path is left untouched.
func Rewrite(logger *zap.Logger, filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read openapi file: %w", err)
	}

	var doc map[string]any
	if err = json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse openapi file: %w", err)
	}

	ModifyDocument(doc)

	out, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode openapi file: %w", err)
	}
	if err = os.WriteFile(filePath, out, 0o644); err != nil {
		return fmt.Errorf("write openapi file: %w", err)
	}

	logger.Info("updated OpenAPI document", zap.String("path", filePath))

	return nil
}

func ModifyDocument(doc map[string]any) {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return
	}

	for key, pathData := range paths {
		if key == "/" {
			continue
		}
		operations, ok := pathData.(map[string]any)
		if !ok {
			continue
		}
		for _, op := range operations {
			updateOperationID(op)
		}
	}
}

func updateOperationID(op any) {
	operation, ok := op.(map[string]any)
	if !ok {
		return
	}
	operationID, _ := operation["operationId"].(string)
	tags, _ := operation["tags"].([]any)
	if operationID == "" || len(tags) == 0 {
		return
	}
	tag, _ := tags[0].(string)
	if tag == "" {
		return
	}

	operation["operationId"] = strings.TrimPrefix(operationID, tag+"-")
}

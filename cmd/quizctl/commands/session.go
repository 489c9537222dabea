// Package commands provides the quizctl subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lshigami/studyquiz/internal/model"
	"gopkg.in/yaml.v3"
)

// LoadSession reads a quiz session from a .json, .yaml or .yml file.
func LoadSession(path string) (*model.QuizSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file %s: %w", path, err)
	}
	return ParseSession(data, filepath.Ext(path))
}

func ParseSession(data []byte, ext string) (*model.QuizSession, error) {
	var session model.QuizSession
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &session); err != nil {
			return nil, fmt.Errorf("failed to parse YAML session: %w", err)
		}
	case ".json", "":
		if err := json.Unmarshal(data, &session); err != nil {
			return nil, fmt.Errorf("failed to parse JSON session: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported session file extension %q", ext)
	}
	return &session, nil
}

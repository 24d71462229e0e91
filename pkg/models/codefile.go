package models

import (
	"path"
	"strings"
)

// CodeFile is one generated artifact
type CodeFile struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

// Dir returns the directory part of the artifact path, or "" for top-level files
func (f CodeFile) Dir() string {
	dir := path.Dir(f.Path)
	if dir == "." {
		return ""
	}
	return dir
}

// Language guesses the source language from the file extension
func (f CodeFile) Language() string {
	switch strings.ToLower(path.Ext(f.Name)) {
	case ".tsx":
		return "tsx"
	case ".ts":
		return "typescript"
	case ".jsx", ".js":
		return "javascript"
	case ".css":
		return "css"
	case ".md":
		return "markdown"
	case ".json":
		return "json"
	default:
		return "text"
	}
}

// Package fs fences files as language-tagged code blocks, selecting them
// with doublestar globs.
package fs

import (
	"path"
	"strings"
)

var languages = map[string]string{
	".bash":  "bash",
	".c":     "c",
	".cpp":   "cpp",
	".cs":    "cs",
	".css":   "css",
	".diff":  "diff",
	".go":    "go",
	".h":     "c",
	".html":  "html",
	".java":  "java",
	".js":    "js",
	".json":  "json",
	".kt":    "kotlin",
	".lua":   "lua",
	".md":    "md",
	".php":   "php",
	".py":    "py",
	".rb":    "rb",
	".rs":    "rs",
	".sh":    "sh",
	".sql":   "sql",
	".swift": "swift",
	".toml":  "toml",
	".ts":    "ts",
	".xml":   "xml",
	".yaml":  "yaml",
	".yml":   "yaml",
	".zig":   "zig",
}

// Language returns the code block tag for a file name, or "" when the
// extension is unknown. Dockerfile and Makefile are matched by name.
func Language(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	switch base {
	case "Dockerfile":
		return "dockerfile"
	case "Makefile":
		return "makefile"
	}
	return languages[strings.ToLower(path.Ext(base))]
}

package url

import (
	neturl "net/url"
	"path/filepath"
	"strings"
)

// Template placeholders recognised by ResolveTemplate.
const (
	PlaceholderFullPath    = "{full_path}"
	PlaceholderNameWithExt = "{name_with_ext}"
	PlaceholderNameNoExt   = "{name_no_ext}"
)

const (
	// BlankPage is loaded when neither the template nor the homepage apply.
	BlankPage = "about:blank"

	fileScheme = "file://"
)

// PathParts is a file path split the way the URL template sees it.
type PathParts struct {
	Dir  string // directory portion, no trailing separator
	Base string // name with extension
	Name string // name without extension
}

// SplitPath decomposes a file path into directory, base name and bare name.
// A leading dot on the base name is part of the name, not an extension,
// so ".bashrc" has no extension.
func SplitPath(p string) PathParts {
	if p == "" {
		return PathParts{}
	}

	sep := string(filepath.Separator)
	trimmed := strings.TrimRight(p, sep)
	if trimmed == "" {
		return PathParts{Dir: sep}
	}

	var parts PathParts
	idx := strings.LastIndex(trimmed, sep)
	switch {
	case idx < 0:
		parts.Base = trimmed
	case idx == 0:
		parts.Dir = sep
		parts.Base = trimmed[1:]
	default:
		parts.Dir = trimmed[:idx]
		parts.Base = trimmed[idx+1:]
	}

	parts.Name = parts.Base
	if dot := strings.LastIndex(parts.Base, "."); dot > 0 {
		parts.Name = parts.Base[:dot]
	}
	return parts
}

// ResolveTemplate maps a file path to the URL a new pane should load.
//
// An empty path or an empty template yields the homepage, or about:blank
// when the homepage is empty too. Otherwise every placeholder occurrence is
// replaced by the matching part of the path in one pass; unknown tokens are
// kept as-is. A result using the file scheme is normalised and re-encoded as
// a canonical file URL, anything else is returned verbatim.
func ResolveTemplate(filePath, template, homepage string) string {
	template = strings.TrimSpace(template)
	homepage = strings.TrimSpace(homepage)

	if filePath == "" || template == "" {
		if homepage != "" {
			return homepage
		}
		return BlankPage
	}

	parts := SplitPath(filePath)
	mapped := strings.NewReplacer(
		PlaceholderFullPath, parts.Dir,
		PlaceholderNameWithExt, parts.Base,
		PlaceholderNameNoExt, parts.Name,
	).Replace(template)

	if !strings.HasPrefix(mapped, fileScheme) {
		return mapped
	}
	return FileURL(strings.TrimPrefix(mapped, fileScheme))
}

// FileURL converts a local path to a percent-encoded file:// URL.
// Relative paths are resolved against the working directory. Sub-delimiters
// such as '(' and '!' stay literal, as browsers report them.
func FileURL(p string) string {
	cleaned := filepath.Clean(p)
	if !filepath.IsAbs(cleaned) {
		if abs, err := filepath.Abs(cleaned); err == nil {
			cleaned = abs
		}
	}

	slashed := filepath.ToSlash(cleaned)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}

	u := neturl.URL{Scheme: "file", Path: slashed, RawPath: escapeFilePath(slashed)}
	return u.String()
}

// Bytes kept literal in file URL paths: the encodeURI set minus '?' and '#'.
const filePathLiterals = "-_.!~*'();,/:@&=+$"

const upperHex = "0123456789ABCDEF"

// escapeFilePath percent-encodes p byte by byte, leaving ASCII letters,
// digits and filePathLiterals as they are.
func escapeFilePath(p string) string {
	var b strings.Builder
	b.Grow(len(p))
	for i := 0; i < len(p); i++ {
		c := p[i]
		if isFilePathLiteral(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func isFilePathLiteral(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte(filePathLiterals, c) >= 0
}

// Package memegen renders meme images through a memegen-compatible HTTP
// service and owns the caption-to-URL encoding scheme that service expects.
package memegen

import "strings"

// Literal underscore and dash must be doubled before any other substitution,
// otherwise the placeholders introduced for spaces and special characters
// would be double-encoded.
var literalEscaper = strings.NewReplacer(
	"_", "__",
	"-", "--",
)

var specialEscaper = strings.NewReplacer(
	"?", "~q",
	"%", "~p",
	"#", "~h",
	"/", "~s",
	"\\", "~b",
)

// EncodeText converts one caption line into a URL path segment. Blank or
// whitespace-only text encodes as a single underscore so the slot stays
// present in the URL.
func EncodeText(text string) string {
	if strings.TrimSpace(text) == "" {
		return "_"
	}
	text = literalEscaper.Replace(text)
	text = specialEscaper.Replace(text)
	return strings.ReplaceAll(text, " ", "_")
}

// RenderURL builds the image URL for a template and its caption lines. Every
// slot appears in the path, blank slots included.
func RenderURL(baseURL, templateID string, lines []string) string {
	base := strings.TrimRight(baseURL, "/")
	if len(lines) == 0 {
		return base + "/images/" + templateID + ".png"
	}
	encoded := make([]string, len(lines))
	for i, line := range lines {
		encoded[i] = EncodeText(line)
	}
	return base + "/images/" + templateID + "/" + strings.Join(encoded, "/") + ".png"
}

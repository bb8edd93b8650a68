// Package util holds identifier casing helpers shared by the naming and
// target-type code.
package util

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts PascalCase or camelCase to snake_case.
// Handles acronyms (e.g., "XMLHttpRequest" -> "xml_http_request") and keeps
// digits attached to the word before them ("WebGL2Context" -> "web_gl2_context").
// Existing underscores and hyphens are treated as word separators.
func ToSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)
	pendingSep := false

	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			pendingSep = result.Len() > 0
			continue
		}

		if i > 0 && unicode.IsUpper(r) && result.Len() > 0 {
			prev := runes[i-1]
			// Inside an acronym, only break before its last letter when a
			// lowercase letter follows ("HTMLElement" -> "html_element")
			prevUpper := unicode.IsUpper(prev)
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				pendingSep = true
			}
		}

		if pendingSep {
			result.WriteRune('_')
			pendingSep = false
		}
		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// ToPascalCase converts snake_case or kebab-case to PascalCase
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		// Capitalize first letter, keep rest as-is
		runes := []rune(part)
		result.WriteRune(unicode.ToUpper(runes[0]))
		result.WriteString(string(runes[1:]))
	}

	return result.String()
}

// ToRustTypeName converts an IDL identifier to the upper camel case name used
// for generated Rust types: acronyms are normalised first, so
// "XMLHttpRequest" becomes "XmlHttpRequest" and "HTMLElement" "HtmlElement".
func ToRustTypeName(s string) string {
	return ToPascalCase(ToSnakeCase(s))
}

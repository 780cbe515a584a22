package registry

import (
	"crypto/rand"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	templateIDMaxLength    = 64
	randomIDSuffixLength   = 8
	randomIDSuffixFallback = "abcdefgh"
)

var (
	templateIDPattern   = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*[a-z0-9]$`)
	nonAlphanumericExpr = regexp.MustCompile(`[^a-z0-9]+`)
)

// GenerateTemplateID converts a template document path into a sanitized
// registry id.
func GenerateTemplateID(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	id := sanitizeName(base)
	if id == "" {
		id = fmt.Sprintf("template-%s", randomIDSuffix(randomIDSuffixLength))
	}

	return id
}

// ValidateTemplateID ensures the provided id matches the allowed pattern.
func ValidateTemplateID(id string) error {
	if id == "" {
		return fmt.Errorf("template ID cannot be empty")
	}

	if len(id) > templateIDMaxLength {
		return fmt.Errorf("template ID %q is too long: maximum length is %d characters", id, templateIDMaxLength)
	}

	if !templateIDPattern.MatchString(id) {
		return fmt.Errorf("invalid template ID %q: must match %s", id, templateIDPattern.String())
	}

	return nil
}

// sanitizeName normalizes a filename into an identifier-friendly format.
func sanitizeName(name string) string {
	lowered := strings.ToLower(name)
	sanitized := nonAlphanumericExpr.ReplaceAllString(lowered, "-")
	sanitized = strings.Trim(sanitized, "-")

	if len(sanitized) > templateIDMaxLength {
		sanitized = strings.Trim(sanitized[:templateIDMaxLength], "-")
	}

	return sanitized
}

func randomIDSuffix(length int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	if length <= 0 {
		return ""
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return randomIDSuffixFallback
	}

	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}

	return string(buf)
}

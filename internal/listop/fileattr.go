package listop

import (
	"fmt"

	"github.com/vk/flowgrid/internal/segment"
)

// File attribute keys fall into three categories with distinct comparison
// semantics: free-form string attributes use the string operator set,
// enum-valued attributes only support sequence membership, and size is
// numeric.

func isStringFileKey(key string) bool {
	switch key {
	case "name", "extension", "mime_type", "url":
		return true
	}
	return false
}

func isEnumFileKey(key string) bool {
	return key == "type" || key == "transfer_method"
}

// fileStringAttr returns the accessor for a string-valued attribute key,
// covering both free-form and enum-valued keys.
func fileStringAttr(key string) (func(*segment.File) string, error) {
	switch key {
	case "name":
		return func(f *segment.File) string { return f.Filename }, nil
	case "type":
		return func(f *segment.File) string { return f.Type }, nil
	case "extension":
		return func(f *segment.File) string { return f.Extension }, nil
	case "mime_type":
		return func(f *segment.File) string { return f.MimeType }, nil
	case "transfer_method":
		return func(f *segment.File) string { return string(f.TransferMethod) }, nil
	case "url":
		return func(f *segment.File) string { return f.RemoteURL }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
}

// fileNumberAttr returns the accessor for a number-valued attribute key.
func fileNumberAttr(key string) (func(*segment.File) float64, error) {
	switch key {
	case "size":
		return func(f *segment.File) float64 { return float64(f.Size) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
}

package normalization

import "strings"

// ParseInputString trims and lower-cases free-form input such as emails.
func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// ParseEnum trims and upper-cases enum literals ("published" -> "PUBLISHED").
func ParseEnum(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

func ParseEnumPtr(input *string) *string {
	if input == nil {
		return nil
	}
	normalized := ParseEnum(*input)
	return &normalized
}

func TrimPtr(input *string) *string {
	if input == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*input)
	return &trimmed
}

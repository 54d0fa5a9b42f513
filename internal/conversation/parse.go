package conversation

import (
	"strconv"
	"strings"

	"github.com/tavernkeep/tavernkeep/internal/errors"
)

// splitFields splits semicolon-separated text input into trimmed fields
func splitFields(s string) []string {
	parts := strings.Split(s, ";")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		fields = append(fields, strings.TrimSpace(part))
	}
	return fields
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.InvalidArgumentf("%q is not a number", strings.TrimSpace(s))
	}
	return n, nil
}

func parsePositive(s string) (int, error) {
	n, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.InvalidArgumentf("%d must be positive", n)
	}
	return n, nil
}

package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Username is a word-like handle: lowercase ASCII letters, digits and
// underscores only. It must not open with a digit, a period or an
// underscore, must not close with a period or an underscore, and a
// digit must never sit directly next to an underscore.
var usernameCharset = regexp.MustCompile(`^[a-z0-9_]+$`)

// ValidateUsername checks a candidate username against the handle rule.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if !usernameCharset.MatchString(username) {
		return fmt.Errorf("username must contain only lowercase letters, digits and underscores")
	}

	if first := username[0]; isDigit(first) || first == '_' {
		return fmt.Errorf("username cannot start with a digit or underscore")
	}

	if strings.HasSuffix(username, "_") {
		return fmt.Errorf("username cannot end with an underscore")
	}

	for i := 0; i+1 < len(username); i++ {
		a, b := username[i], username[i+1]
		if (a == '_' && isDigit(b)) || (isDigit(a) && b == '_') {
			return fmt.Errorf("username cannot have a digit next to an underscore")
		}
	}

	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

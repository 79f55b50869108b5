// Package ansible interprets the runtime version constraints that
// collections publish in their "requires_ansible" metadata field.
package ansible

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	apperrors "hubver/pkg/errors"
)

// opReplacer strips the comparison operators that may prefix a
// version token in a requires_ansible expression.
var opReplacer = strings.NewReplacer(">=", "", "<=", "", ">", "", "<", "", "==", "", "=", "")

// MinorVersion reduces a version-constraint expression to its
// "major.minor" bucket key, taken from the first clause.
//
// Constraints come in forms like ">=2.10", ">=2.9,<2.17" or a plain
// "2.9.0"; any comma-delimited trailing clause (typically an upper
// bound) is discarded and patch-level detail is dropped:
//
//	MinorVersion(">=2.10")       // "2.10"
//	MinorVersion(">=2.9,<2.17")  // "2.9"
//	MinorVersion("2.9.0")        // "2.9"
//
// The result is a fixed point: feeding "2.9" back in yields "2.9".
// An input that does not reduce to a dotted-numeric version returns an
// error with code [apperrors.ErrCodeVersionParse]; there is no default.
func MinorVersion(raw string) (string, error) {
	token := raw
	if i := strings.IndexByte(token, ','); i >= 0 {
		token = token[:i]
	}
	token = strings.TrimSpace(opReplacer.Replace(token))
	if token == "" {
		return "", apperrors.New(apperrors.ErrCodeVersionParse, "empty version constraint %q", raw)
	}

	v, err := semver.NewVersion(token)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeVersionParse, err, "unparseable version constraint %q", raw)
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor()), nil
}

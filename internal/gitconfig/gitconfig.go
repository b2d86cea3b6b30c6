// Package gitconfig reads identity values from the local git configuration.
package gitconfig

import (
	"os/exec"
	"strings"
)

// UserName returns the user.name value from the local git configuration.
// The second return value is false when git is not installed or the key is
// not set. Absence is the expected "not configured" case, not an error.
func UserName() (string, bool) {
	out, err := exec.Command("git", "config", "user.name").Output()
	if err != nil {
		return "", false
	}
	name := strings.TrimSpace(string(out))
	if name == "" {
		return "", false
	}
	return name, true
}

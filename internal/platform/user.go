package platform

import (
	"os"
	"os/user"

	"github.com/juju/errors"
)

var currentUser = user.Current

// CurrentUser returns the login name used for the per-user media root.
func CurrentUser() (string, error) {
	if u, err := currentUser(); err == nil && u.Username != "" {
		return u.Username, nil
	}
	if name := os.Getenv("USER"); name != "" {
		return name, nil
	}
	return "", errors.NotFoundf("current user")
}

package envinfo

import (
	"errors"
	"os"
	"os/user"

	"github.com/sirupsen/logrus"
)

// DefaultUserName is used when neither detection nor configuration yields a name.
const DefaultUserName = "anonymous"

type Info struct {
	ComputerName string
	UserName     string
}

// Resolver detects the reporting identity. Zero value uses the host environment.
type Resolver struct {
	Hostname    func() (string, error)
	CurrentUser func() (string, error)
}

// Resolve never fails: missing values fall back to defaultUserName, then DefaultUserName.
func (r Resolver) Resolve(defaultUserName string) Info {
	if defaultUserName == "" {
		defaultUserName = DefaultUserName
	}
	hostname := r.Hostname
	if hostname == nil {
		hostname = os.Hostname
	}
	currentUser := r.CurrentUser
	if currentUser == nil {
		currentUser = lookupUser
	}

	info := Info{ComputerName: defaultUserName, UserName: defaultUserName}
	if h, err := hostname(); err == nil && h != "" {
		info.ComputerName = h
	} else {
		logrus.WithError(err).Debug("hostname unavailable, using default")
	}
	if u, err := currentUser(); err == nil && u != "" {
		info.UserName = u
	} else {
		logrus.WithError(err).Debug("user name unavailable, using default")
	}
	return info
}

// Resolve uses the host environment.
func Resolve(defaultUserName string) Info {
	return Resolver{}.Resolve(defaultUserName)
}

func lookupUser() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, nil
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", errors.New("no user name in environment")
}

package shopcfg

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	// FileSource specifies to load a setting value from a file
	FileSource = "file://"
	// EnvSource specifies to load a setting value from an environment variable
	EnvSource = "env://"
)

// LoadValueWithSchema returns a setting value loaded from file:// or env://
// If value does not start with file:// or env://, then it is returned as is.
func LoadValueWithSchema(value string) (string, error) {
	if strings.HasPrefix(value, FileSource) {
		fn := strings.TrimPrefix(value, FileSource)
		f, err := ioutil.ReadFile(fn)
		if err != nil {
			return value, errors.WithStack(err)
		}
		value = strings.TrimSpace(string(f))
	} else if strings.HasPrefix(value, EnvSource) {
		env := strings.TrimPrefix(value, EnvSource)
		value = os.Getenv(env)
		if value == "" {
			return "", errors.Errorf("Environment variable %q is not set", env)
		}
	}

	return value, nil
}

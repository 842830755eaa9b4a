package vars

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

var envName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadFiles merges flat key/value files (YAML or JSON) into one environment
// map. Later files win. Keys must be valid environment variable names and
// values must be scalars; every offending entry is reported.
func LoadFiles(paths []string) (map[string]string, error) {
	out := map[string]string{}
	var result *multierror.Error
	for _, p := range paths {
		if p == "" {
			continue
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}

		var doc map[string]any
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		for _, k := range sortedKeys(doc) {
			if !envName.MatchString(k) {
				result = multierror.Append(result, fmt.Errorf("%s: %q is not a valid environment variable name", p, k))
				continue
			}
			switch v := doc[k].(type) {
			case string:
				out[k] = v
			case nil:
				out[k] = ""
			case map[string]any, []any:
				result = multierror.Append(result, fmt.Errorf("%s: value of %s must be a scalar", p, k))
			default:
				out[k] = fmt.Sprint(v)
			}
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// Environ appends env to base as KEY=value pairs in key order.
func Environ(base []string, env map[string]string) []string {
	out := append([]string(nil), base...)
	for _, k := range sortedKeys(env) {
		out = append(out, k+"="+env[k])
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

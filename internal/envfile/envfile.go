// Package envfile parses dotenv-style override files for the harness.
//
// The harness reads overrides from an optional .env file next to
// harness.toml; only keys in the AWH_ namespace are kept by the caller.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
)

// Parse reads .env content into a key-value map.
// content is the raw file content; returns parsed key/value pairs or an error.
func Parse(content string) (map[string]string, error) {
	env := make(map[string]string)
	if content == "" {
		return env, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if !ok {
			continue
		}
		env[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}

	return env, nil
}

// parseLine parses a single .env line and returns key/value when present.
// Blank lines and comments report ok=false with a nil error.
func parseLine(line string) (key string, value string, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "export "))

	idx := strings.Index(trimmed, "=")
	if idx < 0 {
		return "", "", false, errors.New(messages.EnvfileMissingEquals)
	}
	key = strings.TrimSpace(trimmed[:idx])
	if key == "" {
		return "", "", false, errors.New(messages.EnvfileMissingKey)
	}

	value = strings.TrimSpace(trimmed[idx+1:])
	value, err = unquote(value)
	if err != nil {
		return "", "", false, err
	}
	return key, value, true, nil
}

// unquote strips a matched pair of single or double quotes from value.
// Unquoted values are returned verbatim; a lone opening quote is an error.
func unquote(value string) (string, error) {
	if len(value) == 0 {
		return value, nil
	}
	quote := value[0]
	if quote != '"' && quote != '\'' {
		return value, nil
	}
	if len(value) < 2 || value[len(value)-1] != quote {
		return "", errors.New(messages.EnvfileUnbalancedQuote)
	}
	inner := value[1 : len(value)-1]
	if quote == '"' {
		inner = strings.ReplaceAll(inner, `\"`, `"`)
		inner = strings.ReplaceAll(inner, `\n`, "\n")
		inner = strings.ReplaceAll(inner, `\\`, `\`)
	}
	return inner, nil
}

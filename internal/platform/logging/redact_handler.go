package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// sensitiveFields are attribute keys whose values are always redacted.
var sensitiveFields = []string{
	"authorization",
	"cookie",
	"x-api-key",
	"token",
	"api_token",
	"password",
	"secret",
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// apiTokenPattern matches the 40-character hex personal API tokens issued by
// the task service, wherever they end up in a string value.
var apiTokenPattern = regexp.MustCompile(`\b[0-9a-f]{40}\b`)

// apiKeyInlinePattern matches inline "token=<value>" or "api_key: <value>".
var apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|api[_\-]?token|token)\s*[:=]\s*\S+`)

// newRedactAttr returns a masq-powered ReplaceAttr for slog.HandlerOptions.
// Known keys are redacted by name; the patterns catch credentials that leak
// into other values such as error messages or URLs.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveFields)+5)
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(apiTokenPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}

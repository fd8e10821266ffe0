package logging

import "strings"

const redacted = "[REDACTED]"

var sensitiveKeys = map[string]struct{}{
	"token":         {},
	"access":        {},
	"refresh":       {},
	"access_token":  {},
	"refresh_token": {},
	"refreshtoken":  {},
	"password":      {},
	"authorization": {},
	"passphrase":    {},
}

func isSensitive(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

// redact returns args with the value of every sensitive key masked. args is
// a key-value list; a trailing key without a value is kept as is.
func redact(args []any) []any {
	var out []any
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || !isSensitive(key) {
			continue
		}
		if out == nil {
			out = append([]any(nil), args...)
		}
		out[i+1] = redacted
	}
	if out == nil {
		return args
	}
	return out
}

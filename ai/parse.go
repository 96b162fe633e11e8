package ai

import (
	"encoding/json"
	"strings"

	"fitapi/logger"
	"fitapi/metrics"
)

// CleanResponse strips markdown code fences and trims the reply down to the
// outermost JSON object, which is the best the collaborator reliably emits.
func CleanResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start != -1 && end != -1 && end > start {
		response = response[start : end+1]
	}
	return response
}

// ParseJSONOrDefault best-effort extracts a JSON object of type T from free
// text. When extraction fails the call site's default is returned instead;
// advisory features never hard-fail on a malformed reply.
func ParseJSONOrDefault[T any](text string, def T) T {
	cleaned := CleanResponse(text)
	var v T
	if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
		metrics.IncAIParseFailure()
		logger.Warn("model reply not parseable, using default", err, logger.FieldKV("reply_len", len(text)))
		return def
	}
	return v
}

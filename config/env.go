package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/deepagents/bedrock-cli/types"
)

// Environment variable names recognized by Read.
const (
	RetryModeEnv          = "BEDROCK_RETRY_MODE"
	AWSRetryModeEnv       = "AWS_RETRY_MODE"
	MaxAttemptsEnv        = "BEDROCK_MAX_ATTEMPTS"
	AWSMaxAttemptsEnv     = "AWS_MAX_ATTEMPTS"
	MaxPoolConnectionsEnv = "BEDROCK_MAX_POOL_CONNECTIONS"
	RequestsPerSecondEnv  = "DEEPAGENTS_BEDROCK_RPS"
	MaxBucketSizeEnv      = "DEEPAGENTS_BEDROCK_BURST"
	TemperatureEnv        = "BEDROCK_TEMPERATURE"
	MaxTokensEnv          = "BEDROCK_MAX_TOKENS"
	TopPEnv               = "BEDROCK_TOP_P"
	TopKEnv               = "BEDROCK_TOP_K"
	StopSequencesEnv      = "BEDROCK_STOP"
	ThinkingEnv           = "BEDROCK_THINKING"
	ThinkingBudgetEnv     = "BEDROCK_THINKING_BUDGET"
)

const (
	defaultRetryMode          = "adaptive"
	defaultMaxAttempts        = 3
	defaultMaxPoolConnections = 10
	defaultMaxTokens          = 1024
	defaultThinkingBudget     = 4096
)

// Environment supplies variable lookups for the reader. Unset and blank
// variables are treated identically throughout, so Get returns "" for both.
type Environment interface {
	Get(key string) string
}

type osEnvironment struct{}

func (osEnvironment) Get(key string) string { return os.Getenv(key) }

// Reader resolves Bedrock configuration from an Environment. A fresh
// record is produced on every Read; nothing is cached between calls.
type Reader struct {
	env Environment
}

func NewReader() *Reader {
	return &Reader{env: osEnvironment{}}
}

func (r *Reader) WithEnvironment(env Environment) *Reader {
	r.env = env
	return r
}

// Read resolves every recognized variable into a configuration record.
// Malformed values degrade to the field default or to absent; Read never
// fails and never reports what it dropped.
func (r *Reader) Read() types.BedrockConfig {
	thinking := r.boolValue(ThinkingEnv)

	return types.BedrockConfig{
		RetryMode:          r.stringValue(RetryModeEnv, r.stringValue(AWSRetryModeEnv, defaultRetryMode)),
		MaxAttempts:        r.intValue(MaxAttemptsEnv, r.intValue(AWSMaxAttemptsEnv, defaultMaxAttempts)),
		MaxPoolConnections: r.intValue(MaxPoolConnectionsEnv, defaultMaxPoolConnections),
		RequestsPerSecond:  r.floatValue(RequestsPerSecondEnv),
		MaxBucketSize:      r.floatValue(MaxBucketSizeEnv),
		Temperature:        r.floatValue(TemperatureEnv),
		MaxTokens:          r.intValue(MaxTokensEnv, defaultMaxTokens),
		TopP:               r.floatValue(TopPEnv),
		TopK:               r.optionalIntValue(TopKEnv),
		StopSequences:      r.listValue(StopSequencesEnv),
		ThinkingEnabled:    thinking != nil && *thinking,
		ThinkingBudget:     r.intValue(ThinkingBudgetEnv, defaultThinkingBudget),
	}
}

func (r *Reader) stringValue(key, defaultValue string) string {
	value := strings.TrimSpace(r.env.Get(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func (r *Reader) intValue(key string, defaultValue int) int {
	value := strings.TrimSpace(r.env.Get(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (r *Reader) optionalIntValue(key string) *int {
	value := strings.TrimSpace(r.env.Get(key))
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func (r *Reader) floatValue(key string) *float64 {
	value := strings.TrimSpace(r.env.Get(key))
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

// listValue accepts either a JSON array of strings or a delimited list,
// split on "|" when present and "," otherwise. Empty parts are dropped.
func (r *Reader) listValue(key string) []string {
	value := strings.TrimSpace(r.env.Get(key))
	if value == "" {
		return nil
	}

	if strings.HasPrefix(value, "[") {
		var elements []interface{}
		if err := json.Unmarshal([]byte(value), &elements); err != nil {
			return nil
		}
		parts := make([]string, 0, len(elements))
		for _, element := range elements {
			part, ok := element.(string)
			if !ok {
				return nil
			}
			parts = append(parts, part)
		}
		return parts
	}

	separator := ","
	if strings.Contains(value, "|") {
		separator = "|"
	}

	var parts []string
	for _, part := range strings.Split(value, separator) {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	return parts
}

func (r *Reader) boolValue(key string) *bool {
	value := strings.ToLower(strings.TrimSpace(r.env.Get(key)))
	if value == "" {
		return nil
	}

	var result bool
	switch value {
	case "1", "true", "yes", "on", "enabled":
		result = true
	case "0", "false", "no", "off", "disabled":
		result = false
	default:
		return nil
	}

	return &result
}

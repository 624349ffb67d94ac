package types

// BedrockConfig is the environment-derived configuration for a Bedrock
// model client. Optional fields are nil when the corresponding variable
// is unset, blank, or malformed. The record is fully constructed by the
// reader and never mutated afterwards.
type BedrockConfig struct {
	RetryMode          string   `yaml:"retry_mode"`
	MaxAttempts        int      `yaml:"max_attempts"`
	MaxPoolConnections int      `yaml:"max_pool_connections"`
	RequestsPerSecond  *float64 `yaml:"requests_per_second,omitempty"`
	MaxBucketSize      *float64 `yaml:"max_bucket_size,omitempty"`
	Temperature        *float64 `yaml:"temperature,omitempty"`
	MaxTokens          int      `yaml:"max_tokens"`
	TopP               *float64 `yaml:"top_p,omitempty"`
	TopK               *int     `yaml:"top_k,omitempty"`
	StopSequences      []string `yaml:"stop_sequences,omitempty"`
	ThinkingEnabled    bool     `yaml:"thinking_enabled"`
	ThinkingBudget     int      `yaml:"thinking_budget"`
}

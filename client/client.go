package client

import (
	"context"
	"math"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/deepagents/bedrock-cli/config"
	"github.com/deepagents/bedrock-cli/types"
)

const (
	// DefaultModel is used when the caller does not pick a model.
	DefaultModel = "bedrock:us.anthropic.claude-sonnet-4-5-20250929-v1:0"

	modelPrefix         = "bedrock:"
	defaultTemperature  = 0.3
	thinkingTemperature = 1.0
)

// Client is a ready-to-invoke handle on a Bedrock chat model. It owns its
// transport, retryer, and optional rate limiter; the caller owns the handle
// after construction.
type Client struct {
	ModelID  string
	Config   types.BedrockConfig
	Sampling Sampling

	api         ConverseAPI
	limiter     *rate.Limiter
	extraFields map[string]interface{}
}

// Sampling holds the token-selection parameters after conflict resolution.
// A nil field was discarded or never configured.
type Sampling struct {
	Temperature *float64
	TopP        *float64
	TopK        *int
}

// New builds a model client from the process environment. The model name may
// carry a case-insensitive "bedrock:" scheme prefix. Construction errors from
// the AWS SDK propagate unchanged.
func New(ctx context.Context, modelName string) (*Client, error) {
	return NewWithConfig(ctx, modelName, config.NewReader().Read())
}

// NewWithConfig builds a model client from an already-resolved configuration
// record.
func NewWithConfig(ctx context.Context, modelName string, cfg types.BedrockConfig) (*Client, error) {
	modelID := NormalizeModelID(modelName)
	sampling := ResolveSampling(cfg)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRetryMode(retryMode(cfg.RetryMode)),
		awsconfig.WithRetryMaxAttempts(cfg.MaxAttempts),
		awsconfig.WithHTTPClient(httpClient(cfg.MaxPoolConnections)),
	)
	if err != nil {
		return nil, err
	}

	zap.S().Debugf("bedrock model %q: retry mode %q, max attempts %d, pool size %d",
		modelID, cfg.RetryMode, cfg.MaxAttempts, cfg.MaxPoolConnections)

	return &Client{
		ModelID:     modelID,
		Config:      cfg,
		Sampling:    sampling,
		api:         bedrockruntime.NewFromConfig(awsCfg),
		limiter:     NewRateLimiter(cfg),
		extraFields: ModelRequestFields(cfg, sampling),
	}, nil
}

// WithAPI replaces the underlying Bedrock runtime client.
func (c *Client) WithAPI(api ConverseAPI) *Client {
	c.api = api
	return c
}

// RateLimiter exposes the handle-owned limiter; nil when no
// requests-per-second limit is configured.
func (c *Client) RateLimiter() *rate.Limiter {
	return c.limiter
}

// NormalizeModelID strips a case-insensitive "bedrock:" scheme prefix,
// keeping the remainder as the backend model identifier.
func NormalizeModelID(modelName string) string {
	if strings.HasPrefix(strings.ToLower(modelName), modelPrefix) {
		return modelName[len(modelPrefix):]
	}
	return modelName
}

// ResolveSampling applies the conflict rules between temperature, top-p, and
// top-k: temperature defaults to 0.3 when neither temperature nor top-p is
// configured, temperature wins when both are, and thinking mode forces
// temperature to 1.0 and discards top-p and top-k.
func ResolveSampling(cfg types.BedrockConfig) Sampling {
	sampling := Sampling{
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		TopK:        cfg.TopK,
	}

	if sampling.Temperature == nil && sampling.TopP == nil {
		sampling.Temperature = aws.Float64(defaultTemperature)
	}
	if sampling.Temperature != nil && sampling.TopP != nil {
		sampling.TopP = nil
	}
	if cfg.ThinkingEnabled {
		sampling.Temperature = aws.Float64(thinkingTemperature)
		sampling.TopP = nil
		sampling.TopK = nil
	}

	return sampling
}

// NewRateLimiter builds the token bucket for the configured
// requests-per-second limit, or nil when no limit is configured. The burst
// capacity falls back to the steady-state rate itself.
func NewRateLimiter(cfg types.BedrockConfig) *rate.Limiter {
	if cfg.RequestsPerSecond == nil {
		return nil
	}

	burst := *cfg.RequestsPerSecond
	if cfg.MaxBucketSize != nil && *cfg.MaxBucketSize > 0 {
		burst = *cfg.MaxBucketSize
	}

	return rate.NewLimiter(rate.Limit(*cfg.RequestsPerSecond), int(math.Ceil(burst)))
}

// ModelRequestFields assembles the backend-specific extra parameters: the
// surviving top-p/top-k values and, with thinking mode on, the thinking
// descriptor carrying the token budget. Returns nil when there is nothing
// to send.
func ModelRequestFields(cfg types.BedrockConfig, sampling Sampling) map[string]interface{} {
	fields := map[string]interface{}{}

	if sampling.TopP != nil {
		fields["top_p"] = *sampling.TopP
	}
	if sampling.TopK != nil {
		fields["top_k"] = *sampling.TopK
	}
	if cfg.ThinkingEnabled {
		fields["thinking"] = map[string]interface{}{
			"type":          "enabled",
			"budget_tokens": cfg.ThinkingBudget,
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func retryMode(mode string) aws.RetryMode {
	parsed, err := aws.ParseRetryMode(mode)
	if err != nil {
		// Unknown modes, legacy included, degrade like any other
		// malformed configuration value.
		return aws.RetryModeAdaptive
	}
	return parsed
}

func httpClient(poolSize int) *awshttp.BuildableClient {
	return awshttp.NewBuildableClient().WithTransportOptions(func(tr *http.Transport) {
		tr.MaxIdleConns = poolSize
		tr.MaxIdleConnsPerHost = poolSize
	})
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

package client

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

const ErrEmptyResponse = "empty response"

// ConverseAPI is the slice of the Bedrock runtime client this package uses.
type ConverseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
	ConverseStream(ctx context.Context, params *bedrockruntime.ConverseStreamInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseStreamOutput, error)
}

var _ ConverseAPI = (*bedrockruntime.Client)(nil)

// Query sends a single prompt to the model and returns the generated text.
// The call blocks on the handle's rate limiter first, when one is configured.
func (c *Client) Query(ctx context.Context, input string) (string, error) {
	if err := c.wait(ctx); err != nil {
		return "", err
	}

	res, err := c.api.Converse(ctx, c.converseInput(input))
	if err != nil {
		return "", err
	}

	message, ok := res.Output.(*brtypes.ConverseOutputMemberMessage)
	if !ok {
		return "", errors.New(ErrEmptyResponse)
	}

	var builder strings.Builder
	for _, block := range message.Value.Content {
		if text, ok := block.(*brtypes.ContentBlockMemberText); ok {
			builder.WriteString(text.Value)
		}
	}

	return builder.String(), nil
}

// Stream sends a single prompt to the model and exposes the generated text
// as an io.Reader over the response event stream.
func (c *Client) Stream(ctx context.Context, input string) (io.Reader, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	res, err := c.api.ConverseStream(ctx, c.converseStreamInput(input))
	if err != nil {
		return nil, err
	}

	return &streamReader{stream: res.GetStream()}, nil
}

func (c *Client) converseInput(input string) *bedrockruntime.ConverseInput {
	in := &bedrockruntime.ConverseInput{
		ModelId:         aws.String(c.ModelID),
		Messages:        promptMessages(input),
		InferenceConfig: c.inferenceConfig(),
	}
	if c.extraFields != nil {
		in.AdditionalModelRequestFields = document.NewLazyDocument(c.extraFields)
	}
	return in
}

func (c *Client) converseStreamInput(input string) *bedrockruntime.ConverseStreamInput {
	in := &bedrockruntime.ConverseStreamInput{
		ModelId:         aws.String(c.ModelID),
		Messages:        promptMessages(input),
		InferenceConfig: c.inferenceConfig(),
	}
	if c.extraFields != nil {
		in.AdditionalModelRequestFields = document.NewLazyDocument(c.extraFields)
	}
	return in
}

func (c *Client) inferenceConfig() *brtypes.InferenceConfiguration {
	inference := &brtypes.InferenceConfiguration{
		MaxTokens:     aws.Int32(int32(c.Config.MaxTokens)),
		StopSequences: c.Config.StopSequences,
	}
	if c.Sampling.Temperature != nil {
		inference.Temperature = aws.Float32(float32(*c.Sampling.Temperature))
	}
	return inference
}

func promptMessages(input string) []brtypes.Message {
	return []brtypes.Message{{
		Role:    brtypes.ConversationRoleUser,
		Content: []brtypes.ContentBlock{&brtypes.ContentBlockMemberText{Value: input}},
	}}
}

// converseStream is the slice of bedrockruntime.ConverseStreamEventStream
// the reader consumes.
type converseStream interface {
	Events() <-chan brtypes.ConverseStreamOutput
	Close() error
	Err() error
}

type streamReader struct {
	stream converseStream
	buffer []byte
	done   bool
}

var _ io.Reader = (*streamReader)(nil)

func (s *streamReader) Read(p []byte) (int, error) {
	for len(s.buffer) == 0 {
		if s.done {
			return 0, io.EOF
		}

		event, ok := <-s.stream.Events()
		if !ok {
			s.done = true
			_ = s.stream.Close()
			if err := s.stream.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}

		delta, ok := event.(*brtypes.ConverseStreamOutputMemberContentBlockDelta)
		if !ok {
			continue
		}
		if text, ok := delta.Value.Delta.(*brtypes.ContentBlockDeltaMemberText); ok {
			s.buffer = append(s.buffer, text.Value...)
		}
	}

	n := copy(p, s.buffer)
	s.buffer = s.buffer[n:]
	return n, nil
}

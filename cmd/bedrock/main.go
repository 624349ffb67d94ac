package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/deepagents/bedrock-cli/client"
	"github.com/deepagents/bedrock-cli/config"
	"github.com/deepagents/bedrock-cli/internal"
)

const modelEnv = "BEDROCK_MODEL"

var (
	queryMode bool
	debugMode bool
	modelName string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bedrock [prompt]",
		Short: "Chat with models hosted on AWS Bedrock",
		Long: "A command line client for chat models hosted on AWS Bedrock, " +
			"configured entirely through environment variables.",
		RunE: run,
	}

	rootCmd.PersistentFlags().BoolVarP(&queryMode, "query", "q", false, "Use query mode instead of stream mode")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&modelName, "model", "m", "", "Model to use, with an optional bedrock: prefix")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the resolved Bedrock configuration",
		RunE:  showConfig,
	})

	viper.AutomaticEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	initLogging()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := client.New(ctx, resolveModel())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return interact(ctx, c)
	}

	return ask(ctx, c, strings.Join(args, " "))
}

func showConfig(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(config.NewReader().Read())
	if err != nil {
		return err
	}

	fmt.Print(string(data))

	return nil
}

// resolveModel prefers the --model flag, then the BEDROCK_MODEL environment
// variable, then the default model.
func resolveModel() string {
	if modelName != "" {
		return modelName
	}
	if fromEnv := viper.GetString(modelEnv); fromEnv != "" {
		return fromEnv
	}
	return client.DefaultModel
}

func ask(ctx context.Context, c *client.Client, prompt string) error {
	if queryMode {
		result, err := c.Query(ctx, prompt)
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	}

	r, err := c.Stream(ctx, prompt)
	if err != nil {
		return err
	}
	if _, err := io.Copy(os.Stdout, r); err != nil {
		return err
	}
	fmt.Println()

	return nil
}

func interact(ctx context.Context, c *client.Client) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := ask(ctx, c, line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func initLogging() {
	if debugMode {
		internal.SetAllowedLogLevels(zap.DebugLevel, zap.InfoLevel)
		return
	}
	internal.SetAllowedLogLevels(zap.InfoLevel)
}

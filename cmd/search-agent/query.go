// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/search-agent/internal/agent"
	"github.com/pdiddy/search-agent/internal/output"
	"github.com/pdiddy/search-agent/internal/provider"
	"github.com/pdiddy/search-agent/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [text...]",
	Short: "Process a query with web search",
	Long: `Query classifies the input as a simple question or a company research
request and answers accordingly. Positional arguments are joined into the
query text; with no arguments the query is read interactively from stdin.

Requires an OpenAI API key via the OPENAI_API_KEY environment variable,
a .env file, or .secrets/openai-api-key.`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("model", "gpt-4o", "base model identifier")
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	queryCmd.Flags().String("save", "", "save results to the specified file")
	queryCmd.Flags().Duration("timeout", 60*time.Second, "per-call timeout")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	apiKey := secretDefault("openai-api-key", os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Error: OPENAI_API_KEY is not set.")
		fmt.Fprintln(os.Stderr, "Set it with: export OPENAI_API_KEY='your-api-key', a .env file, or .secrets/openai-api-key")
		return fmt.Errorf("missing API key")
	}

	query := strings.Join(args, " ")
	if query == "" {
		fmt.Fprint(os.Stderr, "Enter your query: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading query: %w", err)
		}
		query = strings.TrimSpace(line)
	}
	if query == "" {
		return fmt.Errorf("query is empty")
	}

	cfg := queryConfig(cmd, apiKey)
	ag := agent.New(provider.NewOpenAI(cfg), cfg, os.Stderr)

	fmt.Fprintf(os.Stderr, "\nProcessing query: %s\n\n", query)
	result := ag.Process(context.Background(), query)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		if err := output.FormatJSON(result, os.Stdout); err != nil {
			return err
		}
	} else {
		output.FormatText(result, os.Stdout)
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := output.Save(result, savePath, jsonOutput); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "\nResults saved to %s\n", savePath)
	}

	return nil
}

// queryConfig assembles the agent configuration from flags, with config-file
// values filling in for flags left at their defaults.
func queryConfig(cmd *cobra.Command, apiKey string) types.AgentConfig {
	model, _ := cmd.Flags().GetString("model")
	if !cmd.Flags().Changed("model") && viper.IsSet("model") {
		model = viper.GetString("model")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if !cmd.Flags().Changed("timeout") && viper.IsSet("timeout") {
		timeout = viper.GetDuration("timeout")
	}

	return types.AgentConfig{
		AIConfig: types.AIConfig{
			Model:  model,
			APIKey: apiKey,
		},
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: "search-agent/" + version,
		},
	}
}

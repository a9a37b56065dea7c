package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saturnines/gqlclient/pkg/client"
	"github.com/saturnines/gqlclient/pkg/config"
)

type queryFlags struct {
	config  string
	text    string
	raw     bool
	noRaise bool
}

func newQueryCmd(root *rootFlags) *cobra.Command {
	f := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Send a document or query text to the configured endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg, err := config.NewDefaultClientLoader().Load(f.config)
			if err != nil {
				return err
			}
			c, err := client.FromConfig(cfg,
				client.WithLogger(logger),
				client.WithUserAgent("gqlq"),
				client.WithBuildOptions(root.buildOptions()...),
			)
			if err != nil {
				return err
			}

			var opts []client.QueryOption
			if f.noRaise {
				opts = append(opts, client.SuppressErrors())
			}

			result, err := run(cmd, root, f, c, opts)
			if err != nil {
				return err
			}
			if result == nil {
				logger.Info("no result")
				return nil
			}
			return printResult(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&f.config, "config", "c", "gqlq.yaml", "client configuration file")
	cmd.Flags().StringVarP(&f.text, "text", "t", "", "query text to send instead of a document; @file reads it from a file")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "print the response body verbatim")
	cmd.Flags().BoolVar(&f.noRaise, "no-raise", false, "treat transport failures as an empty result")
	return cmd
}

func run(cmd *cobra.Command, root *rootFlags, f *queryFlags, c *client.Client, opts []client.QueryOption) (any, error) {
	ctx := cmd.Context()

	if f.text != "" {
		text, err := readText(f.text)
		if err != nil {
			return nil, err
		}
		if f.raw {
			opts = append(opts, client.RawText())
		}
		return c.Query(ctx, text, opts...)
	}

	doc, err := root.loadDocument()
	if err != nil {
		return nil, err
	}
	if f.raw {
		text, err := c.DictToQuery(doc.Fields, doc.Args)
		if err != nil {
			return nil, err
		}
		return c.Query(ctx, text, append(opts, client.RawText())...)
	}
	return c.Execute(ctx, doc.Fields, doc.Args, opts...)
}

func readText(arg string) (string, error) {
	if len(arg) > 1 && arg[0] == '@' {
		b, err := os.ReadFile(arg[1:])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return arg, nil
}

func printResult(cmd *cobra.Command, result any) error {
	if s, ok := result.(string); ok {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

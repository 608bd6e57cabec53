package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/heartmarshall/excuse-backend/internal/app"
	"github.com/heartmarshall/excuse-backend/internal/domain"
	"github.com/heartmarshall/excuse-backend/internal/service/excuse"
)

type generateOptions struct {
	category string
	tone     string
	asJSON   bool
}

type generateOutput struct {
	Category      string `json:"category"`
	Tone          string `json:"tone"`
	Content       string `json:"content"`
	Believability int    `json:"believability"`
	Source        string `json:"source"`
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print one excuse without starting the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", string(domain.CategoryWork), "work, family, health or transport")
	cmd.Flags().StringVarP(&opts.tone, "tone", "t", string(domain.ToneFriendly), "friendly, urgent or subtle")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")
	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	cfg, err := root.load()
	if err != nil {
		return err
	}

	input := excuse.GenerateInput{
		Category: domain.Category(strings.ToLower(opts.category)),
		Tone:     domain.Tone(strings.ToLower(opts.tone)),
	}
	if err := input.Validate(); err != nil {
		return err
	}

	// Keep stdout clean for the excuse itself.
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

	gen, _, err := app.NewGenerator(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	res := gen.Generate(cmd.Context(), input.Category, input.Tone)
	out := generateOutput{
		Category:      input.Category.String(),
		Tone:          input.Tone.String(),
		Content:       res.Excuse,
		Believability: res.Believability,
		Source:        res.Source.String(),
	}

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return printExcuse(cmd.OutOrStdout(), out)
}

func printExcuse(w io.Writer, out generateOutput) error {
	title := cases.Title(language.English)
	_, err := fmt.Fprintf(w, "%s / %s (%s, %d/10)\n%s\n",
		title.String(out.Category),
		title.String(out.Tone),
		out.Source,
		out.Believability,
		out.Content,
	)
	return err
}

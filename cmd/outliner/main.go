// Command outliner reconstructs document outlines from positioned text.
//
// Given a single file it prints the result to stdout:
//
//	outliner document.json
//
// Given input and output directories it processes every supported file:
//
//	outliner --input dumps/ --output results/ --workers 8
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/batch"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
)

var (
	inputDir   string
	outputDir  string
	configPath string
	format     string
	workers    int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "outliner [file]",
	Short: "Reconstruct document outlines from positioned text",
	Long: `Outliner turns layout dumps and HTML files into structured outlines:
a title plus a list of leveled headings with page numbers.

Pass a single .json or .html file to print its outline to stdout, or use
--input and --output to process a whole directory concurrently.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputDir, "input", "i", "", "input directory to process")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for results")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with extraction settings")
	rootCmd.Flags().StringVarP(&format, "format", "f", batch.FormatJSON, "output format: json or markdown")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", batch.DefaultWorkers, "concurrent documents in directory mode")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if format != batch.FormatJSON && format != batch.FormatMarkdown {
		return fmt.Errorf("unknown format %q (want json or markdown)", format)
	}

	cfg := outline.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = batch.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}
	cfg.Logger = logger

	if len(args) == 1 {
		return runSingle(args[0], cfg)
	}

	if inputDir == "" || outputDir == "" {
		return fmt.Errorf("pass a file, or set both --input and --output")
	}

	p := batch.NewProcessor(batch.Options{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Workers:   workers,
		Format:    format,
		Config:    cfg,
		Logger:    logger,
	})

	summary, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}
	logger.Info("batch complete", "processed", summary.Processed, "failed", summary.Failed)
	return nil
}

func runSingle(filename string, cfg outline.Config) error {
	result, err := outliner.Open(filename).WithConfig(cfg).Extract()
	if err != nil {
		return err
	}
	fmt.Print(renderResult(result))
	return nil
}

func renderResult(result *model.ExtractionResult) string {
	if format == batch.FormatMarkdown {
		var sb strings.Builder
		sb.WriteString("# " + result.Title + "\n")
		if toc := result.MarkdownTOC(); toc != "" {
			sb.WriteString("\n" + toc)
		}
		return sb.String()
	}
	data, err := result.ToJSONIndent()
	if err != nil {
		return ""
	}
	return string(data) + "\n"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

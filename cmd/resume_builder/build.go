// Package main implements the resume_builder CLI tool for static HTML resume generation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/output"
	"github.com/jonathan/resume-builder/internal/rendering"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render a resume definition into an HTML file",
	Long:  "Loads a resume definition file, validates it, renders the HTML document, and writes it to the output path (default: <name>_resume.html).",
	RunE:  runBuild,
}

var (
	buildConfigPath   string
	buildInputFile    string
	buildOutputFile   string
	buildTemplateFile string
	buildVerbose      bool
)

func init() {
	// Config file flag (processed first)
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	buildCmd.Flags().StringVarP(&buildInputFile, "input", "i", "", "Path to resume definition file (required via flag or config)")
	buildCmd.Flags().StringVarP(&buildOutputFile, "output", "o", "", "Output HTML file name (default: <name>_resume.html)")
	buildCmd.Flags().StringVarP(&buildTemplateFile, "template", "t", "", "Path to a custom HTML template (default: built-in template)")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print a summary of the loaded resume and the output")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if buildConfigPath != "" {
		loadedCfg, err := config.LoadConfig(buildConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if buildVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", buildConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	flagCfg := config.Config{Verbose: cfg.Verbose}
	if cmd.Flags().Changed("input") {
		flagCfg.Input = buildInputFile
	}
	if cmd.Flags().Changed("output") {
		flagCfg.Output = buildOutputFile
	}
	if cmd.Flags().Changed("template") {
		flagCfg.Template = buildTemplateFile
	}
	if cmd.Flags().Changed("verbose") {
		flagCfg.Verbose = buildVerbose
	}

	// Step 3: Config file values fill whatever the flags left unset
	cfg = flagCfg.MergeWithDefaults(cfg)

	// Step 4: Validate required fields
	if cfg.Input == "" {
		return fmt.Errorf("--input is required (via flag or config)")
	}

	// Step 5: Load and validate the resume definition
	resume, err := document.Load(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to load resume definition: %w", err)
	}

	// Step 6: Resolve the template (built-in unless overridden)
	tmpl := ""
	if cfg.Template != "" {
		tmpl, err = rendering.LoadTemplate(cfg.Template)
		if err != nil {
			return err
		}
	}

	// Step 7: Render and save
	html, err := rendering.Render(resume, tmpl)
	if err != nil {
		return err
	}

	path, err := output.Save(resume, html, cfg.Output)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResume(resume)
		printer.PrintSaved(path, len(html))
	}

	_, _ = fmt.Fprintf(os.Stdout, "Resume written to %s\n", path)

	return nil
}

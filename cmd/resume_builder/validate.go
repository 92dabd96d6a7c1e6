// Package main implements the resume_builder CLI tool for static HTML resume generation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/document"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume definition file",
	Long:  "Checks a resume definition file against the JSON Schema and the document invariants without rendering anything.",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "input", "i", "", "Path to resume definition file (required)")

	if err := validateCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	resume, err := document.Load(validateInputFile)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Valid resume definition for %s\n", resume.ContactInfo.Name.Render())
	_, _ = fmt.Fprintf(os.Stdout, "Sections: %d\n", len(resume.Sections))

	return nil
}

// Package main provides the nestegg spreadsheet tooling CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkwon/nestegg/snapshot"
	"github.com/dkwon/nestegg/xlsx"
)

var (
	asJSON       bool
	outputPath   string
	categoryList []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nestegg",
		Short: "Work with nestegg fund-snapshot workbooks",
		Long: `nestegg inspects and produces the .xlsx workbooks the finance
tracker uses for bulk fund-snapshot import and export.`,
		SilenceUsage: true,
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [input.xlsx]",
		Short: "Decode a workbook's first worksheet and print it",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	dumpCmd.Flags().BoolVar(&asJSON, "json", false, "Print the grid as JSON instead of TSV")

	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Write the ready-to-fill snapshot template workbook",
		Args:  cobra.NoArgs,
		RunE:  runTemplate,
	}
	templateCmd.Flags().StringVarP(&outputPath, "output", "o", snapshot.TemplateFilename, "Output file path")

	importCmd := &cobra.Command{
		Use:   "import [input.xlsx]",
		Short: "Validate a workbook as snapshot rows and print the result",
		Long: `import runs the snapshot bulk-import mapping against a workbook and
prints the parsed snapshots as JSON. It validates what the backend
would accept without touching any data store.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
	importCmd.Flags().StringSliceVar(&categoryList, "categories", nil,
		"Known category names; rows naming anything else are rejected")

	rootCmd.AddCommand(dumpCmd, templateCmd, importCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	grid, err := decodeFile(args[0])
	if err != nil {
		return err
	}

	if asJSON {
		out, err := json.MarshalIndent(grid, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, row := range grid {
		fmt.Println(strings.Join(row, "\t"))
	}
	return nil
}

func runTemplate(cmd *cobra.Command, args []string) error {
	if err := os.WriteFile(outputPath, xlsx.Template(), 0644); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}
	fmt.Printf("wrote %s\n", outputPath)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	grid, err := decodeFile(args[0])
	if err != nil {
		return err
	}

	cats := make([]snapshot.Category, 0, len(categoryList))
	for i, name := range categoryList {
		cats = append(cats, snapshot.Category{ID: int64(i + 1), Name: name, Active: true})
	}

	snaps, err := snapshot.ImportRows(grid, cats)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	type snapshotOut struct {
		ReferenceDate string `json:"reference_date"`
		Category      string `json:"category,omitempty"`
		Amount        string `json:"amount"`
	}
	out := make([]snapshotOut, 0, len(snaps))
	for _, s := range snaps {
		o := snapshotOut{
			ReferenceDate: s.ReferenceDate.Format("2006-01-02"),
			Amount:        s.Amount.String(),
		}
		if s.CategoryID > 0 {
			o.Category = categoryList[s.CategoryID-1]
		}
		out = append(out, o)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func decodeFile(path string) (xlsx.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	grid, err := xlsx.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return grid, nil
}

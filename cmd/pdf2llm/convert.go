// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2llm/internal/convert"
	"github.com/pdiddy/pdf2llm/internal/extract"
	"github.com/pdiddy/pdf2llm/internal/pagenum"
	"github.com/pdiddy/pdf2llm/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [pdfs...]",
	Short: "Convert PDF files to cleaned text",
	Long: `Convert extracts text from PDF files, cleans and wraps it, labels
each page with its configured page number, and writes one text file per
document or per chapter.

Inputs are given as arguments or discovered with --input-dir. A file named
toc.pdf is rendered as a Markdown section/page table instead of page-marked
text. Per-file failures are reported and do not abort the batch; the exit
code is non-zero when any input fails.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := types.ConvertConfig{
		Backend:        types.ExtractionBackend(viper.GetString("backend")),
		OutputDir:      viper.GetString("output-dir"),
		Encoding:       viper.GetString("encoding"),
		WrapWidth:      viper.GetInt("wrap"),
		SplitChapters:  viper.GetBool("split-chapters"),
		ChapterPattern: viper.GetString("chapter-pattern"),
		ChapterRanges:  viper.GetString("chapters"),
		NumberingPath:  viper.GetString("numbering"),
		Force:          viper.GetBool("force"),
	}
	inputDir := viper.GetString("input-dir")

	if len(args) == 0 && inputDir == "" {
		return fmt.Errorf("no input: give PDF paths or --input-dir")
	}
	if len(args) > 0 && inputDir != "" {
		return fmt.Errorf("give PDF paths or --input-dir, not both")
	}

	ex, err := extract.New(cfg.Backend)
	if err != nil {
		return err
	}

	numbering, err := pagenum.Load(cfg.NumberingPath)
	if err != nil {
		return err
	}

	var result convert.BatchResult
	if inputDir != "" {
		result, err = convert.ConvertDir(ex, inputDir, cfg, numbering, os.Stdout)
		if err != nil {
			return err
		}
	} else {
		result = convert.ConvertBatch(ex, args, cfg, numbering, os.Stdout)
	}

	if result.HasFailures() {
		return fmt.Errorf("%d input(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	convertCmd.Flags().String("input-dir", "", "convert every PDF in this directory")
	convertCmd.Flags().String("output-dir", "txt_output", "directory for converted text files")
	convertCmd.Flags().String("backend", "native", "extraction backend: native, pdftotext, or markitdown")
	convertCmd.Flags().String("encoding", "utf-8", "output text encoding (IANA charset name)")
	convertCmd.Flags().Int("wrap", 80, "wrap column for paragraphs (0 disables)")
	convertCmd.Flags().Bool("split-chapters", false, "split output by detected chapter headings")
	convertCmd.Flags().String("chapter-pattern", "", "regexp matching the first line of chapter-start pages")
	convertCmd.Flags().String("chapters", "", "explicit chapter page ranges, e.g. \"1-12,13-40\"")
	convertCmd.Flags().String("numbering", "", "sections.yaml with per-document page numbering")
	convertCmd.Flags().Bool("force", false, "overwrite existing output files")

	viper.BindPFlags(convertCmd.Flags())

	rootCmd.AddCommand(convertCmd)
}

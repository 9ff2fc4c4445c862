package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var previewLines int

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVar(&previewLines, "lines", 5, "lines to preview per file")
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "List the data directory and preview each file",
	Long: `List the files in the configured data directory and print the first lines
of each text-based file, to get a quick sense of their structure before
running an analysis.

Example usage:
	cardex preview --data-dir data`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		entries, err := os.ReadDir(c.DataDir)
		if err != nil {
			return fmt.Errorf("read data dir %s: %w", c.DataDir, err)
		}
		var files []string
		for _, e := range entries {
			if !e.IsDir() {
				files = append(files, e.Name())
			}
		}
		sort.Strings(files)
		if len(files) == 0 {
			fmt.Printf("No files found in %s\n", c.DataDir)
			return nil
		}

		header := color.New(color.FgCyan, color.Bold)
		for _, name := range files {
			header.Printf("==== %s ====\n", name)
			if err := previewFile(filepath.Join(c.DataDir, name)); err != nil {
				// A single unreadable file should not abort the listing.
				fmt.Printf("could not preview: %v\n", err)
			}
			fmt.Println()
		}
		return nil
	},
}

func previewFile(path string) error {
	switch {
	case strings.HasSuffix(path, ".tar.bz2"), strings.HasSuffix(path, ".tar.gz"), strings.HasSuffix(path, ".zip"):
		fmt.Println("compressed archive, preview not available")
		return nil
	case strings.HasSuffix(path, ".tsv"), strings.HasSuffix(path, ".csv"),
		strings.HasSuffix(path, ".txt"), strings.HasSuffix(path, ".fasta"),
		strings.HasSuffix(path, ".json"):
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for i := 0; i < previewLines && sc.Scan(); i++ {
			fmt.Println(strings.TrimRight(sc.Text(), "\r\n"))
		}
		return sc.Err()
	default:
		fmt.Println("binary or unknown file type, preview not available")
		return nil
	}
}

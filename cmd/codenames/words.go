package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/codenames/internal/storage"
	"github.com/vovakirdan/codenames/internal/wordlist"
)

var flagListName string

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the word bank",
	Long: `The word bank keeps named word lists in a SQLite file so a board can
be dealt with --list instead of pointing at a text file each time.

Examples:
  codenames words import words.it.txt --name it
  codenames words list
  codenames words rm it`,
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store a word list file in the word bank",
	Args:  cobra.ExactArgs(1),
	Run:   runWordsImport,
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show stored word lists",
	Args:  cobra.NoArgs,
	Run:   runWordsList,
}

var wordsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a stored word list",
	Args:  cobra.ExactArgs(1),
	Run:   runWordsRm,
}

func init() {
	wordsImportCmd.Flags().StringVar(&flagListName, "name", "", "List name (default: file name without extension)")

	wordsCmd.AddCommand(wordsImportCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsRmCmd)
}

// listNameFor derives a list name from a file path: words.it.txt -> words.it
func listNameFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func runWordsImport(_ *cobra.Command, args []string) {
	cfg, logger := setup()
	path := args[0]

	words, err := wordlist.Load(path)
	if err != nil {
		logger.Fatal("cannot read word list", "error", err)
	}

	name := flagListName
	if name == "" {
		name = listNameFor(path)
	}

	store, err := storage.Open(cfg.DB)
	if err != nil {
		logger.Fatal("cannot open word bank", "error", err)
	}
	defer store.Close()

	source := path
	if abs, absErr := filepath.Abs(path); absErr == nil {
		source = abs
	}

	n, err := store.ImportList(name, source, words)
	if err != nil {
		store.Close()
		logger.Fatal("cannot import word list", "error", err)
	}
	fmt.Printf("Imported %d words into list %q\n", n, name)
}

func runWordsList(_ *cobra.Command, _ []string) {
	cfg, logger := setup()

	store, err := storage.Open(cfg.DB)
	if err != nil {
		logger.Fatal("cannot open word bank", "error", err)
	}
	defer store.Close()

	lists, err := store.Lists()
	if err != nil {
		store.Close()
		logger.Fatal("cannot read word bank", "error", err)
	}

	if len(lists) == 0 {
		fmt.Println("No word lists stored.")
		fmt.Println()
		fmt.Println("Run 'codenames words import <file>' to add one.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range lists {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-16s  %s\n", maxNameLen, "Name", "Words", "Imported", "Source")
	fmt.Printf("  %-*s  %-6s  %-16s  %s\n", maxNameLen, "----", "-----", "--------", "------")
	for _, l := range lists {
		fmt.Printf("  %-*s  %-6d  %-16s  %s\n",
			maxNameLen, l.Name, l.Count, l.ImportedAt.Format("2006-01-02 15:04"), l.Source)
	}

	fmt.Println()
	fmt.Println("Run 'codenames --list <name>' to deal from a list.")
}

func runWordsRm(_ *cobra.Command, args []string) {
	cfg, logger := setup()

	store, err := storage.Open(cfg.DB)
	if err != nil {
		logger.Fatal("cannot open word bank", "error", err)
	}
	defer store.Close()

	if err := store.DeleteList(args[0]); err != nil {
		store.Close()
		logger.Fatal("cannot delete word list", "error", err)
	}
	fmt.Printf("Deleted list %q\n", args[0])
}

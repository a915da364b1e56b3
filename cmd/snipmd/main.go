package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gubarz/snipmd/internal/app"
	"github.com/gubarz/snipmd/internal/config"
	"github.com/gubarz/snipmd/internal/logger"
	"github.com/gubarz/snipmd/internal/output"
	"github.com/gubarz/snipmd/internal/parser"
	"github.com/gubarz/snipmd/internal/ui"
)

var version = "0.1.0"

// logOutput receives diagnostics; stdout stays reserved for the snippet
var logOutput io.Writer = os.Stderr

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Build the snippet corpus from your notes",
	Long: `Walks the notes directory (or a single file), extracts every
paragraph, list, quote and code block with its heading path, and
replaces the corpus file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Show one random snippet",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

var hookCmd = &cobra.Command{
	Use:   "hook [shell]",
	Short: "Output a shell hook that shows a snippet in every new terminal",
	Long: `Outputs a script that can be appended to your shell startup file.

Usage:
  snipmd hook bash >> ~/.bashrc`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE:      runHook,
}

var rootCmd = &cobra.Command{
	Use:   "snipmd",
	Short: "Random snippets from your Markdown notes",
	Long: `Extracts quotable snippets from a tree of Markdown notes and
shows one at random, together with its heading path and source file.

Run "snipmd generate" once, then "snipmd" whenever you want a snippet.`,
	Args:         cobra.NoArgs,
	RunE:         runPick,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(generateCmd, pickCmd, hookCmd)

	rootCmd.PersistentFlags().StringP("notes", "n", "", "Notes directory or file")
	rootCmd.PersistentFlags().StringP("corpus", "f", "", "Corpus file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging (same as --log-level debug)")

	for _, cmd := range []*cobra.Command{rootCmd, pickCmd} {
		cmd.Flags().StringP("output", "o", "", "Output mode: print, copy")
		cmd.Flags().Bool("copy", false, "Copy snippet text (shorthand for -o copy)")
		cmd.Flags().BoolP("context", "c", false, "Show neighboring paragraphs")
		cmd.Flags().BoolP("browse", "b", false, "Browse snippets interactively")
	}

	viper.BindPFlag("notes", rootCmd.PersistentFlags().Lookup("notes"))
	viper.BindPFlag("corpus", rootCmd.PersistentFlags().Lookup("corpus"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		config.SetLogLevel("debug")
	}
	return logger.New(logger.Config{
		Level:  config.GetLogLevel(),
		Pretty: true,
		Output: logOutput,
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	if len(args) > 0 {
		config.SetNotesPath(args[0])
	}

	notes, err := filepath.Abs(config.GetNotesPath())
	if err != nil {
		return fmt.Errorf("error resolving path: %w", err)
	}
	corpusPath := config.GetCorpusPath()

	start := time.Now()
	c, err := app.Generate(notes, corpusPath, log)
	if errors.Is(err, parser.ErrNoSnippets) {
		fmt.Fprintln(os.Stderr, ui.NoSnippetsMessage)
		return fmt.Errorf("nothing to write from %s", notes)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d snippets to %s in %v\n", len(c), corpusPath, time.Since(start).Round(time.Millisecond))
	return nil
}

func runPick(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	// Handle output mode flags
	if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput(string(output.ModeCopy))
	} else if o, _ := cmd.Flags().GetString("output"); o != "" {
		config.SetOutput(o)
	}
	if showContext, _ := cmd.Flags().GetBool("context"); showContext {
		config.SetShowContext(true)
	}
	ui.RefreshStyles()

	corpusPath := config.GetCorpusPath()
	log.Debug().Str("corpus", corpusPath).Msg("loading corpus")

	if browse, _ := cmd.Flags().GetBool("browse"); browse {
		c, err := app.Load(corpusPath)
		if err != nil {
			return fmt.Errorf("load corpus: %w (run \"snipmd generate\" first)", err)
		}
		log.Debug().Int("snippets", len(c)).Msg("starting browser")
		return ui.RunBrowse(c, output.SystemClipboard(), config.GetShowContext())
	}

	s, err := app.Pick(corpusPath)
	if err != nil {
		return fmt.Errorf("pick snippet: %w (run \"snipmd generate\" first)", err)
	}
	log.Debug().Str("file", s.File).Strs("header", s.Header).Msg("picked snippet")

	rendered := ui.Render(s, config.GetShowContext())
	return output.New(os.Stdout).Emit(output.Mode(config.GetOutput()), s, rendered)
}

func runHook(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "bash", "zsh":
		fmt.Print(posixHook())
	case "fish":
		fmt.Print(fishHook())
	default:
		return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", args[0])
	}
	return nil
}

func posixHook() string {
	return `
# snipmd: show a random note snippet in every new terminal
if command -v snipmd >/dev/null 2>&1 && [ -t 1 ]; then
   snipmd pick 2>/dev/null
fi
`
}

func fishHook() string {
	return `
# snipmd: show a random note snippet in every new terminal
if status is-interactive; and command -q snipmd
   snipmd pick 2>/dev/null
end
`
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

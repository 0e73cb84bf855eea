// Package cmd implements the toolkit command line.
package cmd

import (
	"context"
	"strings"
	"unicode"

	"github.com/charmbracelet/fang"
	"github.com/kernel/chat-toolkit/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cfg holds defaults loaded before any subcommand runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "toolkit",
	Short: "Build and inspect deep links that pre-fill chat prompts",
	Long: `Build and inspect the URL fragments that pre-fill (and optionally submit)
a prompt on ChatGPT, Gemini, Claude, Perplexity, Phind and Groq.

A deep link carries its parameters after '#':

  https://chatgpt.com/#autoSubmit=1&tool=image&prompt=a%20watercolor%20fox

Supported parameters:
  prompt       The prompt text. Always the last parameter.
  autoSubmit   Submit the prompt after filling it ("1" or "true").
  pasteImage   Paste the clipboard image into the prompt ("1" or "true").
  tool         Site-specific tool to select first (e.g. "image").

Defaults can be set in a .env file or the environment:
  TOOLKIT_SITE          Default site for 'toolkit link'
  TOOLKIT_AUTO_SUBMIT   Default for --auto-submit
  TOOLKIT_DEBUG         Enable debug output`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		loaded, err := config.Load(envFile)
		if err != nil {
			return err
		}
		cfg = loaded

		debug, _ := cmd.Flags().GetBool("debug")
		if debug || cfg.Debug {
			pterm.EnableDebugMessages()
		}
		pterm.Debug.Printf("Loaded config (env file %s): site=%q autoSubmit=%t\n", envFile, cfg.Site, cfg.AutoSubmit)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "Path to a .env file with TOOLKIT_* defaults")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(sitesCmd)
}

// Execute runs the root command with fang's help and error rendering.
func Execute(ctx context.Context, version string) error {
	return fang.Execute(ctx, rootCmd,
		fang.WithVersion(version),
		fang.WithoutManpage(),
	)
}

// normalizeFlagName lets flags be spelled like the fragment parameters, so
// --autoSubmit and --auto_submit both mean --auto-submit.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	var b strings.Builder
	prevLower := false
	for _, r := range name {
		switch {
		case r == '_':
			b.WriteByte('-')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return pflag.NormalizedName(b.String())
}

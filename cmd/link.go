package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kernel/chat-toolkit/internal/sites"
	"github.com/kernel/chat-toolkit/pkg/deeplink"
	"github.com/kernel/chat-toolkit/pkg/util"
	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link [prompt...]",
	Short: "Build a deep link that pre-fills a prompt",
	Long: `Build a URL that opens a chat site with the prompt already filled in.

The prompt can be provided as:
- Command line arguments
- From stdin (piped input)
- From a file (using --file)

Use --base64 for prompts with significant leading whitespace or blank lines;
the payload is decoded verbatim instead of being normalized, and file or stdin
input keeps its indentation. Prompts under 19 bytes are too short for a
Base64 payload and are sent as plain text.`,
	Example: `  # Pre-fill and submit a prompt on ChatGPT
  toolkit link --auto-submit "Explain goroutines in one paragraph"

  # Ask Claude, reading the prompt from a file
  toolkit link --site claude -f prompt.txt

  # Generate an image and open the link right away
  toolkit link --tool image --auto-submit --open "a watercolor fox"

  # Pipe a prompt and output JSON
  cat prompt.md | toolkit link --base64 -o json`,
	Args: cobra.ArbitraryArgs,
	RunE: runLink,
}

func init() {
	linkCmd.Flags().StringP("site", "s", "", "Target site ID (see 'toolkit sites'); defaults to TOOLKIT_SITE or "+sites.DefaultSiteID)
	linkCmd.Flags().StringP("file", "f", "", "Read prompt from file")
	linkCmd.Flags().Bool("auto-submit", false, "Submit the prompt after filling it")
	linkCmd.Flags().Bool("paste-image", false, "Paste the clipboard image into the prompt")
	linkCmd.Flags().String("tool", "", "Tool to select before filling (e.g. image)")
	linkCmd.Flags().Bool("base64", false, "Encode the prompt as a Base64-Unicode payload")
	linkCmd.Flags().Bool("open", false, "Open the link in the default browser")
	linkCmd.Flags().StringP("output", "o", "", "Output format (json)")

	_ = linkCmd.RegisterFlagCompletionFunc("site", completeSiteIDs)
}

// LinkResponse represents the JSON output of the link command.
type LinkResponse struct {
	Site    string `json:"site"`
	URL     string `json:"url"`
	Warning string `json:"warning,omitempty"`
}

func runLink(cmd *cobra.Command, args []string) error {
	siteID, _ := cmd.Flags().GetString("site")
	filePath, _ := cmd.Flags().GetString("file")
	autoSubmit, _ := cmd.Flags().GetBool("auto-submit")
	pasteImage, _ := cmd.Flags().GetBool("paste-image")
	tool, _ := cmd.Flags().GetString("tool")
	useBase64, _ := cmd.Flags().GetBool("base64")
	openLink, _ := cmd.Flags().GetBool("open")
	output, _ := cmd.Flags().GetString("output")

	if siteID == "" {
		siteID = cfg.Site
	}
	if !cmd.Flags().Changed("auto-submit") {
		autoSubmit = cfg.AutoSubmit
	}

	var stdin io.Reader
	if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		stdin = os.Stdin
	}
	prompt, err := readPrompt(args, filePath, stdin, useBase64)
	if err != nil {
		return err
	}

	resp, err := buildLink(siteID, prompt, deeplink.Options{
		AutoSubmit: autoSubmit,
		PasteImage: pasteImage,
		Tool:       tool,
		Base64:     useBase64,
	})
	if err != nil {
		return err
	}

	if output == "json" {
		if err := util.PrintPrettyJSON(cmd.OutOrStdout(), resp); err != nil {
			return err
		}
	} else {
		if resp.Warning != "" {
			pterm.Warning.Println(resp.Warning)
		}
		pterm.Success.Printf("Deep link for %s:\n", resp.Site)
		fmt.Fprintln(cmd.OutOrStdout(), resp.URL)
	}

	if openLink {
		pterm.Debug.Printf("Opening %s\n", resp.URL)
		if err := browser.OpenURL(resp.URL); err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}
	}
	return nil
}

// readPrompt takes the prompt from args, then filePath, then stdin (nil when
// stdin is a terminal). File and stdin content is trimmed unless verbatim is
// set, in which case only trailing line breaks are dropped.
func readPrompt(args []string, filePath string, stdin io.Reader, verbatim bool) (string, error) {
	var prompt string
	switch {
	case len(args) > 0:
		prompt = strings.Join(args, " ")
	case filePath != "":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		prompt = trimPrompt(string(content), verbatim)
	case stdin != nil:
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		prompt = trimPrompt(string(content), verbatim)
	}

	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("no prompt provided. Provide a prompt as arguments, via stdin, or with --file")
	}
	return prompt, nil
}

func trimPrompt(s string, verbatim bool) string {
	if verbatim {
		return strings.TrimRight(s, "\r\n")
	}
	return strings.TrimSpace(s)
}

func buildLink(siteID, prompt string, opts deeplink.Options) (LinkResponse, error) {
	if siteID == "" {
		siteID = sites.DefaultSiteID
	}
	site, ok := sites.Lookup(siteID)
	if !ok {
		return LinkResponse{}, fmt.Errorf("unknown site %q (available: %s)", siteID, strings.Join(sites.IDs(), ", "))
	}

	url, err := deeplink.Build(site.BaseURL, prompt, opts)
	if err != nil {
		return LinkResponse{}, fmt.Errorf("failed to build link: %w", err)
	}

	resp := LinkResponse{Site: site.ID, URL: url}
	if opts.Tool != "" && !site.SupportsTool(opts.Tool) {
		resp.Warning = fmt.Sprintf("%s does not support tool %q; the parameter will be ignored", site.Name, opts.Tool)
	}
	return resp, nil
}

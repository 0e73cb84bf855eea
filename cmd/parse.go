package cmd

import (
	"fmt"
	"strings"

	"github.com/kernel/chat-toolkit/internal/adapter"
	"github.com/kernel/chat-toolkit/internal/sites"
	"github.com/kernel/chat-toolkit/pkg/deeplink"
	"github.com/kernel/chat-toolkit/pkg/toolkithash"
	"github.com/kernel/chat-toolkit/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <url|fragment>",
	Short: "Parse a deep link the way the browser extension does",
	Long: `Parse a deep link, or a bare fragment, into the prompt and flags a site
adapter would receive.

For a full URL, location.search is taken from the URL's query string, which
selects how the prompt is decoded: without a query string, reserved characters
such as '&' and '=' are treated as part of the prompt. Use --search to override
it when passing a bare fragment.`,
	Example: `  # Parse a full deep link
  toolkit parse 'https://chatgpt.com/#autoSubmit=1&prompt=I+B%20=%20C&D'

  # Parse a fragment as if the page had a query string
  toolkit parse 'autoSubmit=false&prompt=I%2BB+%3D+C%26D' --search '?home=true'

  # Show what a site adapter would do
  toolkit parse 'https://chatgpt.com/#tool=image&prompt=a%20fox' --plan

  # Output as JSON for scripting
  toolkit parse '#prompt=hello' -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("search", "", "location.search to assume (e.g. \"?home=true\"); inferred from the URL when omitted")
	parseCmd.Flags().Bool("plan", false, "Also list the steps a site adapter would perform")
	parseCmd.Flags().StringP("output", "o", "", "Output format (json)")
}

// ParseResult represents the output of the parse command.
type ParseResult struct {
	Site     string             `json:"site,omitempty"`
	Hash     string             `json:"hash"`
	Search   string             `json:"search"`
	Params   toolkithash.Params `json:"params"`
	Steps    []adapter.Step     `json:"steps,omitempty"`
	Warnings []string           `json:"warnings,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	plan, _ := cmd.Flags().GetBool("plan")
	output, _ := cmd.Flags().GetString("output")

	var searchOverride *string
	if cmd.Flags().Changed("search") {
		searchOverride = &search
	}

	result, err := buildParseResult(args[0], searchOverride, plan)
	if err != nil {
		return err
	}

	if output == "json" {
		return util.PrintPrettyJSON(cmd.OutOrStdout(), result)
	}

	printParseResult(result, plan)
	return nil
}

// resolveTarget splits arg into the hash and search a page would observe.
// Arguments without a scheme are treated as a bare fragment.
func resolveTarget(arg string, searchOverride *string) (hash, search string, site sites.Site, ok bool) {
	if strings.Contains(arg, "://") {
		hash, search = deeplink.Split(arg)
		site, ok = sites.Detect(arg)
	} else {
		hash = strings.TrimPrefix(arg, "#")
	}
	if searchOverride != nil {
		search = *searchOverride
	}
	return hash, search, site, ok
}

func buildParseResult(arg string, searchOverride *string, plan bool) (ParseResult, error) {
	hash, search, site, detected := resolveTarget(arg, searchOverride)
	pterm.Debug.Printf("Parsing hash=%q search=%q\n", hash, search)

	result := ParseResult{Hash: hash, Search: search}
	if detected {
		result.Site = site.ID
	}

	if plan {
		rec := &adapter.Recorder{}
		params, err := adapter.Consume(rec, hash, search)
		if err != nil {
			return ParseResult{}, err
		}
		result.Params = params
		result.Steps = rec.Steps
	} else {
		params, err := toolkithash.Parse(hash, search)
		if err != nil {
			return ParseResult{}, fmt.Errorf("failed to parse fragment: %w", err)
		}
		result.Params = params
	}

	if detected && result.Params.Tool != "" && !site.SupportsTool(result.Params.Tool) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s does not support tool %q", site.Name, result.Params.Tool))
	}
	return result, nil
}

func printParseResult(result ParseResult, plan bool) {
	data := pterm.TableData{
		{"Field", "Value"},
		{"Site", util.OrDash(result.Site)},
		{"Search", util.OrDash(result.Search)},
		{"Prompt", util.OrDash(util.Preview(result.Params.Prompt, 60))},
		{"Auto submit", util.YesNo(result.Params.AutoSubmit)},
		{"Paste image", util.YesNo(result.Params.PasteImage)},
		{"Tool", util.OrDash(result.Params.Tool)},
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	for _, w := range result.Warnings {
		pterm.Warning.Println(w)
	}

	if !result.Params.HasPrompt() {
		pterm.Warning.Println("No prompt found; a site adapter would leave the page untouched.")
		return
	}

	pterm.Println()
	pterm.Success.Println("Prompt:")
	pterm.Println(result.Params.Prompt)

	if plan {
		pterm.Println()
		pterm.Info.Println("Adapter steps:")
		for i, step := range result.Steps {
			if step.Detail != "" && step.Action != adapter.ActionFill {
				pterm.Printf("  %d. %s %s\n", i+1, step.Action, step.Detail)
			} else {
				pterm.Printf("  %d. %s\n", i+1, step.Action)
			}
		}
	}
}

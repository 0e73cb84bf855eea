package cmd

import (
	"github.com/kernel/chat-toolkit/internal/sites"
	"github.com/kernel/chat-toolkit/pkg/deeplink"
	"github.com/kernel/chat-toolkit/pkg/util"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List supported chat sites and their search templates",
	Long: `List the chat sites toolkit can link to.

Each site has an address-bar search template. Add it as a custom search
engine in your browser to send whatever you type straight to the site.`,
	Args: cobra.NoArgs,
	RunE: runSites,
}

func init() {
	sitesCmd.Flags().Bool("auto-submit", false, "Generate search templates that submit immediately")
	sitesCmd.Flags().StringP("output", "o", "", "Output format (json)")
}

type siteEntry struct {
	sites.Site
	SearchTemplate string `json:"searchTemplate"`
}

func runSites(cmd *cobra.Command, args []string) error {
	autoSubmit, _ := cmd.Flags().GetBool("auto-submit")
	output, _ := cmd.Flags().GetString("output")

	entries := listSiteEntries(autoSubmit)
	if output == "json" {
		return util.PrintPrettyJSON(cmd.OutOrStdout(), entries)
	}

	data := pterm.TableData{{"ID", "Name", "Hosts", "Tools", "Search template"}}
	for _, e := range entries {
		data = append(data, []string{e.ID, e.Name, util.JoinOrDash(e.Hosts...), util.JoinOrDash(e.Tools...), e.SearchTemplate})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func listSiteEntries(autoSubmit bool) []siteEntry {
	return lo.Map(sites.All(), func(s sites.Site, _ int) siteEntry {
		return siteEntry{Site: s, SearchTemplate: deeplink.SearchTemplate(s.BaseURL, autoSubmit)}
	})
}

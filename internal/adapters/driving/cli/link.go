package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

var (
	linkFlags queryFlags
	linkBase  string
)

var linkCmd = &cobra.Command{
	Use:   "link [text]",
	Short: "Print a share link for a query",
	Long: `Prints a link that reopens the query in the published browser.
The base URL comes from --base or the share.base_url setting; without
one, only the query string is printed.`,
	RunE: runLink,
}

func init() {
	linkFlags.bind(linkCmd, true)
	linkCmd.Flags().StringVar(&linkBase, "base", "", "browser page URL (default share.base_url)")
	rootCmd.AddCommand(linkCmd)
}

func runLink(cmd *cobra.Command, args []string) error {
	state, err := linkFlags.state(cmd.Context(), cmd, args)
	if err != nil {
		return err
	}

	base := linkBase
	if !cmd.Flags().Changed("base") {
		base = currentSettings().Share.BaseURL
	}

	cmd.Println(shareLink(state, base))
	return nil
}

// shareLink returns the share link, or "?query" when base is empty.
func shareLink(state domain.QueryState, base string) string {
	if base != "" {
		return state.ShareLink(base)
	}
	if q := state.Encode(); q != "" {
		return "?" + q
	}
	return "?"
}

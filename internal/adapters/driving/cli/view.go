package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

var viewSaveFlags queryFlags

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Manage saved views",
	Long: `Saved views keep a named query between sessions. Use a saved view
with --view on search, stats, export and link.`,
}

var viewSaveCmd = &cobra.Command{
	Use:   "save [name] [text]",
	Short: "Save a query under a name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runViewSave,
}

var viewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved views",
	Args:  cobra.NoArgs,
	RunE:  runViewList,
}

var viewShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a saved view and its share link",
	Args:  cobra.ExactArgs(1),
	RunE:  runViewShow,
}

var viewDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a saved view",
	Args:  cobra.ExactArgs(1),
	RunE:  runViewDelete,
}

func init() {
	viewSaveFlags.bind(viewSaveCmd, true)
	viewCmd.AddCommand(viewSaveCmd)
	viewCmd.AddCommand(viewListCmd)
	viewCmd.AddCommand(viewShowCmd)
	viewCmd.AddCommand(viewDeleteCmd)
	rootCmd.AddCommand(viewCmd)
}

func runViewSave(cmd *cobra.Command, args []string) error {
	if viewService == nil {
		return errors.New("view service not configured")
	}

	ctx := cmd.Context()
	state, err := viewSaveFlags.state(ctx, cmd, args[1:])
	if err != nil {
		return err
	}

	view, err := viewService.Save(ctx, args[0], state)
	if err != nil {
		return fmt.Errorf("failed to save view: %w", err)
	}

	cmd.Printf("Saved view %q\n", view.Name)
	return nil
}

func runViewList(cmd *cobra.Command, _ []string) error {
	if viewService == nil {
		return errors.New("view service not configured")
	}

	views, err := viewService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list views: %w", err)
	}

	return newOutputFormatter(cmd.OutOrStdout()).write(views, func(w io.Writer) error {
		if len(views) == 0 {
			_, err := fmt.Fprintln(w, "No saved views.")
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tQUERY\tSAVED")
		for _, v := range views {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Name, shareLink(v.Query, ""), humanize.Time(v.CreatedAt))
		}
		return tw.Flush()
	})
}

func runViewShow(cmd *cobra.Command, args []string) error {
	if viewService == nil {
		return errors.New("view service not configured")
	}

	view, err := viewService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("view %q: %w", args[0], err)
	}

	return newOutputFormatter(cmd.OutOrStdout()).write(view, func(w io.Writer) error {
		return writeView(w, view, currentSettings().Share.BaseURL)
	})
}

func writeView(w io.Writer, view *domain.SavedView, base string) error {
	q := view.Query
	fmt.Fprintf(w, "Name:    %s\n", view.Name)
	fmt.Fprintf(w, "Search:  %s\n", orDash(q.SearchText))
	fmt.Fprintf(w, "Type:    %s\n", orDash(q.Type))
	fmt.Fprintf(w, "Status:  %s\n", orDash(q.Status))
	fmt.Fprintf(w, "From:    %s\n", orDash(domain.FormatISODate(q.From)))
	fmt.Fprintf(w, "To:      %s\n", orDash(domain.FormatISODate(q.To)))
	fmt.Fprintf(w, "Sort:    %s\n", q.Sort.Description())
	fmt.Fprintf(w, "Link:    %s\n", shareLink(q, base))
	return nil
}

func runViewDelete(cmd *cobra.Command, args []string) error {
	if viewService == nil {
		return errors.New("view service not configured")
	}

	if err := viewService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete view: %w", err)
	}

	cmd.Printf("Deleted view %q\n", args[0])
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/statedemo/internal/content"
)

func newCompareCmd(app *AppContext) *cobra.Command {
	width := 80

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Print the comparison of both approaches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.compare")
			if width < 20 {
				return fmt.Errorf("width must be at least 20, got %d", width)
			}
			cmp, err := content.Default()
			if err != nil {
				logger.Error(ctx, "comparison unavailable", "error", err)
				return err
			}
			logger.Debug(ctx, "rendering comparison", "sections", len(cmp.Sections), "width", width)
			_, err = fmt.Fprint(cmd.OutOrStdout(), cmp.PlainText(width))
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", width, "Wrap text at this many columns")

	return cmd
}

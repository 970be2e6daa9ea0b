package main

import (
	"fmt"

	"github.com/janekbaraniewski/ecomdash/internal/insights"
	"github.com/janekbaraniewski/ecomdash/internal/tui"
	"github.com/spf13/cobra"
)

func newRenderCommand(themeFlag *string) *cobra.Command {
	var (
		insightRaw string
		top        int
		width      int
		height     int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one insight panel to stdout and exit",
		Example: `  ecomdash render --insight products --top 3
  ecomdash render -i customers -w 120`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(*themeFlag, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			in, err := insights.Parse(insightRaw)
			if err != nil {
				return err
			}
			state := tui.Reduce(tui.DefaultState(), tui.SelectInsight{Insight: in})
			if cmd.Flags().Changed("top") {
				if !in.HasTopN() {
					return fmt.Errorf("--top applies only to products and customers, not %s", in)
				}
				state = tui.Reduce(state, tui.SetTopN{Insight: in, N: top})
			}

			if height <= 0 {
				height = rt.cfg.UI.ChartHeight
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSnapshot(state, width, height))
			return err
		},
	}

	cmd.Flags().StringVarP(&insightRaw, "insight", "i", string(insights.Default()),
		"insight to render: order_value, categories, products, customers (or 1-4)")
	cmd.Flags().IntVarP(&top, "top", "n", insights.DefaultTopN, "number of rows for products/customers, clamped to the dataset")
	cmd.Flags().IntVarP(&width, "width", "w", 100, "output width in columns")
	cmd.Flags().IntVar(&height, "height", 0, "bar chart plot height in rows (default from config)")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout [scene.toml]",
		Short: "Print the computed slot of every item in a scene",
		Long: `Print the computed slot of every item in a scene.

Slots are top-left positions in container coordinates. Grid layouts pin
every item to the column width, so the printed width may differ from the
scene's.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			scene, err := loadScene(args[0])
			if err != nil {
				return err
			}
			c, err := scene.build()
			if err != nil {
				return fmt.Errorf("build container: %w", err)
			}
			if _, ok := c.Layout(); !ok {
				return fmt.Errorf("layout %s: not every item could be measured", args[0])
			}
			logger.Debug("layout computed", "items", c.Len(), "kind", scene.Config.Layout.Kind)

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, styleTitle.Render(scene.Config.Layout.Kind.String()+" layout"))
			fmt.Fprintln(w, slotTable(c, nil))
			printSize(w, c)
			return nil
		},
	}
}

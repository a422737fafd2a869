package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/grindlemire/go-sortable"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "simulate [scene.toml]",
		Short: "Replay the scripted steps of a scene",
		Long: `Replay the scripted steps of a scene and print the resulting order.

Waits advance the container one frame at a time at the given frame rate, so
activation and drop animations run as they would on screen. Phase
transitions and order changes are logged as they happen.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := loadScene(args[0])
			if err != nil {
				return err
			}
			if fps < 1 {
				return fmt.Errorf("fps must be positive, got %d", fps)
			}
			return simulate(cmd.Context(), cmd.OutOrStdout(), scene, time.Second/time.Duration(fps))
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 60, "frames per second used for waits")
	return cmd
}

// simulate replays the scene and prints the final order.
func simulate(ctx context.Context, w io.Writer, scene *Scene, frame time.Duration) error {
	c, err := replay(ctx, scene, frame)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, styleTitle.Render("final order"))
	fmt.Fprintln(w, slotTable(c, scene.Keys()))
	printSize(w, c)
	return nil
}

// replay runs the scene script against a fresh container.
func replay(ctx context.Context, scene *Scene, frame time.Duration) (*sortable.Container, error) {
	logger := loggerFromContext(ctx)
	c, err := scene.build()
	if err != nil {
		return nil, fmt.Errorf("build container: %w", err)
	}

	c.WatchPhase(func(p sortable.Phase) {
		key, _ := c.TouchedKey()
		logger.Debug("phase", "phase", p, "key", key)
	})

	last := c.Order()
	for i, st := range scene.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := runStep(c, scene, st, frame); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if order := c.Order(); !slices.Equal(order, last) {
			key, _ := c.ActiveKey()
			logger.Info("order changed", "step", i, "key", key, "order", order)
			last = order
		}
		logStep(logger, c, i, st)
	}
	return c, nil
}

func runStep(c *sortable.Container, scene *Scene, st Step, frame time.Duration) error {
	switch st.Action {
	case ActionWait:
		for left := st.For; left > 0; left -= frame {
			c.Advance(min(frame, left))
		}
		return nil
	case ActionUp:
		c.Dispatch(sortable.TouchEvent{Kind: sortable.TouchUp})
		return nil
	case ActionCancel:
		c.Dispatch(sortable.TouchEvent{Kind: sortable.TouchCancel})
		return nil
	}

	p, err := scene.point(c, st)
	if err != nil {
		return err
	}
	kind := sortable.TouchMove
	if st.Action == ActionDown {
		kind = sortable.TouchDown
	}
	c.Dispatch(sortable.TouchEvent{Kind: kind, Key: st.Key, Point: p})
	return nil
}

func logStep(logger *log.Logger, c *sortable.Container, i int, st Step) {
	if logger.GetLevel() > log.DebugLevel {
		return
	}
	args := []any{"step", i, "phase", c.Phase()}
	if key, ok := c.ActiveKey(); ok {
		pos, _ := c.ItemPosition(key)
		args = append(args, "active", key, "x", pos.X, "y", pos.Y)
	}
	logger.Debug(string(st.Action), args...)
}

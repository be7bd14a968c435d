// Package cli runs the labyrinth command: generate, print, check, save and
// browse mazes.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"labyrinth/pkg/engine/config"
	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/game/devtools"
	"labyrinth/pkg/game/export"
	"labyrinth/pkg/game/generator"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/renderer/tui"
	"labyrinth/pkg/game/storage/sqlite"
)

// Run executes one labyrinth command described by cfg.
func Run(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var store *sqlite.Store
	if strings.TrimSpace(cfg.DBPath) != "" {
		s, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	switch {
	case cfg.List:
		return listMazes(ctx, store, out)
	case cfg.Load != "":
		return loadMaze(ctx, store, cfg, out)
	}

	g, err := newGraph(cfg, errOut)
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = generator.TimeSeed()
	}

	if cfg.Interactive {
		return browse(ctx, g, seed, store, newPainter(cfg, out), in, out)
	}
	return generateOnce(ctx, g, seed, store, cfg, out)
}

func newGraph(cfg config.Config, errOut io.Writer) (*generator.Graph, error) {
	logOut := io.Discard
	if cfg.Verbose {
		logOut = errOut
	}
	opts := []generator.Option{generator.WithLogger(log.New(logOut, "", 0))}
	if cfg.Bounds != "" {
		bounds, err := config.ParseBounds(cfg.Bounds)
		if err != nil {
			return nil, err
		}
		opts = append(opts, generator.WithBounds(bounds))
	}
	return generator.NewGraph(cfg.RoomLimit, opts...)
}

func generateOnce(ctx context.Context, g *generator.Graph, seed int64, store *sqlite.Store, cfg config.Config, out io.Writer) error {
	result := g.Generate(seed)

	if cfg.Check {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("seed %d: %w", seed, err)
		}
	}

	if cfg.JSON {
		snap, err := export.Take(g)
		if err != nil {
			return err
		}
		if err := export.WriteJSON(out, snap); err != nil {
			return err
		}
	} else {
		p := newPainter(cfg, out)
		p.paint(g)
		fmt.Fprintln(out, tr(msgGenerated, result.Seed, result.String()))
		if result.Degenerate() {
			fmt.Fprintln(out, tr(msgDegenerate, result.RoomCount, result.RoomLimit))
		}
		if cfg.Check {
			fmt.Fprintln(out, tr(msgVerified, g.Size(), g.LinkCount()))
		}
	}

	if cfg.Dump != "" {
		path, err := devtools.DumpMazeToFile(cfg.Dump, g)
		if err != nil {
			return fmt.Errorf("dump maze: %w", err)
		}
		if !cfg.JSON {
			fmt.Fprintln(out, tr(msgDumped, path))
		}
	}

	if store != nil {
		id, err := save(ctx, store, g)
		if err != nil {
			return err
		}
		if !cfg.JSON {
			fmt.Fprintln(out, tr(msgSaved, id))
		}
	}
	return nil
}

func save(ctx context.Context, store *sqlite.Store, g *generator.Graph) (string, error) {
	snap, err := export.Take(g)
	if err != nil {
		return "", err
	}
	id, err := store.SaveMaze(ctx, snap)
	if err != nil {
		return "", fmt.Errorf("save maze: %w", err)
	}
	return id, nil
}

func listMazes(ctx context.Context, store *sqlite.Store, out io.Writer) error {
	mazes, err := store.ListMazes(ctx)
	if err != nil {
		return err
	}
	if len(mazes) == 0 {
		fmt.Fprintln(out, tr(msgNoMazes))
		return nil
	}
	for _, m := range mazes {
		fmt.Fprintln(out, tr(msgMazeRow, m.ID, m.CreatedAt.Format("2006-01-02 15:04:05"), m.Seed, m.RoomCount, m.RoomLimit, m.Status))
	}
	return nil
}

func loadMaze(ctx context.Context, store *sqlite.Store, cfg config.Config, out io.Writer) error {
	snap, err := store.LoadMaze(ctx, cfg.Load)
	if err != nil {
		return fmt.Errorf("load maze %s: %w", cfg.Load, err)
	}
	if cfg.JSON {
		return export.WriteJSON(out, snap)
	}
	maze, err := snap.Restore()
	if err != nil {
		return fmt.Errorf("load maze %s: %w", cfg.Load, err)
	}
	newPainter(cfg, out).paint(maze)
	fmt.Fprintln(out, tr(msgLoaded, cfg.Load, snap.Seed, len(snap.Rooms), snap.Status))
	return nil
}

// painter draws maps, in colour when writing to a terminal
type painter struct {
	out   io.Writer
	tty   *os.File
	color *tui.TUIRenderer
	plain renderer.Renderer
}

func newPainter(cfg config.Config, out io.Writer) *painter {
	p := &painter{out: out, plain: renderer.New()}
	if f, ok := out.(*os.File); ok && terminal.IsTerminal(f) {
		p.tty = f
		if cfg.Color {
			p.color = tui.New()
		}
	}
	return p
}

func (p *painter) render(src renderer.Source) string {
	if p.color != nil {
		return p.color.Render(src)
	}
	return p.plain.Render(src)
}

func (p *painter) paint(src renderer.Source) {
	if text := p.render(src); text != "" {
		fmt.Fprintln(p.out, text)
	}
	if p.color != nil {
		fmt.Fprintln(p.out, p.color.Legend(tr(msgLegendSpawn), tr(msgLegendDeadEnd), tr(msgLegendCorridor), tr(msgLegendJunction)))
	}
	if p.tty != nil {
		_, bounds := renderer.Layout(src)
		if !terminal.Fits(p.tty, bounds.Width(), bounds.Height()) {
			w, h := terminal.GetSize(p.tty)
			fmt.Fprintln(p.out, tr(msgTooWide, bounds.Width(), bounds.Height(), w, h))
		}
	}
}

// newSeedSource returns the random source used for random seed jumps
func newSeedSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed ^ generator.TimeSeed()))
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"labyrinth/pkg/engine/input"
	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/game/generator"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/state"
	"labyrinth/pkg/game/storage/sqlite"
)

const clearScreen = "\033[H\033[2J"

// browse shows one maze per seed and moves between seeds on key presses
// until the user quits or input ends.
func browse(ctx context.Context, g *generator.Graph, seed int64, store *sqlite.Store, p *painter, in io.Reader, out io.Writer) error {
	if in == nil {
		return errors.New("interactive mode needs an input stream")
	}
	if f, ok := in.(*os.File); ok && terminal.IsTerminal(f) {
		restore, err := input.MakeRaw(f)
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer restore()
		// raw mode turns off output post-processing
		out = crlfWriter{out}
		p.out = out
	}

	s := state.NewSession(g, seed, newSeedSource(seed))
	s.Generate()
	keys := input.NewKeyReader(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		drawSession(s, g, p, out)

		raw, err := keys.ReadRawInput()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		s.ClearMessages()
		switch input.MapToIntent(input.NewDebouncedInput(raw)).Action {
		case input.ActionNextSeed:
			s.NextSeed()
		case input.ActionPrevSeed:
			if _, ok := s.PrevSeed(); !ok {
				s.AddMessage(tr(msgNoHistory))
			}
		case input.ActionRandomSeed:
			s.RandomSeed()
		case input.ActionSave:
			if store == nil {
				s.AddMessage(tr(msgSaveNeedsDB))
				break
			}
			id, err := save(ctx, store, g)
			if err != nil {
				return err
			}
			s.AddMessage(tr(msgSaved, id))
		case input.ActionHelp:
			s.AddMessage(helpLine())
		case input.ActionQuit:
			return nil
		}
	}
}

func drawSession(s *state.Session, src renderer.Source, p *painter, out io.Writer) {
	fmt.Fprint(out, clearScreen)
	fmt.Fprintln(out, tr(msgBrowseHeader, s.Seed, s.Result.RoomCount, s.Result.Status))
	fmt.Fprintln(out)
	p.paint(src)
	if s.Result.Degenerate() {
		fmt.Fprintln(out, tr(msgDegenerate, s.Result.RoomCount, s.Result.RoomLimit))
	}
	for _, m := range s.Messages {
		fmt.Fprintln(out, m)
	}
}

// helpLine lists every bound key by action
func helpLine() string {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for act := range byAction {
		actions = append(actions, act)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	parts := make([]string, 0, len(actions))
	for _, act := range actions {
		parts = append(parts, fmt.Sprintf("%s: %s", input.ActionName(act), strings.Join(byAction[act], ", ")))
	}
	return tr(msgBrowseHelp, strings.Join(parts, "  "))
}

// crlfWriter writes "\r\n" for every "\n"
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(b []byte) (int, error) {
	if _, err := c.w.Write([]byte(strings.ReplaceAll(string(b), "\n", "\r\n"))); err != nil {
		return 0, err
	}
	return len(b), nil
}

package content

import (
	"context"
	"strconv"
	"strings"

	"github.com/brr-dev/zenith/internal/console"
	"github.com/brr-dev/zenith/internal/game/world"
)

// bookshelfProps is the inline payload for the "bookshelf" feature type.
type bookshelfProps struct {
	Books []bookProps `yaml:"books"`
}

// shelfEntry pairs a shelf book's behavior with the feature it reads from.
type shelfEntry struct {
	behavior *book
	feature  *world.Feature
}

// bookshelf presents its books as a pick-by-number menu. The books belong
// to the shelf alone; they never surface into the room.
type bookshelf struct {
	books []shelfEntry
}

func newBookshelf(def *world.FeatureDef) (world.Behavior, error) {
	var props bookshelfProps
	if err := decodeProps(def, &props); err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = "bookshelf"
	}

	shelf := &bookshelf{}
	for _, bp := range props.Books {
		b := &book{title: bp.Title, author: bp.Author, text: bp.Text}
		shelf.books = append(shelf.books, shelfEntry{
			behavior: b,
			feature:  &world.Feature{Name: "book", Behavior: b},
		})
	}
	return shelf, nil
}

func (s *bookshelf) ExtraHotkeys(*world.Feature) []string { return nil }

// Interact shows the shelf text, then routes by book count: none pauses
// with an empty-shelf line, one asks a yes/no, several present a numbered
// menu. An out-of-range number replays the menu; declining or answering
// nonsense bows out politely. Discovery of the shelf's own contents runs
// either way.
func (s *bookshelf) Interact(ctx context.Context, g world.Interactor, f *world.Feature) error {
	c := g.Console()

	for {
		c.Clear()
		for _, page := range f.InteractionPages(g) {
			c.Print(console.TextLines(page)...)
			c.Print(console.Break())
		}
		if content := f.ContentNarration(); len(content) > 0 {
			c.Print(content...)
			c.Print(console.Break(), console.Break())
		}

		choice, err := s.chooseBook(ctx, g)
		if err != nil {
			return err
		}

		switch {
		case choice == chooseNone:
			if err := console.Pause(ctx, c, console.Text("You don't feel like reading right now.")); err != nil {
				return err
			}
		case choice >= 0 && choice < len(s.books):
			entry := s.books[choice]
			if err := console.Pause(ctx, c, console.Text("You examine the "+entry.feature.Name+"...")); err != nil {
				return err
			}
			if err := entry.behavior.Interact(ctx, g, entry.feature); err != nil {
				return err
			}
		default:
			if err := console.Pause(ctx, c, console.Text("You're not sure how you'd do that...")); err != nil {
				return err
			}
			continue
		}

		g.CurrentRoom().DiscoverFrom(f)
		return nil
	}
}

// chooseNone is the sentinel for "reader declined".
const chooseNone = -1

// chooseInvalid marks unparseable or out-of-range menu input.
const chooseInvalid = -2

func (s *bookshelf) chooseBook(ctx context.Context, g world.Interactor) (int, error) {
	c := g.Console()

	switch len(s.books) {
	case 0:
		if err := console.Pause(ctx, c, console.Text("There are no books on the shelf...")); err != nil {
			return 0, err
		}
		return chooseNone, nil

	case 1:
		read, err := console.Confirm(ctx, c,
			[]console.Fragment{console.Text("Would you like to read " + s.books[0].behavior.title + "?")},
			true,
		)
		if err != nil {
			return 0, err
		}
		if read {
			return 0, nil
		}
		return chooseNone, nil

	default:
		c.Print(s.menuFragments()...)
		c.Print(console.Break(), console.Break())

		input, err := console.Prompt(ctx, c,
			[]console.Fragment{console.Text("Pick a book by number:")},
			console.PromptOptions{AllowEmpty: true},
		)
		if err != nil {
			return 0, err
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(input))
		if convErr != nil {
			return chooseNone, nil
		}
		choice := n - 1
		if choice < 0 || choice >= len(s.books) {
			return chooseInvalid, nil
		}
		return choice, nil
	}
}

func (s *bookshelf) menuFragments() []console.Fragment {
	pad := len(s.books) > 9
	var frags []console.Fragment
	for idx, entry := range s.books {
		label := strconv.Itoa(idx + 1)
		if pad {
			label = strings.Repeat(" ", 2-len(label)) + label
		}
		frags = append(frags,
			console.Tag(label),
			console.Text(": "+entry.behavior.title),
			console.Break(),
		)
	}
	declineLabel := "n"
	if pad {
		declineLabel = " n"
	}
	frags = append(frags,
		console.Tag(declineLabel),
		console.Text(": I don't want to read"),
	)
	return frags
}

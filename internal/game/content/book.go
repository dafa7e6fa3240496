package content

import (
	"context"

	"github.com/brr-dev/zenith/internal/console"
	"github.com/brr-dev/zenith/internal/game/world"
)

// bookProps is the inline payload for the "book" feature type.
type bookProps struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Text   string `yaml:"text"`
}

// book renders a framed page with title, author, and body text, and adds
// "read" hotkeys on top of the standard inspection ones.
type book struct {
	title  string
	author string
	text   string
}

func newBook(def *world.FeatureDef) (world.Behavior, error) {
	var props bookProps
	if err := decodeProps(def, &props); err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = "book"
	}
	return &book{title: props.Title, author: props.Author, text: props.Text}, nil
}

func (b *book) ExtraHotkeys(f *world.Feature) []string {
	hotkeys := []string{"read " + f.Name}
	if b.title != "" {
		hotkeys = append(hotkeys, "read "+b.title)
	}
	return hotkeys
}

// Interact plays the page. A generically named book gets reach/put-down
// framing so picking it up reads as a deliberate act; a titled book opened
// from a shelf menu skips straight to the text.
func (b *book) Interact(ctx context.Context, g world.Interactor, f *world.Feature) error {
	c := g.Console()

	if f.Name == "book" {
		if err := console.Pause(ctx, c, console.Text("You reach for the book...")); err != nil {
			return err
		}
	}

	c.Clear()
	c.Print(b.pageFragments()...)
	c.Print(console.Break(), console.Break())
	if content := f.ContentNarration(); len(content) > 0 {
		c.Print(content...)
		c.Print(console.Break(), console.Break())
	}
	if err := console.Pause(ctx, c); err != nil {
		return err
	}

	if f.Name == "book" {
		if err := console.Pause(ctx, c, console.Text("You put the book down.")); err != nil {
			return err
		}
	}

	g.CurrentRoom().DiscoverFrom(f)
	return nil
}

func (b *book) pageFragments() []console.Fragment {
	var frags []console.Fragment
	if b.title != "" {
		frags = append(frags, console.Title("- "+b.title+" -"), console.Break())
	}
	if b.author != "" {
		frags = append(frags, console.Text(b.author), console.Break())
	}
	if b.title != "" || b.author != "" {
		frags = append(frags, console.Rule(), console.Break())
	}
	if b.text != "" {
		frags = append(frags, console.TextLines(b.text)...)
	} else {
		frags = append(frags, console.Text("You can't make out any of the text."))
	}
	return frags
}

package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/mybooks/internal/config"
	"github.com/mrlokans/mybooks/internal/database"
	"github.com/mrlokans/mybooks/internal/entities"
	"github.com/mrlokans/mybooks/internal/library"
)

type sampleBook struct {
	input  library.BookInput
	status entities.Status
	genres []string
	quotes []string
}

var sampleGenres = []library.GenreInput{
	{Name: "Science Fiction", Color: "#1E88E5"},
	{Name: "Classics", Color: "#8E24AA"},
	{Name: "Non-fiction", Color: "#43A047"},
}

var sampleBooks = []sampleBook{
	{
		input: library.BookInput{
			Title:    "Dune",
			Author:   "Frank Herbert",
			Synopsis: "A noble family takes control of the desert planet Arrakis.",
		},
		status: entities.StatusCompleted,
		genres: []string{"Science Fiction", "Classics"},
		quotes: []string{"Fear is the mind-killer.", "The spice must flow."},
	},
	{
		input: library.BookInput{
			Title:         "The Left Hand of Darkness",
			Author:        "Ursula K. Le Guin",
			RecommendedBy: "Book club",
		},
		status: entities.StatusInProgress,
		genres: []string{"Science Fiction"},
		quotes: []string{"Light is the left hand of darkness."},
	},
	{
		input: library.BookInput{
			Title:  "Pride and Prejudice",
			Author: "Jane Austen",
		},
		status: entities.StatusOnShelf,
		genres: []string{"Classics"},
	},
	{
		input: library.BookInput{
			Title:  "Thinking, Fast and Slow",
			Author: "Daniel Kahneman",
		},
		status: entities.StatusOnShelf,
		genres: []string{"Non-fiction"},
	},
}

// SeedCommand fills a database with sample books, genres and quotes.
type SeedCommand struct {
	DatabasePath string
	Force        bool
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.NewConfig().Database.Path, "Path to the database file to populate")
	fs.BoolVar(&cmd.Force, "force", false, "Seed even if the database already contains books")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Populate a database with sample books, genres and quotes.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s seed -db ./preview.db\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	lib := library.New(db.DB)

	stats, err := lib.Stats()
	if err != nil {
		return err
	}
	if stats.Total > 0 && !cmd.Force {
		fmt.Printf("Database %s already has %d books, skipping (use -force to seed anyway)\n", cmd.DatabasePath, stats.Total)
		return nil
	}

	created, err := Seed(lib)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d books into %s\n", created, cmd.DatabasePath)
	return nil
}

// Seed adds the sample genres and books to lib and returns the number of
// books created.
func Seed(lib *library.Library) (int, error) {
	genreIDs := make(map[string]uint, len(sampleGenres))
	for _, input := range sampleGenres {
		genre, err := lib.CreateGenre(input)
		if err != nil {
			return 0, fmt.Errorf("genre %q: %w", input.Name, err)
		}
		genreIDs[genre.Name] = genre.ID
	}

	for i, sample := range sampleBooks {
		input := sample.input
		for _, name := range sample.genres {
			input.GenreIDs = append(input.GenreIDs, genreIDs[name])
		}

		book, err := lib.CreateBook(input)
		if err != nil {
			return i, fmt.Errorf("book %q: %w", input.Title, err)
		}

		if sample.status != entities.StatusOnShelf {
			form := library.LoadForDisplay(book)
			form, err = lib.ChangeFormStatus(form, sample.status)
			if err != nil {
				return i, err
			}
			if _, err := lib.SaveForm(book.ID, form); err != nil {
				return i, fmt.Errorf("book %q: %w", input.Title, err)
			}
		}

		for _, text := range sample.quotes {
			if _, err := lib.AddQuote(book.ID, text, nil); err != nil {
				return i, fmt.Errorf("quote for %q: %w", input.Title, err)
			}
		}
	}

	return len(sampleBooks), nil
}

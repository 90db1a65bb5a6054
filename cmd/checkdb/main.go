package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"gorm.io/gorm"

	"github.com/pageza/platepal/backend/config"
	"github.com/pageza/platepal/backend/internal/database"
	"github.com/pageza/platepal/backend/internal/models"
)

func orNA[T any](v *T) interface{} {
	if v == nil {
		return "N/A"
	}
	return *v
}

// section writes one table. Rows are flushed before the next query runs so a
// later failure keeps what was already printed.
func section(out io.Writer, title, header string, rows func(w io.Writer)) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "\n%s\n%s\n", title, header)
	rows(w)
	w.Flush()
}

func report(db *gorm.DB, out io.Writer) error {
	tables, err := db.Migrator().GetTables()
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	fmt.Fprintln(out, "All tables in database:")
	fmt.Fprintln(out, tables)

	var users []models.User
	if err := db.Order("created_at ASC").Find(&users).Error; err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	section(out, "Users in database:", "ID\tNAME\tEMAIL", func(w io.Writer) {
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.ID, u.Name, u.Email)
		}
	})

	var recipes []models.BookmarkedRecipe
	if err := db.Order("created_at ASC").Find(&recipes).Error; err != nil {
		return fmt.Errorf("failed to load recipe bookmarks: %w", err)
	}
	section(out, "Bookmarked Recipes:", "USER ID\tTITLE\tREADY IN (MIN)\tSERVINGS\tURL", func(w io.Writer) {
		for _, r := range recipes {
			fmt.Fprintf(w, "%s\t%s\t%v\t%v\t%v\n", r.UserID, r.Title, orNA(r.ReadyInMinutes), orNA(r.Servings), orNA(r.SourceURL))
		}
	})

	var restaurants []models.BookmarkedRestaurant
	if err := db.Order("created_at ASC").Find(&restaurants).Error; err != nil {
		return fmt.Errorf("failed to load restaurant bookmarks: %w", err)
	}
	section(out, "Bookmarked Restaurants:", "USER ID\tNAME\tRATING\tPRICE\tADDRESS", func(w io.Writer) {
		for _, r := range restaurants {
			fmt.Fprintf(w, "%s\t%s\t%v\t%v\t%v\n", r.UserID, r.Name, orNA(r.Rating), orNA(r.Price), orNA(r.Address))
		}
	})

	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := report(db, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

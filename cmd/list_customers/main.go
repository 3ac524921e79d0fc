package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/amjooky/carwash-plus-sub001/internal/database"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"
)

func main() {
	search := flag.String("search", "", "filter by name, email or phone")
	limit := flag.Int("limit", 50, "max rows")
	flag.Parse()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	customers, total, err := repository.NewCustomerRepository(db).List(context.Background(), *search, *limit, 0)
	if err != nil {
		log.Fatalf("list failed: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tCREATED")
	for _, c := range customers {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\n",
			c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()
	fmt.Printf("%d of %d customers\n", len(customers), total)
}

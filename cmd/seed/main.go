// Command seed inserts newsletter rows for development and testing.
// The viewer itself exposes no write API; this tool is the out-of-band
// path that creates records.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/ignite/newsletter-viewer/internal/config"
	"github.com/ignite/newsletter-viewer/internal/domain"
	"github.com/ignite/newsletter-viewer/internal/repository/postgres"

	_ "github.com/lib/pq" // PostgreSQL driver
)

func main() {
	email := flag.String("email", "", "recipient email the newsletter belongs to (required)")
	content := flag.String("content", "Welcome to the newsletter! This is seeded sample content.", "newsletter body")
	image := flag.String("image", "", "image reference: a direct URL or s3://bucket/key (defaults to s3://<configured bucket>/sample.png)")
	count := flag.Int("count", 1, "number of rows to insert")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}

	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	imageURL := *image
	if imageURL == "" {
		imageURL = fmt.Sprintf("%s%s/sample.png", domain.StorageScheme, cfg.AWS.Bucket)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping: %v", err)
	}
	log.Println("Connected to database")

	ctx := context.Background()
	repo := postgres.NewNewsletterRepo(db)
	if err := repo.InitSchema(ctx); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	for i := 0; i < *count; i++ {
		n := &domain.Newsletter{
			ID:       uuid.New().String(),
			Content:  *content,
			Email:    *email,
			ImageURL: imageURL,
		}
		if err := repo.Insert(ctx, n); err != nil {
			log.Fatalf("insert: %v", err)
		}
		fmt.Printf("seeded newsletter %s for %s\n", n.ID, n.Email)
		fmt.Printf("  view: /newsletters/%s?email=%s\n", n.ID, n.Email)
	}
}

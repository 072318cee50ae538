// Command main runs the database seeder for Ripple.
package main

import (
	"flag"
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "Number of users to create")
	flag.IntVar(&opts.PostsPerUser, "posts", opts.PostsPerUser, "Posts per user")
	flag.IntVar(&opts.CommentsPerPost, "comments", opts.CommentsPerPost, "Comments per post")
	flag.BoolVar(&opts.Clean, "clean", opts.Clean, "Clean database before seeding")
	flag.Parse()

	log.Println("Database seeder")
	log.Printf("Target: %d users, %d posts/user, clean=%v\n", opts.Users, opts.PostsPerUser, opts.Clean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with demo data.")
	log.Printf("All demo users have the password: %s", seed.DemoPassword)
}

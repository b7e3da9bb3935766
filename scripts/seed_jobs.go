package main

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"

	"alfredoptarigan/job-portal/internal/config"
	"alfredoptarigan/job-portal/internal/repositories"
)

func main() {
	log.Println("🚀 Starting job seeding...")

	// Load configuration
	cfg := config.Load()

	client, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	ctx := context.Background()
	defer client.Disconnect(ctx)

	jobRepo := repositories.NewJobRepository(client.Database(cfg.Database.Name))

	jobs := []bson.M{
		{
			"title":        "Senior Backend Engineer",
			"company":      "Acme Corp",
			"company_logo": "https://logo.clearbit.com/acme.com",
			"location":     "Dhaka, Bangladesh",
			"status":       "active",
			"hr_email":     "hr@acme.com",
			"salary":       "80k-120k",
			"description":  "Design and run the services behind our hiring platform.",
		},
		{
			"title":        "Frontend Developer",
			"company":      "Initech",
			"company_logo": "https://logo.clearbit.com/initech.com",
			"location":     "Remote",
			"status":       "active",
			"hr_email":     "careers@initech.com",
			"salary":       "60k-90k",
			"description":  "Build the applicant-facing portal.",
		},
		{
			"title":        "DevOps Engineer",
			"company":      "Globex",
			"company_logo": "https://logo.clearbit.com/globex.com",
			"location":     "Berlin, Germany",
			"status":       "closed",
			"hr_email":     "hr@globex.com",
			"salary":       "70k-100k",
			"description":  "Own the deployment pipeline end to end.",
		},
	}

	seeded := 0
	for _, job := range jobs {
		result, err := jobRepo.Insert(ctx, job)
		if err != nil {
			log.Printf("❌ Failed to seed %q: %v", job["title"], err)
			continue
		}

		log.Printf("✅ Seeded %q as %s", job["title"], result.InsertedID)
		seeded++
	}

	log.Printf("🎉 Seeding complete: %d/%d jobs", seeded, len(jobs))
}

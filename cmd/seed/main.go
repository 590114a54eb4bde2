package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentara/internal/config"
	"mentara/internal/model"
	"mentara/internal/repository"
)

// Seeds the therapist roster for local development.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.Load()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	db := mongoClient.Database(cfg.MongoDB)
	repo := repository.NewTherapistRepository(db)

	existing, err := repo.List(ctx, repository.TherapistFilter{})
	if err != nil {
		log.Fatal("Failed to check roster:", err)
	}
	if len(existing) > 0 {
		log.Printf("Roster already has %d therapists, nothing to do", len(existing))
		return
	}

	roster := []model.TherapistProfile{
		{
			Name:              "Dr. Amara Osei",
			Specialties:       []string{"depression", "anxiety", "stress"},
			Approaches:        []string{"CBT", "Mindfulness"},
			YearsOfExperience: 12,
			AverageRating:     4.8,
			ReviewCount:       124,
			Languages:         []string{"English", "French"},
			Modalities:        []string{"online", "in-person"},
			PriceBand:         model.PriceBandStandard,
			Availability:      "weekday",
		},
		{
			Name:              "Dr. Lena Virtanen",
			Specialties:       []string{"ptsd", "panic", "anxiety"},
			Approaches:        []string{"EMDR", "CBT"},
			YearsOfExperience: 18,
			AverageRating:     4.9,
			ReviewCount:       203,
			Languages:         []string{"English", "Finnish"},
			Modalities:        []string{"online"},
			PriceBand:         model.PriceBandPremium,
			Availability:      "evening",
		},
		{
			Name:              "Marcus Delgado",
			Specialties:       []string{"alcohol-use", "drug-use", "depression"},
			Approaches:        []string{"Motivational Interviewing", "CBT"},
			YearsOfExperience: 9,
			AverageRating:     4.6,
			ReviewCount:       87,
			Languages:         []string{"English", "Spanish"},
			Modalities:        []string{"in-person"},
			PriceBand:         model.PriceBandLow,
			Availability:      "weekend",
		},
		{
			Name:              "Dr. Priya Raman",
			Specialties:       []string{"ocd", "social-anxiety", "anxiety"},
			Approaches:        []string{"Exposure Therapy", "CBT"},
			YearsOfExperience: 15,
			AverageRating:     4.7,
			ReviewCount:       156,
			Languages:         []string{"English", "Tamil", "Hindi"},
			Modalities:        []string{"online", "in-person"},
			PriceBand:         model.PriceBandStandard,
			Availability:      "weekday",
		},
		{
			Name:              "Jonas Keller",
			Specialties:       []string{"burnout", "stress", "insomnia"},
			Approaches:        []string{"ACT", "Mindfulness"},
			YearsOfExperience: 7,
			AverageRating:     4.5,
			ReviewCount:       61,
			Languages:         []string{"English", "German"},
			Modalities:        []string{"online"},
			PriceBand:         model.PriceBandLow,
			Availability:      "evening",
		},
		{
			Name:              "Dr. Sofia Marini",
			Specialties:       []string{"bipolar", "depression"},
			Approaches:        []string{"Psychodynamic", "Interpersonal Therapy"},
			YearsOfExperience: 21,
			AverageRating:     4.9,
			ReviewCount:       312,
			Languages:         []string{"English", "Italian"},
			Modalities:        []string{"in-person"},
			PriceBand:         model.PriceBandPremium,
			Availability:      "weekday",
		},
		{
			Name:              "Hana Suzuki",
			Specialties:       []string{"eating", "adhd", "anxiety"},
			Approaches:        []string{"DBT", "CBT"},
			YearsOfExperience: 4,
			AverageRating:     5.0,
			ReviewCount:       3,
			Languages:         []string{"English", "Japanese"},
			Modalities:        []string{"online"},
			PriceBand:         model.PriceBandStandard,
			Availability:      "weekend",
		},
		{
			Name:              "Dr. Owen McAllister",
			Specialties:       []string{"insomnia", "panic", "stress"},
			Approaches:        []string{"CBT", "Somatic"},
			YearsOfExperience: 11,
			AverageRating:     4.4,
			ReviewCount:       98,
			Languages:         []string{"English"},
			Modalities:        []string{"online", "in-person"},
			PriceBand:         model.PriceBandStandard,
			Availability:      "evening",
		},
	}

	for i := range roster {
		if err := repo.Create(ctx, &roster[i]); err != nil {
			log.Fatalf("Failed to seed therapist %q: %v", roster[i].Name, err)
		}
		log.Printf("Seeded %s (%s)", roster[i].Name, roster[i].ID)
	}
	log.Printf("Seeded %d therapists", len(roster))
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sunriseclinic/recall-api/internal/entity"
	"github.com/sunriseclinic/recall-api/internal/infra/database"
)

type seedPatient struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	MissedDate string `json:"missedDate"`
	Status     string `json:"status"`
}

type seedData struct {
	Patients []seedPatient `json:"patients"`
}

// Replaces the whole table with the contents of the seed file. The first
// occurrence of a phone wins; later duplicates are skipped.
func main() {
	godotenv.Load()
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	dataPath := flag.String("data", "seed/data.json", "path to the seed file")
	flag.Parse()

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *dataPath).Msg("failed to read seed file")
	}

	var data seedData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatal().Err(err).Msg("failed to parse seed file")
	}

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	repo := database.NewPatientRepository(db)

	if err := repo.DeleteAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to clear patients")
	}

	inserted, skipped := 0, 0
	for _, row := range data.Patients {
		patient, err := entity.NewPatient(row.Name, row.Phone, row.MissedDate)
		if err != nil {
			log.Fatal().Err(err).Str("phone", row.Phone).Msg("invalid seed row")
		}
		if row.Status != "" {
			patient.Status = entity.Status(row.Status)
			if err := patient.Validate(); err != nil {
				log.Fatal().Err(err).Str("phone", row.Phone).Msg("invalid seed row")
			}
		}

		err = repo.Create(ctx, patient)
		if errors.Is(err, entity.ErrPhoneAlreadyExists) {
			skipped++
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("phone", row.Phone).Msg("failed to insert patient")
		}
		inserted++
	}

	log.Info().Int("inserted", inserted).Int("skipped", skipped).Msg("seeding completed")
}

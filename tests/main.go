package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"meetslot/config"
	"meetslot/database"
	eventRepo "meetslot/database/repository/event"
	"meetslot/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds a week of demo calendars so the query endpoints have data to work on.
func main() {
	config.LoadConfig()
	database.InitDB()
	repo := eventRepo.NewMongoEventRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := database.Database().Collection("events").DeleteMany(ctx, bson.M{"source": "seed"}); err != nil {
		log.Fatalf("Failed to clear seeded events: %v", err)
	}
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	people := []string{"alice", "bob", "carol", "dave", "erin", "frank"}
	titles := []string{"Standup", "1:1", "Design review", "Focus time", "Customer call", "Interview"}

	// Generate dates for the next 7 days.
	var weekDates []string
	today := time.Now()
	for i := 0; i < 7; i++ {
		weekDates = append(weekDates, today.AddDate(0, 0, i).Format("2006-01-02"))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	total := 0
	for _, date := range weekDates {
		var records []models.EventRecord

		// Shared standup at 09:30.
		records = append(records, models.EventRecord{
			Title:     "Standup",
			Start:     models.TimeInMinutes(9, 30),
			End:       models.TimeInMinutes(9, 45),
			Attendees: people,
			Source:    "seed",
		})

		for _, person := range people {
			for n := rng.Intn(4); n > 0; n-- {
				// Working hours, quarter-hour aligned.
				start := models.TimeInMinutes(8+rng.Intn(9), 15*rng.Intn(4))
				length := 15 * (1 + rng.Intn(8))
				attendees := []string{person}
				if rng.Intn(3) == 0 {
					attendees = append(attendees, people[rng.Intn(len(people))])
				}
				records = append(records, models.EventRecord{
					Title:     titles[rng.Intn(len(titles))],
					Start:     start,
					End:       min(start+length, models.MinutesPerDay),
					Attendees: attendees,
					Source:    "seed",
				})
			}
		}

		for i := range records {
			records[i].Date = date
		}
		ids, err := repo.CreateMany(ctx, records)
		if err != nil {
			log.Fatalf("Failed to insert events for %s: %v", date, err)
		}
		total += len(ids)
	}

	fmt.Printf("Seeded %d events across %d days.\n", total, len(weekDates))
}

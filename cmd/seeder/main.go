package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/handball-stats/internal/club"
	"github.com/mauv0809/handball-stats/internal/database"
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/matches"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{"DB_NAME": "handball.db"}
	for _, key := range []string{"DB_NAME", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

type demoPlayer struct {
	name     string
	position string
	number   int
}

var roster = []demoPlayer{
	{"Lucía Romero", handball.PositionGoalkeeper, 1},
	{"Paula Gil", handball.PositionGoalkeeper, 12},
	{"Marta Sanz", handball.PositionCentre, 7},
	{"Irene Vidal", handball.PositionCentre, 14},
	{"Carla Ortiz", handball.PositionBack, 9},
	{"Nerea Blanco", handball.PositionBack, 10},
	{"Sara Molina", handball.PositionBack, 15},
	{"Elena Castro", handball.PositionBack, 21},
	{"Laura Núñez", handball.PositionPivot, 5},
	{"Ana Prieto", handball.PositionPivot, 18},
	{"Julia Rubio", handball.PositionWing, 3},
	{"Noelia Pastor", handball.PositionWing, 6},
	{"Alba Iglesias", handball.PositionWing, 11},
	{"Rocío Méndez", handball.PositionWing, 23},
}

var opponents = []struct{ name, location string }{
	{"Rivas", "Polideportivo Cerro del Telégrafo"},
	{"Leganés", "Pabellón Europa"},
	{"Alcobendas", "Pabellón Amaya Valdemoro"},
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	clubStore := club.New(db)
	matchStore := matches.NewStore(db)

	selected := make([]handball.Selection, 0, len(roster))
	for i, p := range roster {
		player, err := clubStore.AddPlayer(p.name, p.position, p.number, handball.CategoryFemale)
		if err != nil {
			log.Fatalf("Failed to insert demo player %s: %s", p.name, err)
		}
		// The first goalkeeper and the first four outfield players start.
		starter := i == 0 || (i >= 2 && i < 2+handball.LineupStarters-1)
		selected = append(selected, handball.Selection{ID: player.ID, Starter: starter})
	}
	if err := handball.ValidateLineup(selected); err != nil {
		log.Fatalf("Demo lineup is invalid: %s", err)
	}
	log.Info("Inserted demo roster", "players", len(roster))

	rng := rand.New(rand.NewPCG(7, 14))
	date := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -7*len(opponents))
	for _, opp := range opponents {
		match, err := matchStore.CreateMatch(opp.name, date, opp.location, selected)
		if err != nil {
			log.Fatalf("Failed to create demo match vs %s: %s", opp.name, err)
		}
		updates := make([]handball.StatUpdate, 0, len(match.MatchPlayers))
		for _, mp := range match.MatchPlayers {
			updates = append(updates, handball.StatUpdate{MatchPlayerID: mp.ID, Counters: demoCounters(rng, mp)})
		}
		opponentScore := 18 + rng.IntN(12)
		if err := matchStore.UpdateMatchStats(match.ID, updates, &opponentScore); err != nil {
			log.Fatalf("Failed to store demo stats vs %s: %s", opp.name, err)
		}
		log.Info("Inserted demo match", "opponent", opp.name, "date", date.Format(matches.DateLayout))
		date = date.AddDate(0, 0, 7)
	}

	fmt.Println("Seeding complete.")
}

// demoCounters draws plausible counters for one player of one match.
func demoCounters(rng *rand.Rand, mp handball.MatchPlayer) handball.Counters {
	minutes := 10 + rng.IntN(20)
	if mp.Starter {
		minutes = 35 + rng.IntN(25)
	}
	c := handball.Counters{
		Turnovers:      rng.IntN(4),
		Recoveries:     rng.IntN(4),
		FoulsCommitted: rng.IntN(3),
		FoulsReceived:  rng.IntN(4),
		PlayTime:       minutes * 60,
	}
	if mp.Player != nil && mp.Player.Position == handball.PositionGoalkeeper {
		c.Saves = 4 + rng.IntN(10)
		return c
	}
	c.Goals = rng.IntN(8)
	c.Assists = rng.IntN(5)
	c.ShotsOnGoal = c.Goals + rng.IntN(4)
	c.ShotsOffTarget = rng.IntN(4)
	if rng.IntN(5) == 0 {
		c.YellowCards = 1
	}
	return c
}

package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/minsuk-hwang/courtmate/internal/club"
	"github.com/minsuk-hwang/courtmate/internal/database"
	"github.com/minsuk-hwang/courtmate/internal/session"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":        "courtmate.db",
		"MIGRATIONS_DIR": "migrations",
		"CLUB_ID":        "seed-club",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

var memberNames = []string{
	"김민준", "이서연", "박지훈", "최수아",
	"정도윤", "강하은", "조예준", "윤지우",
	"임성민", "한유진", "오시우", "서다은",
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], "", "", cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := club.New(db)
	clubID := cfg["CLUB_ID"]

	players := make([]session.Player, 0, len(memberNames))
	for i, name := range memberNames {
		ntrp := 2.5 + 0.5*float64(i%4)
		players = append(players, session.Player{
			Name:     name,
			Gender:   []string{"M", "F"}[i%2],
			Hand:     []string{"R", "R", "R", "L"}[i%4],
			NTRP:     &ntrp,
			AgeGroup: []string{"20s", "30s", "40s"}[i%3],
			Member:   true,
		})
	}
	if err := store.UpsertPlayers(clubID, players); err != nil {
		log.Fatalf("Failed to insert players: %s", err)
	}
	log.Info("Ensured roster exists.", "players", len(players))

	const numSessions = 24
	rng := rand.New(rand.NewSource(42))
	startTime := time.Now()

	for i := 0; i < numSessions; i++ {
		date := time.Now().AddDate(0, 0, -7*(numSessions-i)).Format("2006-01-02")
		sess := buildSession(rng, date)
		if err := store.UpsertSession(clubID, sess); err != nil {
			log.Fatalf("Failed to insert session %s: %s", date, err)
		}
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy sessions.", "sessions", numSessions, "duration", duration)
}

// buildSession schedules four doubles rounds from a shuffled roster and
// records a complete score for each. The occasional match is left unscored or
// voided so the aggregation paths that handle those cases get real data.
func buildSession(rng *rand.Rand, date string) *session.Session {
	names := append([]string(nil), memberNames...)
	rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	// One round brings a walk-in guest.
	if rng.Intn(4) == 0 {
		names[len(names)-1] = fmt.Sprintf("%s_%d", session.GuestName, rng.Intn(3)+1)
	}

	sess := &session.Session{Date: date}
	for court := 0; court < len(names)/4; court++ {
		base := court * 4
		m := session.Match{
			GameType: session.GameTypeDoubles,
			Team1:    []string{names[base], names[base+1]},
			Team2:    []string{names[base+2], names[base+3]},
			Court:    court + 1,
		}
		if rng.Intn(20) == 0 {
			m.GameType = session.GameTypeDeleted
		}
		sess.Schedule = append(sess.Schedule, m)
		sess.Results = append(sess.Results, rollResult(rng))
	}
	return sess
}

func rollResult(rng *rand.Rand) *session.MatchResult {
	if rng.Intn(10) == 0 {
		return nil // score never entered
	}
	t1 := rng.Intn(6)
	t2 := 6
	if rng.Intn(8) == 0 {
		t1, t2 = 5, 5 // drawn match
	} else if rng.Intn(2) == 0 {
		t1, t2 = t2, t1
	}
	return &session.MatchResult{T1: &t1, T2: &t2}
}

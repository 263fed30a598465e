package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds everything read from the environment at startup.
type Settings struct {
	Port           string
	DatabaseURL    string
	ReturnChange   bool  // give overpaying buyers their change back
	GracePeriodSec int64 // unwind grace period after the sale window
	AutoResolveSec int   // auto-resolve scan interval, 0 disables
}

// Load reads .env and the environment. DATABASE_URL may be empty, in which
// case the server runs without persistence.
func Load() Settings {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	s := Settings{
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ReturnChange:   os.Getenv("RETURN_CHANGE") == "true",
		AutoResolveSec: 30,
	}
	if s.Port == "" {
		s.Port = "4000"
	}
	if v := os.Getenv("GRACE_PERIOD_SEC"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			log.Fatalf("[FATAL] invalid GRACE_PERIOD_SEC %q", v)
		}
		s.GracePeriodSec = n
	}
	if v := os.Getenv("AUTO_RESOLVE_SEC"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Fatalf("[FATAL] invalid AUTO_RESOLVE_SEC %q", v)
		}
		s.AutoResolveSec = n
	}
	return s
}

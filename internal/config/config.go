package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const tokenSecretPath = "/run/secrets/telegram_bot_token"

// Config is everything the bot needs from its environment. All chat-facing
// times use one fixed UTC offset; there is no per-user timezone.
type Config struct {
	TelegramToken  string
	DBPath         string
	UTCOffsetHours int
	PollTimeout    int
	Stickers       Stickers
}

// Stickers holds the file ids of the bot's stock stickers. Hello and Sleep
// double as the default stickers for morning and night greetings.
type Stickers struct {
	ComingSoon string
	Hello      string
	Sleep      string
}

func Load() Config {
	return Config{
		TelegramToken:  getBotToken(),
		DBPath:         getEnv("DB_PATH", "bot.db"),
		UTCOffsetHours: getEnvInt("UTC_OFFSET_HOURS", 8),
		PollTimeout:    getEnvInt("POLL_TIMEOUT", 60),
		Stickers: Stickers{
			ComingSoon: os.Getenv("STICKER_COMING_SOON"),
			Hello:      os.Getenv("STICKER_HELLO"),
			Sleep:      os.Getenv("STICKER_SLEEP"),
		},
	}
}

// Location is the fixed offset all reminder instants are interpreted in.
// It resolves to the matching Etc/GMT zone rather than a time.FixedZone:
// cron expressions are armed with this location's name, which must be
// loadable from the zone database. Etc/GMT signs are inverted, so Etc/GMT-8
// is UTC+8.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(fmt.Sprintf("Etc/GMT%+d", -c.UTCOffsetHours))
	if err != nil {
		log.Printf("no zone database entry for offset %+d, cron jobs will not arm: %v", c.UTCOffsetHours, err)
		return time.FixedZone(fmt.Sprintf("UTC%+d", c.UTCOffsetHours), c.UTCOffsetHours*60*60)
	}
	return loc
}

func getBotToken() string {
	if data, err := os.ReadFile(tokenSecretPath); err == nil {
		token := strings.TrimSpace(string(data))
		if token != "" {
			return token
		}
	}
	token := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	if token != "" {
		return token
	}
	log.Fatal("bot token not found: neither docker secret nor TELEGRAM_BOT_TOKEN is set")
	return ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("bad value %q for %s, using %d", v, key, fallback)
		return fallback
	}
	return n
}

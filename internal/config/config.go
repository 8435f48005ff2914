package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
}

// Config is the process-wide configuration, read once at startup.
type Config struct {
	DiscordToken  string `env:"DISCORD_BOT_TOKEN,required"`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`

	LavalinkHost     string `env:"LAVALINK_HOST" envDefault:"127.0.0.1"`
	LavalinkPort     int    `env:"LAVALINK_PORT" envDefault:"2333"`
	LavalinkPassword string `env:"LAVALINK_PASSWORD" envDefault:"youshallnotpass"`

	LyricsBaseURL string `env:"LYRICS_BASE_URL" envDefault:"https://api.lyrics.ovh/v1"`

	SearchTimeout  time.Duration `env:"SEARCH_TIMEOUT" envDefault:"10s"`
	IdleTimeout    time.Duration `env:"IDLE_TIMEOUT" envDefault:"30s"`
	UpdateInterval time.Duration `env:"UPDATE_INTERVAL" envDefault:"30s"`
}

// New parses the configuration from the environment.
// Missing required values are fatal: the bot cannot run without a token.
func New() *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		log.Fatal("[ERR] Failed to parse configuration: ", err)
	}
	return &cfg
}

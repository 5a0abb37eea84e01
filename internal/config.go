package internal

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"opencoffee/domain"
)

type Config struct {
	SlackAPIToken string `env:"SLACK_API_TOKEN,required=true" validate:"required"`
	// ChannelID is the channel whose members are paired.
	ChannelID string `env:"CHANNEL_ID,required=true" validate:"required"`
	// IgnoreMembers is a comma-separated list of member IDs excluded from
	// pairing, typically bot accounts.
	IgnoreMembers      string `env:"IGNORE_MEMBERS"`
	GeneratorAlgorithm string `env:"GENERATOR_ALGORITHM,default=simple" validate:"oneof=simple max-distance"`

	BacktrackDays        int `env:"BACKTRACK_DAYS,required=true" validate:"gte=0"`
	BacktrackMaxAttempts int `env:"BACKTRACK_MAX_ATTEMPTS,required=true" validate:"gte=0"`

	// CheckDelay spaces remote eligibility checks; SendDelay spaces the
	// invitation and reminder sends. Both are rate-limit courtesy only.
	CheckDelay time.Duration `env:"CHECK_DELAY,default=500ms"`
	SendDelay  time.Duration `env:"SEND_DELAY,default=250ms"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	Language       string `env:"LANGUAGE,default=en"`

	// TestMode runs the whole flow without posting any message.
	TestMode bool `env:"TEST_MODE,default=false"`
	// RandomSeed pins the random source for reproducible runs.
	RandomSeed *int64 `env:"RANDOM_SEED"`
}

// Validate checks the coherence of the configuration before any use of it.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// IgnoreList parses IgnoreMembers into member IDs, dropping blanks.
func (c Config) IgnoreList() []domain.Member {
	return lo.FilterMap(strings.Split(c.IgnoreMembers, ","), func(raw string, _ int) (domain.Member, bool) {
		trimmed := strings.TrimSpace(raw)
		return domain.Member(trimmed), trimmed != ""
	})
}

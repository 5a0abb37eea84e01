package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"opencoffee/domain"
	"opencoffee/internal"
	"opencoffee/observability"
	"opencoffee/pairing"
	"opencoffee/repositories"
	"opencoffee/services"
	"opencoffee/slack"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, executes the requested action and
// centralizes error reporting, so every defer (database cleanup included)
// executes before the process exits.
func run() error {
	action := flag.String("action", "",
		`action to perform: "invitation" runs a new round, "reminder" nudges the previous one`)
	flag.Parse()

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	log.Info("OpenCoffee BEGIN")
	if config.TestMode {
		log.Warn("Test mode: ON - no messages will be sent")
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Shared collaborators
	seed := time.Now().UnixNano()
	if config.RandomSeed != nil {
		seed = *config.RandomSeed
	}
	rng := rand.New(rand.NewSource(seed))

	connector := slack.NewConnector(log, config.SlackAPIToken, config.TestMode)
	history := repositories.NewHistoryRepository(db, log)
	catalog := services.CatalogFor(config.Language)

	// 5. Action dispatch
	switch *action {
	case "invitation":
		generator, err := pairing.NewGenerator(
			pairing.Algorithm(config.GeneratorAlgorithm),
			log,
			pairing.Config{
				BacktrackDays:        config.BacktrackDays,
				BacktrackMaxAttempts: config.BacktrackMaxAttempts,
				CheckDelay:           config.CheckDelay,
			},
			rng,
			observability.NewProgressTracker(log, "Generate pairs"),
		)
		if err != nil {
			return err
		}

		invitation := services.NewInvitationService(log, connector, generator, history, services.InvitationConfig{
			ChannelID:     domain.ChannelID(config.ChannelID),
			IgnoreMembers: config.IgnoreList(),
			Catalog:       catalog,
			SendDelay:     config.SendDelay,
		})
		result, err := invitation.Run(ctx)
		if err != nil {
			return err
		}
		renderSummary(result)

	case "reminder":
		reminder := services.NewReminderService(log, connector, history, services.ReminderConfig{
			BacktrackDays: config.BacktrackDays,
			Catalog:       catalog,
			SendDelay:     config.SendDelay,
		})
		if err := reminder.Run(ctx); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown action %q, expected \"invitation\" or \"reminder\"", *action)
	}

	log.Info("OpenCoffee END")
	return nil
}

func renderSummary(result domain.PairingResult) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"First", "Second"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, pair := range result.Pairs {
		table.Append([]string{string(pair.First), string(pair.Second)})
	}
	for _, member := range result.Ignored {
		table.Append([]string{string(member), "(ignored)"})
	}
	table.Render()
}

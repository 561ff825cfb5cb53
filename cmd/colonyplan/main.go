package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fatman2021/orionai/internal/colony"
	"github.com/fatman2021/orionai/internal/config"
	"github.com/fatman2021/orionai/internal/logger"
	"github.com/fatman2021/orionai/internal/results"
	redisresults "github.com/fatman2021/orionai/internal/results/redis"
	"github.com/fatman2021/orionai/pkg/galaxy"
)

func main() {
	snapshotPath := flag.String("snapshot", "", "path to a galaxy snapshot JSON file")
	redisURL := flag.String("redis", "", "publish cycle results to this Redis URL")
	minValue := flag.Float64("min-value", 0, "minimum colony target value")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger.Init()
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *snapshotPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*snapshotPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *snapshotPath).Msg("Failed to open snapshot")
	}
	snap, err := galaxy.DecodeSnapshot(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decode snapshot")
	}

	cfg := config.Load()
	url := cfg.RedisURL
	if *redisURL != "" {
		url = *redisURL
	}

	var publisher results.Publisher
	if *redisURL != "" || os.Getenv("REDIS_URL") != "" {
		client, cerr := redisresults.NewClient(url, snap.Empire.ID)
		if cerr != nil {
			log.Fatal().Err(cerr).Msg("Failed to connect to Redis")
		}
		defer client.Close()
		publisher = client
	}

	sink := &galaxy.OrderLog{}
	planner := colony.NewPlanner(sink, publisher)
	planner.MinColonizeValue = *minValue
	if planner.MinColonizeValue == 0 {
		planner.MinColonizeValue = cfg.MinColonizeValue
	}

	report := planner.RunCycle(context.Background(), snap)

	fmt.Printf("turn %d: %d colony targets, %d outpost targets\n",
		report.Turn, len(report.ColonyTargets), len(report.OutpostTargets))
	for _, t := range report.ColonyTargets {
		fmt.Printf("  colony   %6d  %8.1f  %s\n", t.PlanetID, t.Score, t.Species)
	}
	for _, t := range report.OutpostTargets {
		fmt.Printf("  outpost  %6d  %8.1f\n", t.PlanetID, t.Score)
	}
	for _, o := range sink.Focus {
		fmt.Printf("order: set focus of %d to %s\n", o.PlanetID, o.Focus)
	}
	for _, o := range sink.Builds {
		fmt.Printf("order: enqueue %s at %d\n", o.Role, o.LocationID)
	}
	for _, o := range sink.Missions {
		fmt.Printf("order: fleet %d -> %s planet %d\n", o.FleetID, o.Mission, o.TargetID)
	}
}

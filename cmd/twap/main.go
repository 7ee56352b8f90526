package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"skoll/internal/feed"
	"skoll/internal/replay"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

func main() {
	// 1. CLI Parameter Parsing
	logLevel := flag.String("log-level", "info", "Log level: ['debug', 'info', 'warn', 'error']")
	flag.Parse()

	// Logs go to stderr; stdout carries only the averages.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Str("log-level", *logLevel).Msg("unknown log level")
	}
	zerolog.SetGlobalLevel(level)

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: please specify the event log file as argument.")
		flag.Usage()
		os.Exit(1)
	}
	fileName := flag.Arg(0)

	file, err := os.Open(fileName)
	if err != nil {
		log.Fatal().Err(err).Str("file", fileName).Msg("unable to open event log")
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Error().Err(err).Str("file", fileName).Msg("unable to close event log")
		}
	}()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	runID := uuid.NewString()
	log.Info().Str("run", runID).Str("file", fileName).Msg("replay starting")

	// The reader is the only goroutine; events arrive on its channel in
	// file order and are applied synchronously below.
	t, _ := tomb.WithContext(ctx)
	reader := feed.NewReader(file)
	t.Go(func() error {
		return reader.Run(t)
	})

	out := bufio.NewWriter(os.Stdout)
	defer func() {
		if err := out.Flush(); err != nil {
			log.Error().Err(err).Msg("unable to flush output")
		}
	}()

	session := replay.NewSession()
	processed := 0
	for event := range reader.Events() {
		processed++
		avg, ok := session.Apply(event)
		if !ok {
			// No weighted interval has completed yet.
			continue
		}
		fmt.Fprintln(out, strconv.FormatFloat(avg, 'g', 6, 64))
	}

	if err := t.Wait(); err != nil {
		log.Fatal().Err(err).Str("run", runID).Msg("replay failed")
	}
	log.Info().
		Str("run", runID).
		Int("events", processed).
		Int("live orders", session.LiveOrders()).
		Msg("replay finished")
}

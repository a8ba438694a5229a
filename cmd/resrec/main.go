package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/resrec/resrec"
	"github.com/resrec/resrec/internal/powermon"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend := powermon.Detect()
	logger.Info("Selected power backend", slog.String("backend", backend.Name()))

	printBanner()

	recorder := resrec.NewRecorder(
		resrec.WithPowerSource(backend),
		resrec.WithLogger(logger),
	)

	record, err := recorder.Run(ctx)
	if err != nil {
		logger.Error("Recording failed", slog.Any("error", err))
		os.Exit(1)
	}

	// restore default signal handling so a second interrupt is not
	// swallowed while the report is written
	stop()
	logger.Info("Recording stopped", slog.Int("samples", record.CPU.Count))

	writer := resrec.NewReportWriter(resrec.WithLogger(logger))
	if _, err := writer.Write(record); err != nil {
		logger.Error("Failed to write report", slog.Any("error", err))
		os.Exit(1)
	}
}

func printBanner() {
	fmt.Println("--------- Starting resource recording software ---------")
	if uptime, err := resrec.Uptime(); err == nil {
		fmt.Printf("Uptime      : %s\n", resrec.FormatUptime(uptime))
	}
	fmt.Println("Press Ctrl+C to stop and save summary.")
	fmt.Println("--------------------------------------------------------")
}

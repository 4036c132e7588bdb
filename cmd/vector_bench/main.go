// Command vector_bench runs concurrent container.Vector workloads and prints a
// lifetime balance report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/peng-qing/go_vector/common/bench"
	"github.com/peng-qing/go_vector/common/encode_utils"
	"github.com/peng-qing/go_vector/common/profile"
)

func main() {
	conf := bench.DefaultConfig()
	var verbose bool

	flag.IntVar(&conf.Workers, "workers", conf.Workers, "number of concurrent tasks")
	flag.IntVar(&conf.Tasks, "tasks", conf.Tasks, "number of tasks, each owns one vector")
	flag.IntVar(&conf.Rounds, "rounds", conf.Rounds, "rounds per task")
	flag.IntVar(&conf.Appends, "appends", conf.Appends, "appends per round")
	flag.IntVar(&conf.PayloadSize, "payload", conf.PayloadSize, "bytes carried by each element")
	flag.IntVar(&conf.FailEvery, "fail-every", conf.FailEvery, "inject a construction failure every N constructions (0 disables)")
	flag.StringVar(&conf.Format, "format", conf.Format, "report format: text or json")
	flag.StringVar(&conf.Encoding, "encoding", conf.Encoding, "report encoding: UTF-8, UTF-8-BOM, GBK, GB18030, HZ-GB2312")
	flag.StringVar(&conf.HeapProfileDir, "heap-profile", conf.HeapProfileDir, "directory for a heap profile written after the run")
	flag.BoolVar(&verbose, "v", false, "log vector storage growth")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(conf, logger); err != nil {
		slog.Error("[vector_bench] run failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(conf *bench.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, err := bench.NewRunner(conf, bench.WithRunnerLogger(logger))
	if err != nil {
		return err
	}
	report, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("run bench: %w", err)
	}

	out, err := encode_utils.NewWriter(os.Stdout, conf.Encoding)
	if err != nil {
		return err
	}
	if err := report.Write(out, conf.Format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}

	if conf.HeapProfileDir != "" {
		manager := profile.NewProfileManager(conf.HeapProfileDir)
		filename, err := manager.WriteHeapProfile()
		if err != nil {
			return fmt.Errorf("write heap profile: %w", err)
		}
		logger.Info("[vector_bench] memory stats", slog.String("profile", filename))
		fmt.Fprint(os.Stderr, manager.MemoryStats())
	}

	if !report.Balanced {
		return fmt.Errorf("constructions %d != destructions %d", report.Constructions, report.Destructions)
	}
	return nil
}

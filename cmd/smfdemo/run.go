package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/comalice/smf"
	"github.com/comalice/smf/internal/demo"
	"github.com/comalice/smf/internal/logging"
	"github.com/comalice/smf/production"
	"github.com/comalice/smf/realtime"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the crossing until its cycle budget or tick budget is spent",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("ticks") {
			cfg.Ticks, _ = flags.GetUint64("ticks")
		}
		if flags.Changed("tick-rate") {
			cfg.TickRate, _ = flags.GetDuration("tick-rate")
		}
		if flags.Changed("cycles") {
			cfg.Cycles, _ = flags.GetInt("cycles")
		}
		if flags.Changed("press-every") {
			cfg.PressEvery, _ = flags.GetInt("press-every")
		}
		if flags.Changed("metrics-addr") {
			cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
		}
		trace, _ := flags.GetString("trace")
		if trace != "" && trace != "yaml" && trace != "json" {
			return fmt.Errorf("unknown trace format %q", trace)
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return runCrossing(ctx, cfg, trace)
	},
}

func init() {
	runCmd.Flags().Uint64("ticks", 0, "Stop after this many ticks (0 = until the cycle budget); overrides SMF_TICKS")
	runCmd.Flags().Duration("tick-rate", 0, "Tick period; overrides SMF_TICK_RATE")
	runCmd.Flags().Int("cycles", 0, "Pedestrian phases before the crossing shuts down; overrides SMF_CYCLES")
	runCmd.Flags().Int("press-every", 0, "Press the pedestrian button every N ticks; overrides SMF_PRESS_EVERY")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address; overrides SMF_METRICS_ADDR")
	runCmd.Flags().String("trace", "", "Print the call trace when done (yaml or json)")
	rootCmd.AddCommand(runCmd)
}

func runCrossing(ctx context.Context, c AppConfig, trace string) error {
	logger := logging.New(logging.ParseLevel(c.LogLevel))

	reg := prometheus.NewRegistry()
	metrics, err := production.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	rec := production.NewRecorder("crossing", production.WithoutRun())

	ch := demo.NewChart()
	crossing := demo.NewCrossing(demo.Timing{}, c.Cycles, logger)
	smf.Init(crossing, ch.Operating,
		smf.WithLogger(logger),
		smf.WithHooks(rec.Hooks()),
		smf.WithHooks(metrics.Hooks("crossing")),
	)

	if c.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              c.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("serving metrics", "addr", c.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "err", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	rt := realtime.NewRuntime(crossing, realtime.Config{
		TickRate: c.TickRate,
		MaxTicks: c.Ticks,
	}, realtime.WithLogger(logger))
	if err := rt.Start(ctx); err != nil {
		return err
	}
	go pressButton(rt, c.TickRate*time.Duration(max(c.PressEvery, 1)))

	code, err := rt.Wait()
	logger.Info("crossing stopped",
		"ticks", rt.TickNumber(),
		"cycles", crossing.Cycles,
		"state", crossing.Current().String(),
		"code", code,
	)

	switch trace {
	case "yaml":
		if werr := rec.WriteYAML(os.Stdout); werr != nil {
			return werr
		}
	case "json":
		if werr := rec.WriteJSON(os.Stdout); werr != nil {
			return werr
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if code != 0 && code != demo.ExitDone {
		return fmt.Errorf("crossing terminated with code %d", code)
	}
	return nil
}

func pressButton(rt *realtime.Runtime[*demo.Crossing], every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-rt.Done():
			return
		case <-ticker.C:
			if err := rt.Post((*demo.Crossing).Press); err != nil {
				return
			}
		}
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"floorline/internal/config"
	"floorline/internal/export"
	"floorline/internal/metrics"
	"floorline/internal/model"
	"floorline/internal/prefs"
	"floorline/internal/provider"
	"floorline/internal/store"
	"floorline/internal/timeutil"
)

func main() {
	exportPath := flag.String("export", "", "write the day plan workbook to this path and exit")
	day := flag.String("day", "", "override the selected day (YYYY-MM-DD)")
	flag.Parse()

	_ = godotenv.Load()

	// Initialize logger
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	cfg, err := config.Load(os.Getenv("FLOORLINE_CONFIG_PATH"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.API.BaseURL == "" {
		logger.Fatal().Msg("set api.base_url in config")
	}

	settings, err := prefs.Open(cfg.Prefs.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("open prefs error")
	}
	defer settings.Close()

	client := provider.NewClient(cfg.API.BaseURL, cfg.API.APIKey)
	var rdb *redis.Client
	if cfg.Redis.Address != "" && cfg.CacheTTL() > 0 {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Address, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		client.UseRedisCache(rdb, cfg.CacheTTL())
	}
	if cfg.RefreshInterval() > 0 {
		client.LimitRefresh(cfg.RefreshInterval())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Monitoring.PrometheusEnabled {
		if cfg.Monitoring.PrometheusPort == 0 {
			cfg.Monitoring.PrometheusPort = 9090
		}
		metrics.Register()
		go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, &logger)
	}

	s := store.New(client, logger)
	if cfg.UI.Locale == "ru" {
		s.SetLocale(timeutil.LocaleRU)
	}

	if err := s.Load(ctx); err != nil {
		// The store keeps rendering an empty grid on a failed load; for a
		// one-shot run there is nothing to show, so bail out loudly.
		logger.Fatal().Err(err).Msg("load snapshot error")
	}

	if *day != "" {
		s.SetDay(*day)
	}

	logger.Info().Str("theme", string(settings.Theme(ctx))).Msg("ui preferences loaded")

	if *exportPath != "" {
		plan, err := export.BuildDayPlan(s.Snapshot(), s.SelectedDay(), s.SelectedZones())
		if err != nil {
			logger.Fatal().Err(err).Msg("build day plan error")
		}
		defer plan.Close()
		if err := plan.SaveToFile(*exportPath); err != nil {
			logger.Fatal().Err(err).Msg("save day plan error")
		}
		logger.Info().Str("path", *exportPath).Msg("day plan exported")
		return
	}

	printTimeline(s)
}

// printTimeline renders the selected day as a plain-text schedule grid,
// one line per table, standing in for the host rendering layer.
func printTimeline(s *store.Store) {
	snap := s.Snapshot()
	openMin := s.OpenMinutes()

	fmt.Printf("%s — %s (%s), %s–%s\n",
		snap.Restaurant.Name,
		s.SelectedDay(),
		s.DayLabel(s.SelectedDay()),
		timeutil.MinutesToClock(openMin),
		snap.Restaurant.ClosingTime,
	)

	for _, t := range s.FilteredTables() {
		events := s.Timeline(t)
		fmt.Printf("table %s (%s, %d seats): %d events\n", t.Number, t.Zone, t.Capacity, len(events))
		for _, ev := range events {
			fmt.Printf("  row %d/%d  %s–%s  %-11s %s%s\n",
				ev.RowIndex+1, ev.RowCount,
				timeutil.MinutesToClock(wrapClock(openMin+ev.StartMin)),
				timeutil.MinutesToClock(wrapClock(openMin+ev.EndMin)),
				ev.Type, ev.Status, eventDetails(ev))
		}
	}
}

func eventDetails(ev model.TimelineEvent) string {
	var parts []string
	if ev.Name != "" {
		parts = append(parts, ev.Name)
	}
	if ev.NumPeople > 0 {
		parts = append(parts, fmt.Sprintf("%d ppl", ev.NumPeople))
	}
	if ev.CoverRatio < 1 {
		parts = append(parts, fmt.Sprintf("%.0f%% visible", ev.CoverRatio*100))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func wrapClock(minutes int) int {
	return ((minutes % 1440) + 1440) % 1440
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}

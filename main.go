package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pivolan/covid_dashboard/config"
)

func main() {
	cfg := config.GetConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	dash := NewDashboard(sugar, cfg.PageSize)

	// One fetch per process; a failure just leaves the dashboard empty.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
		defer cancel()

		client := &http.Client{Timeout: cfg.FetchTimeout}
		records, err := FetchDataset(ctx, client, cfg.DataURL)
		if err != nil {
			sugar.Errorw("dataset fetch failed, dashboard stays empty", "url", cfg.DataURL, "err", err)
			return
		}
		dash.Load(records)
		sugar.Infow("dataset loaded", "records", len(records))
	}()

	sugar.Infof("listen on: http://localhost%s", cfg.ListenAddr)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           dash.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		sugar.Fatalw("server stopped", "err", err)
	}
}

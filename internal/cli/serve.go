package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	"github.com/BruksfildServices01/agenda-negocios/internal/auth"
	dbpkg "github.com/BruksfildServices01/agenda-negocios/internal/db"
	"github.com/BruksfildServices01/agenda-negocios/internal/observability"
	"github.com/BruksfildServices01/agenda-negocios/internal/routes"
)

func serveCmd() *cobra.Command {
	var migrate bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, db, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			if migrate {
				if err := dbpkg.Migrate(db); err != nil {
					return err
				}
			}

			shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, Version)
			if err != nil {
				return err
			}
			defer func() {
				if err := shutdownOTel(context.Background()); err != nil {
					log.Warn().Err(err).Msg("otel shutdown")
				}
			}()

			// ------------------------------
			// Revogação de tokens
			// ------------------------------
			var revoker auth.Revoker = auth.NewMemoryRevoker()
			if cfg.RedisURL != "" {
				rr, err := auth.NewRedisRevoker(ctx, cfg.RedisURL)
				if err != nil {
					return err
				}
				defer rr.Close()
				revoker = rr
			}

			// ------------------------------
			// Auditoria
			// ------------------------------
			auditLogger := audit.New(db)
			var recorder audit.Recorder = auditLogger
			if cfg.AuditAsync {
				d := audit.NewDispatcher(auditLogger, 256)
				defer d.Close()
				recorder = d
			}

			gin.SetMode(cfg.GinMode)
			r := gin.New()
			routes.RegisterRoutes(r, routes.Deps{
				DB:      db,
				Config:  cfg,
				Audit:   recorder,
				Revoker: revoker,
			})

			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           r,
				ReadTimeout:       cfg.ReadTimeout,
				ReadHeaderTimeout: cfg.ReadHeaderTimeout,
				WriteTimeout:      cfg.WriteTimeout,
				IdleTimeout:       cfg.IdleTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", srv.Addr).Str("version", Version).Msg("server listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	c.Flags().BoolVar(&migrate, "migrate", true, "Run schema migrations before serving")
	return c
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz-generation HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		svc, err := buildService(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		srv := server.New(cfg.Server, svc, newLogger(cfg.LogLevel))
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides QUIZFORGE_HTTP_ADDR)")
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramzor-dev/ramzor/internal/server"
)

func newServeCommand(gf *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the document upload API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject(gf)
			if err != nil {
				return err
			}
			return runServe(cmd, p, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

func runServe(cmd *cobra.Command, p *project, addr string) error {
	logger, err := p.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	pl, err := p.pipeline(logger)
	if err != nil {
		return err
	}
	srv := server.New(pl, p.cfg.Declared.Budget(), logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Listen(addr) }()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-cmd.Context().Done():
		logger.Info("shutting down")
		return srv.Shutdown()
	}
}

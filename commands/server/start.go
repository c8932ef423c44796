package server

import (
	"github.com/iov-one/revshare/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(home string, logger log.Logger, debug bool) (abci.Application, error)

// StartCmd initializes the application and serves it over the abci socket.
// It never returns once the server runs: an interrupt stops the server and
// exits the process.
func StartCmd(gen AppGenerator, logger log.Logger, home string, cfg Config) error {
	svr, err := startServer(gen, logger, home, cfg)
	if err != nil {
		return err
	}
	cmn.TrapSignal(logger, func() {
		if err := svr.Stop(); err != nil {
			logger.Error("cannot stop abci server", "err", err)
		}
	})
	select {}
}

// startServer builds the application in home and starts listening on
// cfg.Bind.
func startServer(gen AppGenerator, logger log.Logger, home string, cfg Config) (cmn.Service, error) {
	app, err := gen(home, logger, cfg.Debug)
	if err != nil {
		return nil, errors.Wrap(err, "generate app")
	}

	logger.Info("Starting ABCI app", "bind", cfg.Bind)
	svr, err := server.NewServer(cfg.Bind, "socket", app)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return nil, errors.Wrap(err, "cannot start server")
	}
	return svr, nil
}

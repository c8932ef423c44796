package app

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp implements the state related part of abci.Application: the
// genesis import, block bookkeeping, commits and queries. Transaction
// processing is added by BaseApp.
//
// InitChain and Commit do not take user input and cannot report a failure,
// so any error there is a panic.
//
// A single mutex serializes every ABCI call.
type StoreApp struct {
	mu sync.Mutex

	name   string
	logger log.Logger
	debug  bool

	state       *stateLayers
	initializer revshare.Initializer
	queryRouter revshare.QueryRouter

	// chainID is empty until the genesis was imported.
	chainID string

	// baseContext lives as long as the application, blockContext is
	// rebuilt for every block.
	baseContext  revshare.Context
	blockContext revshare.Context
}

// NewStoreApp loads the latest committed state of kv. It panics if that
// state cannot be read.
func NewStoreApp(name string, kv revshare.CommitKVStore, queryRouter revshare.QueryRouter, baseContext revshare.Context) *StoreApp {
	s := &StoreApp{
		name:        name,
		state:       newStateLayers(kv),
		queryRouter: queryRouter,
		baseContext: baseContext,
	}
	s.WithLogger(log.NewNopLogger())

	chainID, err := loadChainID(s.DeliverStore())
	if err != nil {
		panic(err)
	}
	if chainID != "" {
		s.useChainID(chainID)
	}

	last, err := s.state.latest()
	if err != nil {
		panic(err)
	}
	s.blockContext = revshare.WithHeight(s.baseContext, last.Version)
	return s
}

// WithInit sets the genesis initializer.
func (s *StoreApp) WithInit(init revshare.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithDebug enables full error details in responses.
func (s *StoreApp) WithDebug(debug bool) *StoreApp {
	s.debug = debug
	return s
}

// WithLogger sets the application logger. Every context built by the
// application carries it.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.baseContext = revshare.WithLogger(s.baseContext, logger)
	return s
}

func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// GetChainID returns the chain id or an empty string before the genesis
// was imported.
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// BlockContext returns the context of the block being processed.
func (s *StoreApp) BlockContext() revshare.Context {
	return s.blockContext
}

// DeliverStore returns the cache DeliverTx writes to.
func (s *StoreApp) DeliverStore() revshare.CacheableKVStore {
	return s.state.deliver
}

// CheckStore returns the cache CheckTx writes to.
func (s *StoreApp) CheckStore() revshare.CacheableKVStore {
	return s.state.check
}

func (s *StoreApp) useChainID(chainID string) {
	s.chainID = chainID
	s.baseContext = revshare.WithChainID(s.baseContext, chainID)
	if s.blockContext != nil {
		s.blockContext = revshare.WithChainID(s.blockContext, chainID)
	}
}

// importGenesis runs once, when the chain starts for the first time.
func (s *StoreApp) importGenesis(raw []byte, chainID string) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "genesis already imported for chain %s", s.chainID)
	}
	if len(raw) == 0 {
		return errors.Wrap(errors.ErrState, "genesis has no app_state, initialize the application first")
	}
	var opts revshare.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.useChainID(chainID)

	if s.initializer == nil {
		return nil
	}
	return s.initializer.FromGenesis(opts, s.DeliverStore())
}

// InitChain implements abci.Application.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.importGenesis(req.AppStateBytes, req.ChainId); err != nil {
		panic(err)
	}
	s.logger.Info("genesis imported", "chain", req.ChainId)
	return abci.ResponseInitChain{}
}

// Info implements abci.Application. The reported height is the last
// committed block.
func (s *StoreApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, err := s.state.latest()
	if err != nil {
		panic(err)
	}
	s.logger.Info("Info synced", "height", last.Version, "hash", fmt.Sprintf("%X", last.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		LastBlockHeight:  last.Version,
		LastBlockAppHash: last.Hash,
	}
}

// SetOption is not supported.
func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

// BeginBlock implements abci.Application.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := revshare.WithHeight(s.baseContext, req.Header.GetHeight())
	s.blockContext = revshare.WithBlockTime(ctx, req.Header.GetTime())
	return abci.ResponseBeginBlock{}
}

// EndBlock implements abci.Application. Validators never change.
func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}

// Commit implements abci.Application.
func (s *StoreApp) Commit() abci.ResponseCommit {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.state.commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("Commit synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

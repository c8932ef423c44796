package app

import (
	"strings"

	"github.com/iov-one/revshare/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Query implements abci.Application.
//
// The path selects the handler: "/" for raw keys, "/<bucket>" or
// "/<bucket>/<index>". A "?prefix" suffix turns it into a prefix query.
// Key and Value of the response are both serialized ResultSets of the same
// length. Queries always read the last committed state.
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, mod := splitPath(req.Path)
	h := s.queryRouter.Handler(path)
	if h == nil {
		return s.queryError(errors.Wrapf(errors.ErrNotFound, "unexpected query path: %v", req.Path))
	}

	last, err := s.state.latest()
	if err != nil {
		return s.queryError(err)
	}
	models, err := h.Query(s.state.snapshot(), mod, req.Data)
	if err != nil {
		return s.queryError(err)
	}

	keys, values, err := EncodeModels(models)
	if err != nil {
		return s.queryError(err)
	}
	return abci.ResponseQuery{Height: last.Version, Key: keys, Value: values}
}

func (s *StoreApp) queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, s.debug)
	return abci.ResponseQuery{Code: code, Log: log}
}

// splitPath separates the query modifier, everything after "?", from the
// path.
func splitPath(full string) (path, mod string) {
	if i := strings.Index(full, "?"); i >= 0 {
		return full[:i], full[i+1:]
	}
	return full, ""
}

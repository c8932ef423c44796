package server

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"

	"github.com/iov-one/revshare/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const appStateKey = "app_state"

// GenOptions can parse command-line arguments to generate default
// app_state for the genesis file. Keys, if any, is a json representation of
// the freshly generated keys that must be shown to the operator.
// This is application-specific.
type GenOptions func(args []string) (appState json.RawMessage, keys []byte, err error)

// InitCmd adds the application state to the genesis file created by
// `tendermint init` under <home>/config/genesis.json. An existing
// app_state is never overwritten unless force is set.
func InitCmd(gen GenOptions, logger log.Logger, home string, force bool, args []string) ([]byte, error) {
	genFile := filepath.Join(home, "config", "genesis.json")
	logger.Info("Loading genesis file", "path", genFile)

	appState, keys, err := gen(args)
	if err != nil {
		return nil, errors.Wrap(err, "generate app state")
	}
	if err := addGenesisOptions(genFile, appState, force); err != nil {
		return nil, err
	}
	logger.Info("App state written", "path", genFile)
	return keys, nil
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage, force bool) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot read genesis: %s", err)
	}

	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse genesis: %s", err)
	}

	if state, ok := doc[appStateKey]; ok && !force && !isEmptyState(state) {
		return errors.Wrap(errors.ErrState, "app_state already set")
	}

	doc[appStateKey] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal genesis")
	}
	return ioutil.WriteFile(filename, out, 0600)
}

func isEmptyState(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", "{}", `""`:
		return true
	}
	return false
}

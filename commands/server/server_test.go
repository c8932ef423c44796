package server

import (
	"encoding/json"
	"io/ioutil"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/revshare/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func writeGenesis(t *testing.T, content string) (home string, cleanup func()) {
	t.Helper()
	home, err := ioutil.TempDir("", "revshare-init")
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(home, "config"), 0755))
	err = ioutil.WriteFile(filepath.Join(home, "config", "genesis.json"), []byte(content), 0600)
	require.NoError(t, err)
	return home, func() { os.RemoveAll(home) }
}

func TestInitCmd(t *testing.T) {
	gen := func(args []string) (json.RawMessage, []byte, error) {
		return json.RawMessage(`{"cash":[]}`), []byte("keys"), nil
	}

	cases := map[string]struct {
		genesis   string
		force     bool
		wantErr   *errors.Error
		wantState string
	}{
		"no app state": {
			genesis:   `{"chain_id": "test-chain-1"}`,
			wantState: `{"cash":[]}`,
		},
		"empty app state": {
			genesis:   `{"chain_id": "test-chain-1", "app_state": {}}`,
			wantState: `{"cash":[]}`,
		},
		"app state is not overwritten": {
			genesis:   `{"chain_id": "test-chain-1", "app_state": {"cash":[1]}}`,
			wantErr:   errors.ErrState,
			wantState: `{"cash":[1]}`,
		},
		"forced overwrite": {
			genesis:   `{"chain_id": "test-chain-1", "app_state": {"cash":[1]}}`,
			force:     true,
			wantState: `{"cash":[]}`,
		},
		"broken genesis": {
			genesis: `{"chain_id": `,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			home, cleanup := writeGenesis(t, tc.genesis)
			defer cleanup()

			keys, err := InitCmd(gen, log.NewNopLogger(), home, tc.force, nil)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, []byte("keys"), keys)

			bz, err := ioutil.ReadFile(filepath.Join(home, "config", "genesis.json"))
			require.NoError(t, err)
			var doc GenesisDoc
			require.NoError(t, json.Unmarshal(bz, &doc))
			assert.JSONEq(t, tc.wantState, string(doc[appStateKey]))
			assert.JSONEq(t, `"test-chain-1"`, string(doc["chain_id"]))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	os.Unsetenv("REVSHARE_BIND")
	os.Unsetenv("REVSHARE_DEBUG")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{Bind: "tcp://localhost:26658"}, cfg)

	os.Setenv("REVSHARE_BIND", "tcp://0.0.0.0:1234")
	os.Setenv("REVSHARE_DEBUG", "true")
	defer os.Unsetenv("REVSHARE_BIND")
	defer os.Unsetenv("REVSHARE_DEBUG")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{Bind: "tcp://0.0.0.0:1234", Debug: true}, cfg)

	os.Setenv("REVSHARE_DEBUG", "not a bool")
	_, err = LoadConfig()
	assert.True(t, errors.ErrInput.Is(err))
}

func TestStartServer(t *testing.T) {
	home, err := ioutil.TempDir("", "revshare-start")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	var debug bool
	gen := func(dir string, logger log.Logger, d bool) (abci.Application, error) {
		require.Equal(t, home, dir)
		debug = d
		return abci.NewBaseApplication(), nil
	}

	sock := filepath.Join(home, "abci.sock")
	svr, err := startServer(gen, log.NewNopLogger(), home, Config{Bind: "unix://" + sock, Debug: true})
	require.NoError(t, err)
	defer svr.Stop()

	assert.True(t, debug)
	require.True(t, svr.IsRunning())
	conn, err := net.Dial("unix", sock)
	require.NoError(t, err)
	conn.Close()

	require.NoError(t, svr.Stop())
	assert.False(t, svr.IsRunning())
}

func TestStartServerFailures(t *testing.T) {
	working := func(string, log.Logger, bool) (abci.Application, error) {
		return abci.NewBaseApplication(), nil
	}
	broken := func(string, log.Logger, bool) (abci.Application, error) {
		return nil, errors.Wrap(errors.ErrState, "no database")
	}

	cases := map[string]struct {
		gen     AppGenerator
		bind    string
		wantErr *errors.Error
	}{
		"app cannot be created": {gen: broken, bind: "tcp://127.0.0.1:0", wantErr: errors.ErrState},
		"unknown protocol":      {gen: working, bind: "nope://127.0.0.1:0"},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			svr, err := startServer(tc.gen, log.NewNopLogger(), "", Config{Bind: tc.bind})
			require.Error(t, err)
			require.Nil(t, svr)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "%+v", err)
			}
		})
	}
}

package revshared

import (
	"encoding/json"
	"path/filepath"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/crypto"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/x/cash"
	"github.com/iov-one/revshare/x/revenue"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is reported by the application over abci Info.
const Name = "revshared"

// genesis is the app_state layout understood by Initializers.
type genesis struct {
	Cash []cash.GenesisAccount `json:"cash"`
	Conf struct {
		Revenue revenue.Configuration `json:"revenue"`
	} `json:"conf"`
}

// GenInitOptions produces the app_state for a development chain. The first
// argument is the platform owner address, the second the amount minted to
// it. Without arguments a new key is generated and printed.
func GenInitOptions(args []string) (json.RawMessage, []byte, error) {
	var (
		owner  revshare.Address
		amount uint64 = 1000000
		keys   []byte
	)
	if len(args) > 0 {
		addr, err := revshare.ParseAddress(args[0])
		if err != nil {
			return nil, nil, errors.Wrap(err, "owner address")
		}
		owner = addr
	} else {
		addr, out, err := GenerateCoinKey()
		if err != nil {
			return nil, nil, err
		}
		owner, keys = addr, out
	}
	if len(args) > 1 {
		if err := json.Unmarshal([]byte(args[1]), &amount); err != nil {
			return nil, nil, errors.Wrapf(errors.ErrInput, "amount: %s", args[1])
		}
	}

	var g genesis
	g.Cash = []cash.GenesisAccount{{Address: owner, Amount: amount}}
	g.Conf.Revenue.Owner = owner
	raw, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, nil, errors.Wrap(err, "marshal genesis")
	}
	return raw, keys, nil
}

// GenerateApp is used to create a stub for the server start command.
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "revshare.db")
	}
	return Application(Name, Stack(), TxDecoder, dbPath, logger, debug)
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
func GenerateCoinKey() (revshare.Address, []byte, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, nil, errors.Wrap(err, "marshal keys")
	}
	return addr, keys, nil
}

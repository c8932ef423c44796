/*
Package revshared links together all the various components
to construct the revshared app.
*/
package revshared

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/app"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/orm"
	"github.com/iov-one/revshare/store/iavl"
	"github.com/iov-one/revshare/x"
	"github.com/iov-one/revshare/x/cash"
	"github.com/iov-one/revshare/x/revenue"
	"github.com/iov-one/revshare/x/sigs"
	"github.com/iov-one/revshare/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment the sequence even if
		// the message fails
		utils.NewSavepoint().OnDeliver(),
		utils.NewActionTagger(),
	)
}

// Router returns a router dispatching to all supported messages.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	ctrl := cash.NewController()
	cash.RegisterRoutes(r, authFn, ctrl)
	revenue.RegisterRoutes(r, authFn, ctrl)
	sigs.RegisterRoutes(r, authFn)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/revenue/addresses" and "/"
func QueryRouter() revshare.QueryRouter {
	r := revshare.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		revenue.RegisterQuery,
		sigs.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() revshare.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Initializers returns all genesis initializers of the application.
func Initializers() revshare.Initializer {
	return revshare.ChainInitializers(
		cash.Initializer{},
		revenue.Initializer{},
	)
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h revshare.Handler, tx revshare.TxDecoder, dbPath string, logger log.Logger, debug bool) (*app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), context.Background()).
		WithInit(Initializers()).
		WithLogger(logger)
	return app.NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (revshare.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	kv, err := iavl.NewCommitStore(dir, name)
	if err != nil {
		return nil, err
	}
	return kv, nil
}

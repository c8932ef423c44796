/*
Package revshare defines the interfaces shared by the revenue sharing
application: storage, transactions, handlers and queries, together with
helpers to work with addresses, conditions and the call context.

The revenue contract itself lives in x/revenue. Everything it needs from its
host (caller identity, atomic execution, settlement of transfers) is passed in
through the interfaces declared here, so that the contract logic stays a
deterministic state transition over a KVStore.
*/
package revshare

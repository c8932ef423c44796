/*
Package app contains the building blocks of an ABCI application: routing of
messages to handlers, chaining of decorators, the committed store with its
check and deliver caches, and the query endpoint.

Nothing in this package knows about a concrete extension. An application
links extensions together by registering their routes and queries and
passing the resulting handler into NewBaseApp.
*/
package app

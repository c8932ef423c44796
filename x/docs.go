/*
Package x contains the helpers shared by all extensions.

Extensions implement common functionality (Handler, Decorator,
Initializer, etc.) and are combined together by the app package to
construct the revenue sharing application. Each sub-package owns one
concern: signatures, the native balance ledger, atomic execution helpers
and the revenue contract itself.
*/
package x

/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration object, stored under a key derived
from the extension name. The configuration is loaded from the genesis file
(see InitConfig) and can later be changed by its owner with a patch message
(see UpdateHandler).
*/
package gconf

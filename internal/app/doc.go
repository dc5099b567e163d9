// Package app wires the Vendoura storefront together.
//
// Run loads the config and user preferences, builds the immutable
// catalog, creates one shopper session, and hands everything to the UI.
// The session object is the only mutable state; it is created here and
// injected, never reached through a global.
package app

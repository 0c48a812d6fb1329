// Package skynet is a client for a portal of a content-addressed storage
// network. The root package sends requests to the portal; the signed
// mutable registry on top of it lives in [github.com/tarantool/go-skynet/registry].
//
// Keys for the registry are derived with [github.com/tarantool/go-skynet/keys]
// and signatures are produced by [github.com/tarantool/go-skynet/crypto].
package skynet

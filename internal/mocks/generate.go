// Package mocks holds minimock mocks for the interfaces the registry client
// depends on. Regenerate with go generate ./internal/mocks.
package mocks

//go:generate go tool minimock -i github.com/tarantool/go-skynet.Doer -o doer_mock.go -n DoerMock -p mocks
//go:generate go tool minimock -i github.com/tarantool/go-skynet/registry.Transport -o transport_mock.go -n TransportMock -p mocks
//go:generate go tool minimock -i github.com/tarantool/go-skynet/revcache.Cache -o cache_mock.go -n CacheMock -p mocks
//go:generate go tool minimock -i github.com/tarantool/go-skynet/revcache.Client -o etcd_client_mock.go -n EtcdClientMock -p mocks

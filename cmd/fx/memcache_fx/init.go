package memcache_fx

import (
	"go.uber.org/fx"

	mem "civix/pkg/memcache"
)

var Module = fx.Provide(provideMemcacheClient)

func provideMemcacheClient() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}

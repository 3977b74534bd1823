package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

// LayerCacheKeyPrefix namespaces cached city layers in Redis.
const LayerCacheKeyPrefix = "safemap:city:"

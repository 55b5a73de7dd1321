// Package constants holds shared string constants.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Firestore collection names.
const (
	CollectionExchangeRequests = "exchangeRequests"
	CollectionWarehouses       = "warehouses"
	CollectionCreditHistory    = "creditHistory"
)

package config

import "time"

// CatalogConfig describes the remote catalog API and how long a fetched
// product snapshot stays fresh.
type CatalogConfig struct {
	BaseURL  string
	CacheTTL time.Duration
}

func LoadCatalogConfig() CatalogConfig {
	return CatalogConfig{
		BaseURL:  GetEnv("CATALOG_API_URL", "https://dummyjson.com"),
		CacheTTL: time.Duration(GetEnvAsInt("CATALOG_CACHE_TTL_MINUTES", 60)) * time.Minute,
	}
}

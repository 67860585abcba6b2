// Package config provides configuration loading for AccessHub Core.
//
// Configuration is read from a YAML file, merged over built-in defaults,
// then overridden by ACCESSHUB_* environment variables, and finally
// validated. Secrets (the JWT signing key, the advisor API key) should
// always come from the environment rather than the YAML file.
//
// # Usage
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    // configuration is invalid — refuse to start
//	}
package config

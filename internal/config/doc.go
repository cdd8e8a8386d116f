// Package config defines the application's configuration structure and
// loading logic. Configuration is read from an optional YAML file and from
// CONTACTS_-prefixed environment variables, then validated before use.
package config

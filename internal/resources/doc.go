// Package resources embeds the default item, tier and configuration files and
// writes them to disk on first run.
package resources

// Package config provides configuration parsing for the overridable preview
// tool.
//
// The configuration is stored in overridable.toml (or overridable.json) in
// the working directory. Besides server settings it carries the override
// manifest: a list of identifiers and the preset replacement each should
// receive.
//
// # Configuration File Structure
//
//	addr = "localhost:3100"
//	title = "Storefront"
//	dev_mode = true
//	metrics = true
//	log_level = "debug"
//
//	[[overrides]]
//	id = "Card.header"
//	preset = "text"
//	params = { text = "Sale!" }
//
//	[[overrides]]
//	id = "Card.footer"
//	preset = "badge"
//	mode = "append"
//	params = { label = "new" }
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Apply(overridable.DefaultStore, presets); err != nil {
//	    log.Fatal(err)
//	}
package config

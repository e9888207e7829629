// Package config handles loading and discovery of chocimport
// configuration files.
//
// Configuration lives in a .chocimport.yaml file:
//
//	extcalls:
//	  - RENDER_PAGE
//	namespaces:
//	  SVG: svg
//	elements:
//	  - WIDGET
//
// # Usage
//
// Load configuration from a known path:
//
//	cfg, err := config.Load(".chocimport.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or discover it by walking up from a directory:
//
//	cfg, err := config.Find(".")
//
// A missing config file is not an error; both functions return the
// defaults in that case.
package config

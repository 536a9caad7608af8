// Package config loads generator settings.
//
// Settings come from three layers, later layers winning:
//
//  1. reswgen.yaml (optional)
//  2. environment variables prefixed RESWGEN_, with a .env file loaded
//     first when present
//  3. command-line flags, applied by the caller
//
// File format:
//
//	version: "1"
//	namespace: Contoso.App.Strings.en-US
//	advanced: true
//	project:
//	  name: Contoso.Core
//	  library: true
//
// Environment variables: RESWGEN_NAMESPACE, RESWGEN_ADVANCED,
// RESWGEN_PROJECT_NAME, RESWGEN_PROJECT_LIBRARY.
package config

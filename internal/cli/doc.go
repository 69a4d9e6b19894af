// Package cli implements the zietsense command-line interface.
//
// Commands are Cobra commands that load configuration and the machine
// table through loadApp, then hand off to the dashboard, registry and
// status packages.
//
// # Command Structure
//
//	zietsense                   - Interactive dashboard (alt screen, mouse)
//	zietsense machines [--json] - Status table for every machine
//	zietsense show [machine]    - Print one settled dashboard frame
//	zietsense version           - Build information
//	zietsense completion        - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --machine, --registry, --no-color) are defined on
// the root command and override the matching config keys. Config is found
// by searching for .zietsense.yaml upward from the working directory, then
// ~/.config/zietsense/config.yaml.
//
// # Output
//
// --json output uses JSONEnvelope ({success, data, error}) so scripts can
// tell failures apart without parsing text. Human errors are rendered by
// the errors package.
package cli

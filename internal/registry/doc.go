// Package registry provides the central "glue" between flow configuration
// and node implementations.
//
// The Registry stores mappings between the node type identifiers used in
// flow files (e.g., "list_operator") and the compiled Go runners that
// implement them. It also defines the Result contract every runner produces.
//
// During application startup the registry is populated and then validated
// against the loaded flow, so that a flow referencing an unknown node type
// fails before execution rather than mid-run.
package registry

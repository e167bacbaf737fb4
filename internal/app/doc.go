// Package app is the application layer, the only component that wires
// multiple domain components together. It guards the configured group,
// drives the per-message moderation pipeline, and serves the bot
// commands.
package app

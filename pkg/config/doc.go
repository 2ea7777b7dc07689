// Package config loads env-tagged configuration structs, reading an
// optional .env file first. Each component exposes its own Config type;
// the binary composes them into one struct and calls MustLoad at startup.
package config

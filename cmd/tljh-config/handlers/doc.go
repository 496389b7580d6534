// Package handlers implements the logic behind the tljh-config commands.
//
// Handlers hold no cobra dependencies; the commands package parses flags
// and delegates here. Package-level function variables provide test seams
// for filesystem and wizard interactions.
package handlers

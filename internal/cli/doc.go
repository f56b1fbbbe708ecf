// Package cli parses snakecheck arguments, builds the logger and runs a batch
// of graph files through the snake evaluator. Process-level concerns such as
// exit codes are carried by ExitError.
package cli

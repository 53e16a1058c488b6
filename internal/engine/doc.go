// Package engine implements the falling-block game state: the piece
// rotation tables, the 10x20 board, collision checks, locking, line
// clears and scoring.
//
// A Game is driven from outside. Input handlers call Move and Rotate, a
// periodic timer calls Tick, and a renderer reads Snapshot. Nothing in the
// package blocks, spawns goroutines or performs I/O, and no operation
// returns an error: moves that do not fit are simply not applied.
package engine

// Package mcfunction writes voxel models as datapacks of
// block placement commands.
package mcfunction

import (
	"fmt"

	"github.com/unixpickle/silvox"
)

const (
	// DefaultBatchSize keeps each function below the number
	// of commands a game will run from a single function.
	DefaultBatchSize = 10000

	// Air is the block placed by undo commands.
	Air = "minecraft:air"
)

// Commands creates one setblock command per voxel.
func Commands(coords []silvox.Coord, block string) []string {
	res := make([]string, len(coords))
	for i, c := range coords {
		res[i] = setblock(c, block)
	}
	return res
}

// UndoCommands creates the commands which clear the voxels
// placed by Commands.
func UndoCommands(coords []silvox.Coord) []string {
	return Commands(coords, Air)
}

func setblock(c silvox.Coord, block string) string {
	return fmt.Sprintf("setblock %d %d %d %s", c[0], c[1], c[2], block)
}

// Split breaks cmds into consecutive batches of size
// commands. Only the last batch may be shorter.
//
// An empty command list yields no batches.
func Split(cmds []string, size int) [][]string {
	if size <= 0 {
		panic("split: batch size must be positive")
	}
	var res [][]string
	for len(cmds) > size {
		res = append(res, cmds[:size])
		cmds = cmds[size:]
	}
	if len(cmds) > 0 {
		res = append(res, cmds)
	}
	return res
}

// Dispatcher creates the body of a function which calls
// the numBatches sub-functions name0, name1, ... in order.
func Dispatcher(namespace, name string, numBatches int, edition Edition) []string {
	res := make([]string, 0, numBatches+1)
	res = append(res, "gamerule maxCommandChainLength 1000000")
	for i := 0; i < numBatches; i++ {
		res = append(res, "function "+edition.FunctionRef(namespace, batchName(name, i)))
	}
	return res
}

func batchName(name string, i int) string {
	return fmt.Sprintf("%s%d", name, i)
}

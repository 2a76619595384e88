package mcfunction

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/unixpickle/silvox"
	"github.com/unixpickle/silvox/output"
)

const (
	drawName = "draw"
	undoName = "undo"

	description = "3D object made from 2 images"
)

// Edition selects the datapack layout.
type Edition int

const (
	// Java writes data/<namespace>/functions with a
	// pack.mcmeta.
	Java Edition = iota

	// Bedrock writes functions/<namespace> with a
	// manifest.json behavior pack header.
	Bedrock
)

var namespacePattern = regexp.MustCompile(`^[a-z0-9_.-]+$`)

// ValidNamespace reports whether ns may name a datapack
// namespace: lowercase letters, digits, '_', '.' and '-'.
func ValidNamespace(ns string) bool {
	return namespacePattern.MatchString(ns)
}

// FunctionRef returns the name used to call a function
// from another function.
func (e Edition) FunctionRef(namespace, name string) string {
	if e == Bedrock {
		return namespace + "/" + name
	}
	return namespace + ":" + name
}

// Pack describes a datapack to write.
type Pack struct {
	Namespace  string
	Block      string
	PackFormat int

	// Batched splits the commands into sub-functions of at
	// most BatchSize commands, called from a dispatcher.
	// Bedrock packs are always batched.
	Batched   bool
	BatchSize int

	Edition Edition
}

// DefaultPack returns the settings of a plain Java
// datapack.
func DefaultPack() *Pack {
	return &Pack{
		Namespace:  "minhya",
		Block:      "minecraft:white_wool",
		PackFormat: 7,
		BatchSize:  DefaultBatchSize,
		Edition:    Java,
	}
}

// Write creates the datapack in dir, drawing every voxel of
// the model and providing a matching undo function.
func (p *Pack) Write(dir string, model *silvox.Model) error {
	if !ValidNamespace(p.Namespace) {
		return errors.Errorf("write datapack: invalid namespace %q", p.Namespace)
	}
	funcDir := p.functionDir(dir)
	if err := output.CreateDir(funcDir); err != nil {
		return errors.Wrap(err, "write datapack")
	}
	if err := p.writeMetadata(dir); err != nil {
		return errors.Wrap(err, "write datapack")
	}

	draw := Commands(model.Coords, p.Block)
	undo := UndoCommands(model.Coords)
	if !p.Batched && p.Edition == Java {
		header := "gamerule commandModificationBlockLimit 1000000"
		if err := writeFunction(funcDir, drawName, append([]string{header}, draw...)); err != nil {
			return err
		}
		return writeFunction(funcDir, undoName, append([]string{header}, undo...))
	}

	size := p.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}
	for name, cmds := range map[string][]string{drawName: draw, undoName: undo} {
		batches := Split(cmds, size)
		for i, batch := range batches {
			if err := writeFunction(funcDir, batchName(name, i), batch); err != nil {
				return err
			}
		}
		dispatch := Dispatcher(p.Namespace, name, len(batches), p.Edition)
		if err := writeFunction(funcDir, name, dispatch); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pack) functionDir(dir string) string {
	if p.Edition == Bedrock {
		return filepath.Join(dir, "functions", p.Namespace)
	}
	return filepath.Join(dir, "data", p.Namespace, "functions")
}

func (p *Pack) writeMetadata(dir string) error {
	if p.Edition == Bedrock {
		return writeJSON(filepath.Join(dir, "manifest.json"), bedrockManifest())
	}
	meta := map[string]any{
		"pack": map[string]any{
			"pack_format": p.PackFormat,
			"description": description,
		},
	}
	return writeJSON(filepath.Join(dir, "pack.mcmeta"), meta)
}

type manifestHeader struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	UUID             string `json:"uuid"`
	Version          [3]int `json:"version"`
	MinEngineVersion [3]int `json:"min_engine_version"`
}

type manifestModule struct {
	Type    string `json:"type"`
	UUID    string `json:"uuid"`
	Version [3]int `json:"version"`
}

type manifest struct {
	FormatVersion int              `json:"format_version"`
	Header        manifestHeader   `json:"header"`
	Modules       []manifestModule `json:"modules"`
}

func bedrockManifest() *manifest {
	return &manifest{
		FormatVersion: 2,
		Header: manifestHeader{
			Name:             "silvox",
			Description:      description,
			UUID:             uuid.NewString(),
			Version:          [3]int{1, 0, 0},
			MinEngineVersion: [3]int{1, 19, 0},
		},
		Modules: []manifestModule{{
			Type:    "data",
			UUID:    uuid.NewString(),
			Version: [3]int{1, 0, 0},
		}},
	}
}

func writeJSON(path string, obj any) error {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode "+filepath.Base(path))
	}
	return output.WriteBytes(path, data)
}

func writeFunction(funcDir, name string, cmds []string) error {
	path := filepath.Join(funcDir, name+".mcfunction")
	var sb strings.Builder
	for _, c := range cmds {
		sb.WriteString(c)
		sb.WriteByte('\n')
	}
	return output.WriteBytes(path, []byte(sb.String()))
}

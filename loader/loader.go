/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package loader

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/pathtemplates"
)

// Load reads a flat YAML mapping of alias names to path templates from r and
// registers each entry, in document order, on the given registry. Loading
// stops at the first entry that fails to register; prior entries stay
// registered, mirroring AddFromMap.
func Load(r io.Reader, files *pathtemplates.Registry) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			// An empty document registers nothing.
			return nil
		}
		return fmt.Errorf("failed to decode alias map: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("alias map must be a YAML mapping, got %s on line %d", kindName(root.Kind), root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("alias %q: value on line %d must be a path or template string", key.Value, value.Line)
		}
		if err := files.Add(key.Value, value.Value); err != nil {
			return err
		}
	}

	return nil
}

// LoadFile is like Load but reads the alias map from a file.
func LoadFile(path string, files *pathtemplates.Registry) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open alias map: %w", err)
	}
	defer f.Close()

	if err := Load(f, files); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

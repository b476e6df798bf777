// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package doctree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lingtex/pkg/types"
)

// Document is the on-disk representation of one exported document tree.
type Document struct {
	ID    string     `yaml:"id"`
	Nodes []yamlNode `yaml:"nodes"`
}

// yamlNode is the serialized form of a tree node.
type yamlNode struct {
	Kind     string     `yaml:"kind"`
	Text     string     `yaml:"text,omitempty"`
	Key      string     `yaml:"key,omitempty"`
	Tag      string     `yaml:"tag,omitempty"`
	Package  string     `yaml:"package,omitempty"`
	Env      string     `yaml:"environment,omitempty"`
	Intro    string     `yaml:"intro_command,omitempty"`
	Options  string     `yaml:"options,omitempty"`
	Children []yamlNode `yaml:"children,omitempty"`
}

// Load reads a YAML document file and builds the parent-linked node tree
// under a document container node; the document ID defaults to the
// file's base name.
func Load(path string) (string, *types.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading document: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("parsing document: %w", err)
	}

	id := doc.ID
	if id == "" {
		base := filepath.Base(path)
		id = strings.TrimSuffix(base, filepath.Ext(base))
	}

	root, err := build(doc.Nodes)
	if err != nil {
		return "", nil, fmt.Errorf("document %s: %w", id, err)
	}
	return id, root, nil
}

// build converts serialized nodes into a parent-linked tree under a
// document container node.
func build(nodes []yamlNode) (*types.Node, error) {
	root := types.NewNode(types.KindDocument)
	for i, yn := range nodes {
		child, err := buildNode(yn)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		root.Append(child)
	}
	return root, nil
}

func buildNode(yn yamlNode) (*types.Node, error) {
	kind := types.NodeKind(yn.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown node kind %q", yn.Kind)
	}

	n := types.NewNode(kind)
	n.Text = yn.Text
	n.Key = yn.Key
	n.Tag = yn.Tag

	if kind == types.KindList && yn.Package != "" {
		// Unknown package names degrade to no declared convention; the
		// list then falls back to default rendering.
		conv := types.ParseConvention(yn.Package)
		if conv != types.ConventionNone {
			n.Declaration = &types.Declaration{
				Package:      conv,
				Environment:  yn.Env,
				IntroCommand: yn.Intro,
				Options:      yn.Options,
			}
		}
	}

	for i, yc := range yn.Children {
		child, err := buildNode(yc)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		n.Append(child)
	}
	return n, nil
}

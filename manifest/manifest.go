package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/gogpu/wgslc"
)

// Shader is one shader block: a WGSL source file and its Metal output path.
type Shader struct {
	Name   string
	Source string
	Output string
}

// Manifest holds the shaders of a build, in declaration order.
type Manifest struct {
	Shaders []Shader
}

// manifestFile mirrors the top-level structure of a manifest for decoding.
type manifestFile struct {
	Shaders []*shaderBlock `hcl:"shader,block"`
}

type shaderBlock struct {
	Name   string `hcl:"name,label"`
	Source string `hcl:"source"`
	Output string `hcl:"output,optional"`
}

// Load reads and parses a shader manifest from disk.
func Load(path string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse parses a shader manifest held in memory. The filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*Manifest, error) {
	var parsed manifestFile
	diags := gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", filename, diags)
	}

	m := &Manifest{Shaders: make([]Shader, 0, len(parsed.Shaders))}
	seen := make(map[string]bool, len(parsed.Shaders))
	for _, block := range parsed.Shaders {
		if block.Name == "" {
			return nil, fmt.Errorf("manifest %s: shader block with an empty name", filename)
		}
		if seen[block.Name] {
			return nil, fmt.Errorf("manifest %s: duplicate shader %q", filename, block.Name)
		}
		seen[block.Name] = true

		if block.Source == "" {
			return nil, fmt.Errorf("manifest %s: shader %q: source must not be empty", filename, block.Name)
		}
		output := block.Output
		if output == "" {
			output = defaultOutput(block.Source)
		}

		m.Shaders = append(m.Shaders, Shader{
			Name:   block.Name,
			Source: block.Source,
			Output: output,
		})
	}

	wgslc.Logger().Debug("decoded shader manifest", "manifest", filename, "shaders", len(m.Shaders))
	return m, nil
}

// defaultOutput swaps the source extension for .metal.
func defaultOutput(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + ".metal"
}

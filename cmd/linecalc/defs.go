package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/linecalc"
)

// readDefs reads variable definitions from a YAML mapping of names to
// integers, in document order. An empty document defines nothing. Values must
// be YAML integers; floats, including exponent forms like 1e3, are rejected.
func readDefs(r io.Reader) ([]linecalc.Var, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	n := &doc
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil, nil
		}
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: definitions must be a mapping of names to integers", n.Line)
	}
	vars := make([]linecalc.Var, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if !linecalc.IsIdent(k.Value) {
			return nil, fmt.Errorf("line %d: invalid variable name %q", k.Line, k.Value)
		}
		if v.Kind != yaml.ScalarNode || v.ShortTag() != "!!int" {
			return nil, fmt.Errorf("line %d: %s: not an integer", v.Line, k.Value)
		}
		var x int64
		if err := v.Decode(&x); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", v.Line, k.Value, err)
		}
		vars = append(vars, linecalc.Var{Name: k.Value, Value: x})
	}
	return vars, nil
}

func readDefsFile(name string) ([]linecalc.Var, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vars, err := readDefs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return vars, nil
}

// define assigns the value of expr to name, as though the line "name = expr"
// were entered.
func define(it *linecalc.Interpreter, name, expr string) error {
	if !linecalc.IsIdent(name) {
		return fmt.Errorf("setting %q: invalid variable name", name)
	}
	if _, err := it.Line(name + " = " + expr); err != nil {
		return fmt.Errorf("setting %s: %w", name, err)
	}
	return nil
}

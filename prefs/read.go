// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/someonegg/stablematch"
)

// Read parses the semicolon format. Blank lines are skipped.
func Read(r io.Reader) ([]stablematch.Person, error) {
	var people []stablematch.Person

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, fieldSep)
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
			if fields[i] == "" {
				return nil, fmt.Errorf("line %d: %w", n,
					&stablematch.MalformedInputError{Person: fields[0], Reason: fmt.Sprintf("has an empty field %d", i)})
			}
		}

		people = append(people, stablematch.Person{
			ID:          fields[0],
			Preferences: fields[1:],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return people, nil
}

// ReadYAML parses a YAML mapping of id to preference list, keeping the
// mapping's order.
func ReadYAML(r io.Reader) ([]stablematch.Person, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml decode: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %w", root.Line,
			&stablematch.MalformedInputError{Reason: "is not a mapping of id to preferences"})
	}

	people := make([]stablematch.Person, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]

		var order []string
		if err := val.Decode(&order); err != nil {
			return nil, fmt.Errorf("line %d: %w", val.Line,
				&stablematch.MalformedInputError{Person: key.Value, Reason: "has a bad preference list: " + err.Error()})
		}
		people = append(people, stablematch.Person{ID: key.Value, Preferences: order})
	}

	return people, nil
}

// Load reads a preference file and builds its table.
func Load(file string) (*stablematch.PreferenceTable, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	read := Read
	if isYAML(file) {
		read = ReadYAML
	}

	people, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	table, err := stablematch.NewPreferenceTable(people)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return table, nil
}

// ReadReport decodes a report written by WriteReport in the JSON or YAML
// format. JSON is read as YAML.
func ReadReport(r io.Reader) (*Report, error) {
	var report Report
	if err := yaml.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	return &report, nil
}

func isYAML(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

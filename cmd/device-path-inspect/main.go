// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/blinklabs-io/godevicepath"
	"gopkg.in/yaml.v3"
)

type cmdFlags struct {
	flagset   *flag.FlagSet
	hexInput  string
	file      string
	instances bool
	output    string
}

func newCmdFlags() *cmdFlags {
	f := &cmdFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.hexInput,
		"hex",
		"",
		"device path bytes as a hex string",
	)
	f.flagset.StringVar(
		&f.file,
		"file",
		"",
		"file containing raw device path bytes (defaults to stdin)",
	)
	f.flagset.BoolVar(
		&f.instances,
		"instances",
		false,
		"group nodes by path instance",
	)
	f.flagset.StringVar(
		&f.output,
		"output",
		"text",
		"output format: text, json, or yaml",
	)
	return f
}

type fieldReport struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

type nodeReport struct {
	Type    string        `json:"type"    yaml:"type"`
	Kind    string        `json:"kind"    yaml:"kind"`
	Length  uint16        `json:"length"  yaml:"length"`
	Fields  []fieldReport `json:"fields,omitempty"  yaml:"fields,omitempty"`
	Raw     string        `json:"raw,omitempty"     yaml:"raw,omitempty"`
	Unknown bool          `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

type instanceReport struct {
	Instance int          `json:"instance" yaml:"instance"`
	Nodes    []nodeReport `json:"nodes"    yaml:"nodes"`
}

func main() {
	f := newCmdFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	data, err := readInput(f)
	if err != nil {
		logger.Error("failed to read input", "error", err)
		os.Exit(1)
	}
	path, err := devicepath.NewPathFromBytes(data)
	if err != nil {
		logger.Error("failed to parse device path", "error", err)
		os.Exit(1)
	}

	if f.instances {
		reports := []instanceReport{}
		iter := path.InstanceIter()
		for i := 0; ; i++ {
			instance := iter.Next()
			if instance == nil {
				break
			}
			reports = append(reports, instanceReport{
				Instance: i,
				Nodes:    reportNodes(instance.NodeIter(), logger),
			})
		}
		renderInstances(f.output, reports)
		return
	}
	renderNodes(f.output, reportNodes(path.NodeIter(), logger))
}

func readInput(f *cmdFlags) ([]byte, error) {
	if f.hexInput != "" {
		cleaned := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' {
				return -1
			}
			return r
		}, f.hexInput)
		return hex.DecodeString(cleaned)
	}
	if f.file != "" {
		return os.ReadFile(f.file)
	}
	return io.ReadAll(os.Stdin)
}

func reportNodes(iter *devicepath.NodeIter, logger *slog.Logger) []nodeReport {
	reports := []nodeReport{}
	for {
		node := iter.Next()
		if node == nil {
			break
		}
		report := nodeReport{
			Type:   node.FullType().String(),
			Length: node.Length(),
		}
		fields, err := devicepath.DumpFields(node)
		switch {
		case errors.Is(err, devicepath.ErrUnsupportedType):
			logger.Warn(
				"unknown node type",
				"type", node.FullType().String(),
			)
			report.Unknown = true
			report.Raw = hex.EncodeToString(node.Data())
		case err != nil:
			logger.Warn(
				"malformed node",
				"type", node.FullType().String(),
				"error", err,
			)
			report.Raw = hex.EncodeToString(node.Data())
		default:
			layout, _ := devicepath.LookupLayout(node.FullType())
			report.Kind = layout.Name
			for _, field := range fields {
				report.Fields = append(report.Fields, fieldReport{
					Name:  field.Name,
					Value: field.Value,
				})
			}
		}
		reports = append(reports, report)
	}
	return reports
}

func renderNodes(format string, reports []nodeReport) {
	switch format {
	case "json":
		renderMarshalled(json.MarshalIndent(reports, "", "  "))
	case "yaml":
		renderMarshalled(yaml.Marshal(reports))
	default:
		for _, report := range reports {
			printNodeText(report, "")
		}
	}
}

func renderInstances(format string, reports []instanceReport) {
	switch format {
	case "json":
		renderMarshalled(json.MarshalIndent(reports, "", "  "))
	case "yaml":
		renderMarshalled(yaml.Marshal(reports))
	default:
		for _, instance := range reports {
			fmt.Printf("instance %d:\n", instance.Instance)
			for _, report := range instance.Nodes {
				printNodeText(report, "  ")
			}
		}
	}
}

func printNodeText(report nodeReport, indent string) {
	name := report.Kind
	if name == "" {
		name = "unknown"
	}
	fmt.Printf(
		"%s%s %s length=%d\n",
		indent,
		name,
		report.Type,
		report.Length,
	)
	for _, field := range report.Fields {
		fmt.Printf("%s  %s: %s\n", indent, field.Name, field.Value)
	}
	if report.Raw != "" {
		fmt.Printf("%s  raw: %s\n", indent, report.Raw)
	}
}

func renderMarshalled(data []byte, err error) {
	if err != nil {
		fmt.Printf("failed to render output: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

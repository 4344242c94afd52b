// Copyright (c) 2025 assetforge
// SPDX-License-Identifier: Apache-2.0
// This file is part of the assetdump library.

package assetdump_test

import (
	"fmt"

	"github.com/assetforge/assetdump"
)

const exampleDocument = "External References\n\n\n" +
	"NavMeshBuildSetting\n" +
	"\tagentRadius 0.5 (float)\n" +
	"\ttileSize 256 (int)\n" +
	"\n\n"

func ExampleParse() {
	doc, err := assetdump.Parse([]byte(exampleDocument))
	if err != nil {
		panic(err)
	}
	radius, _ := doc.Field("agentRadius").Float64()
	fmt.Println(doc.TypeName, radius)
	// Output: NavMeshBuildSetting 0.5
}

type exampleSetting struct {
	AgentRadius float32
	TileSize    int32
}

func (s *exampleSetting) UnmarshalDump(d *assetdump.Decoder) error {
	return d.Record("NavMeshBuildSetting", func(d *assetdump.Decoder, field string) error {
		switch field {
		case "agentRadius":
			v, err := d.Float32()
			s.AgentRadius = v
			return err
		case "tileSize":
			v, err := d.Int32()
			s.TileSize = v
			return err
		default:
			return d.Skip()
		}
	})
}

func ExampleUnmarshal() {
	var setting exampleSetting
	if err := assetdump.Unmarshal([]byte(exampleDocument), &setting); err != nil {
		panic(err)
	}
	fmt.Println(setting.AgentRadius, setting.TileSize)
	// Output: 0.5 256
}

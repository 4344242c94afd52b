// assetdump: decoder for a game editor's text exports of asset records.
// This file is part of the assetdump package.
// Copyright (c) 2025 by assetforge. Refer to LICENSE for more information.
package assetdump_test

import (
	"fmt"
	"strings"

	. "github.com/assetforge/assetdump"
)

// document composes a full dump: banner, bare root identifier, body lines,
// and the two fixed trailing lines.
func document(root string, body ...string) []byte {
	var b strings.Builder
	b.WriteString("External References\n\n\n")
	b.WriteString(root)
	b.WriteByte('\n')
	for _, line := range body {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\n\n")
	return []byte(b.String())
}

// tabularBody renders one "m_Blob" byte sequence of the given count in the
// dense tabular shape, one row header per 25 values. Values cycle i*11 mod
// 256 so row boundaries are visible in assertions.
func tabularBody(count int) []string {
	lines := []string{
		"\tm_Blob  (vector)",
		fmt.Sprintf("\t\tsize %d (int)", count),
	}
	for row := 0; row < count; row += 25 {
		end := row + 25
		if end > count {
			end = count
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "\t\tdata (UInt8) #%d:", row)
		for i := row; i < end; i++ {
			fmt.Fprintf(&sb, " %d", i*11%256)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func tabularWant(count int) []byte {
	want := make([]byte, count)
	for i := range want {
		want[i] = byte(i * 11 % 256)
	}
	return want
}

// fieldProbe decodes a one-record document, delegating every field value to
// fn. Tests use it to aim a single decode operation at a crafted line.
type fieldProbe struct {
	fn func(d *Decoder) error
}

func (p *fieldProbe) UnmarshalDump(d *Decoder) error {
	return d.Record("Probe", func(d *Decoder, _ string) error {
		return p.fn(d)
	})
}

// fieldRecorder collects field names, discarding every value.
type fieldRecorder struct {
	names []string
}

func (r *fieldRecorder) UnmarshalDump(d *Decoder) error {
	return d.Record("", func(d *Decoder, field string) error {
		r.names = append(r.names, field)
		return d.Skip()
	})
}

// blobRecord is the typed target for sequence-shape tests.
type blobRecord struct {
	blob []byte
}

func (r *blobRecord) UnmarshalDump(d *Decoder) error {
	return d.Record("BlobRecord", func(d *Decoder, field string) error {
		switch field {
		case "m_Blob":
			v, err := d.Bytes()
			r.blob = v
			return err
		default:
			return d.Skip()
		}
	})
}

// The navMesh* types mirror the records of the navmesh integration fixture;
// their UnmarshalDump methods are written the way the assetdump-gen tool
// emits them.

type navMeshData struct {
	Name         string
	SourceBounds aabb
	Tiles        []navMeshTile
	Build        navMeshBuildSetting
	Timestamp    int64
	Version      uint32
	AreaCost     uint16
	AreaFlags    uint16
	Padding      uint8
}

func (t *navMeshData) UnmarshalDump(d *Decoder) error {
	return d.Record("NavMeshData", func(d *Decoder, field string) error {
		switch field {
		case "m_Name":
			v, err := d.String()
			if err != nil {
				return err
			}
			t.Name = v
			return nil
		case "m_SourceBounds":
			return t.SourceBounds.UnmarshalDump(d)
		case "m_NavMeshTiles":
			t.Tiles = t.Tiles[:0]
			return d.Seq(func(d *Decoder, _ int) error {
				var e navMeshTile
				if err := e.UnmarshalDump(d); err != nil {
					return err
				}
				t.Tiles = append(t.Tiles, e)
				return nil
			})
		case "m_NavMeshBuildSetting":
			return t.Build.UnmarshalDump(d)
		case "m_Timestamp":
			v, err := d.Int64()
			if err != nil {
				return err
			}
			t.Timestamp = v
			return nil
		case "m_Version":
			v, err := d.Uint32()
			if err != nil {
				return err
			}
			t.Version = v
			return nil
		case "m_AreaCost":
			v, err := d.Uint16()
			if err != nil {
				return err
			}
			t.AreaCost = v
			return nil
		case "m_AreaFlags":
			v, err := d.Uint16()
			if err != nil {
				return err
			}
			t.AreaFlags = v
			return nil
		case "m_Padding":
			v, err := d.Uint8()
			if err != nil {
				return err
			}
			t.Padding = v
			return nil
		default:
			return d.Skip()
		}
	})
}

type aabb struct {
	Center Vector3
	Extent Vector3
}

func (t *aabb) UnmarshalDump(d *Decoder) error {
	return d.Record("AABB", func(d *Decoder, field string) error {
		switch field {
		case "m_Center":
			v, err := d.Vector3()
			if err != nil {
				return err
			}
			t.Center = v
			return nil
		case "m_Extent":
			v, err := d.Vector3()
			if err != nil {
				return err
			}
			t.Extent = v
			return nil
		default:
			return d.Skip()
		}
	})
}

type navMeshTile struct {
	MeshData []byte
	Hash     Hash128
}

func (t *navMeshTile) UnmarshalDump(d *Decoder) error {
	return d.Record("NavMeshTileData", func(d *Decoder, field string) error {
		switch field {
		case "m_MeshData":
			v, err := d.Bytes()
			if err != nil {
				return err
			}
			t.MeshData = v
			return nil
		case "m_Hash":
			v, err := d.Hash128()
			if err != nil {
				return err
			}
			t.Hash = v
			return nil
		default:
			return d.Skip()
		}
	})
}

type navMeshBuildSetting struct {
	AgentTypeID           int32
	AgentRadius           float32
	AgentHeight           float32
	AgentSlope            float32
	AgentClimb            float32
	LedgeDropHeight       float32
	MaxJumpAcrossDistance float32
	MinRegionArea         float32
	ManualCellSize        int32
	TileSize              int32
	AccuratePlacement     int32
}

func (t *navMeshBuildSetting) UnmarshalDump(d *Decoder) error {
	return d.Record("NavMeshBuildSetting", func(d *Decoder, field string) error {
		switch field {
		case "agentTypeID":
			v, err := d.Int32()
			if err != nil {
				return err
			}
			t.AgentTypeID = v
			return nil
		case "agentRadius":
			v, err := d.Float32()
			if err != nil {
				return err
			}
			t.AgentRadius = v
			return nil
		case "agentHeight":
			v, err := d.Float32()
			if err != nil {
				return err
			}
			t.AgentHeight = v
			return nil
		case "agentSlope":
			v, err := d.Float32()
			if err != nil {
				return err
			}
			t.AgentSlope = v
			return nil
		case "agentClimb":
			v, err := d.Float32()
			if err != nil {
				return err
			}
			t.AgentClimb = v
			return nil
		case "ledgeDropHeight":
			v, err := d.Float32()
			if err != nil {
				return err
			}
			t.LedgeDropHeight = v
			return nil
		case "maxJumpAcrossDistance":
			v, err := d.Float32()
			if err != nil {
				return err
			}
			t.MaxJumpAcrossDistance = v
			return nil
		case "minRegionArea":
			v, err := d.Float32()
			if err != nil {
				return err
			}
			t.MinRegionArea = v
			return nil
		case "manualCellSize":
			v, err := d.Int32()
			if err != nil {
				return err
			}
			t.ManualCellSize = v
			return nil
		case "tileSize":
			v, err := d.Int32()
			if err != nil {
				return err
			}
			t.TileSize = v
			return nil
		case "accuratePlacement":
			v, err := d.Int32()
			if err != nil {
				return err
			}
			t.AccuratePlacement = v
			return nil
		default:
			return d.Skip()
		}
	})
}

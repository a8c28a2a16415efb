package zltable

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Binary format, written by cmd/zonetablegen and read back by Unmarshal,
// which the go:embed loader that cmd/zonetablegen -out-go writes calls. Hand-rolled and little-endian throughout, the same way
// internal/pmtiles encodes its header and directory — there is no reason to
// reach for gob or a schema-based codec for a format this small and this
// stable.
//
//	magic      [4]byte  "ZLT1"
//	degPixels  int32
//	for level 0..5:
//	  count    uint32
//	  entries  count * (key uint32, leafIndex uint16)
//	leafCount  uint32
//	leaves     leafCount * leaf record:
//	  kind     uint8
//	  KindUniform: codeLen uint8, code [codeLen]byte
//	  KindBitmap:  idx0 uint16, idx1 uint16, bits uint64
//	  KindPixmap:  64 * uint16
const magic = "ZLT1"

// Marshal serializes t into the wire format described above.
func (t *Table) Marshal() []byte {
	var buf bytes.Buffer
	buf.WriteString(magic)

	var scratch [8]byte
	binary.LittleEndian.PutUint32(scratch[:4], uint32(t.degPixels))
	buf.Write(scratch[:4])

	for level := 0; level <= MaxLevel; level++ {
		entries := t.zoomLevels[level].entries
		binary.LittleEndian.PutUint32(scratch[:4], uint32(len(entries)))
		buf.Write(scratch[:4])
		for _, e := range entries {
			binary.LittleEndian.PutUint32(scratch[:4], uint32(e.key))
			buf.Write(scratch[:4])
			binary.LittleEndian.PutUint16(scratch[:2], e.leafIndex)
			buf.Write(scratch[:2])
		}
	}

	binary.LittleEndian.PutUint32(scratch[:4], uint32(len(t.leaves)))
	buf.Write(scratch[:4])
	for _, l := range t.leaves {
		buf.WriteByte(byte(l.Kind))
		switch l.Kind {
		case KindUniform:
			buf.WriteByte(byte(len(l.Code)))
			buf.WriteString(l.Code)
		case KindBitmap:
			binary.LittleEndian.PutUint16(scratch[:2], l.BitmapIdx[0])
			buf.Write(scratch[:2])
			binary.LittleEndian.PutUint16(scratch[:2], l.BitmapIdx[1])
			buf.Write(scratch[:2])
			binary.LittleEndian.PutUint64(scratch[:8], l.BitmapBits)
			buf.Write(scratch[:8])
		case KindPixmap:
			for _, sub := range l.Pixmap {
				binary.LittleEndian.PutUint16(scratch[:2], sub)
				buf.Write(scratch[:2])
			}
		}
	}

	return buf.Bytes()
}

// Unmarshal decodes a Table previously produced by Marshal. The result is
// trusted static data (produced by the offline generator, not user input),
// but malformed bytes still return an error rather than panicking.
func Unmarshal(data []byte) (*Table, error) {
	r := bytes.NewReader(data)

	hdr := make([]byte, 4)
	if _, err := r.Read(hdr); err != nil || string(hdr) != magic {
		return nil, fmt.Errorf("zltable: bad magic bytes %q", hdr)
	}

	var degPixels int32
	if err := binary.Read(r, binary.LittleEndian, &degPixels); err != nil {
		return nil, fmt.Errorf("zltable: reading degPixels: %w", err)
	}

	t := &Table{degPixels: degPixels}

	for level := 0; level <= MaxLevel; level++ {
		var count uint32
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, fmt.Errorf("zltable: reading level %d count: %w", level, err)
		}
		entries := make([]tileEntry, count)
		for i := range entries {
			var key uint32
			var leafIndex uint16
			if err := binary.Read(r, binary.LittleEndian, &key); err != nil {
				return nil, fmt.Errorf("zltable: reading level %d entry %d key: %w", level, i, err)
			}
			if err := binary.Read(r, binary.LittleEndian, &leafIndex); err != nil {
				return nil, fmt.Errorf("zltable: reading level %d entry %d leafIndex: %w", level, i, err)
			}
			entries[i] = tileEntry{key: TileKey(key), leafIndex: leafIndex}
		}
		t.zoomLevels[level] = zoomLevel{entries: entries}
	}

	var leafCount uint32
	if err := binary.Read(r, binary.LittleEndian, &leafCount); err != nil {
		return nil, fmt.Errorf("zltable: reading leaf count: %w", err)
	}
	t.leaves = make([]Leaf, leafCount)
	for i := range t.leaves {
		var kindByte uint8
		if err := binary.Read(r, binary.LittleEndian, &kindByte); err != nil {
			return nil, fmt.Errorf("zltable: reading leaf %d kind: %w", i, err)
		}
		kind := Kind(kindByte)
		leaf := Leaf{Kind: kind}

		switch kind {
		case KindUniform:
			var codeLen uint8
			if err := binary.Read(r, binary.LittleEndian, &codeLen); err != nil {
				return nil, fmt.Errorf("zltable: reading leaf %d code length: %w", i, err)
			}
			code := make([]byte, codeLen)
			if _, err := r.Read(code); err != nil {
				return nil, fmt.Errorf("zltable: reading leaf %d code: %w", i, err)
			}
			leaf.Code = string(code)
		case KindBitmap:
			if err := binary.Read(r, binary.LittleEndian, &leaf.BitmapIdx); err != nil {
				return nil, fmt.Errorf("zltable: reading leaf %d bitmap indices: %w", i, err)
			}
			if err := binary.Read(r, binary.LittleEndian, &leaf.BitmapBits); err != nil {
				return nil, fmt.Errorf("zltable: reading leaf %d bitmap bits: %w", i, err)
			}
		case KindPixmap:
			if err := binary.Read(r, binary.LittleEndian, &leaf.Pixmap); err != nil {
				return nil, fmt.Errorf("zltable: reading leaf %d pixmap: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("zltable: leaf %d has unknown kind %d", i, kindByte)
		}

		t.leaves[i] = leaf
	}

	return t, nil
}

package zltable

import "testing"

func TestSearchTileKey(t *testing.T) {
	z := zoomLevel{entries: []tileEntry{
		{key: 10, leafIndex: 1},
		{key: 20, leafIndex: 2},
		{key: 30, leafIndex: 3},
	}}

	if idx, ok := z.searchTileKey(20); !ok || idx != 2 {
		t.Errorf("searchTileKey(20) = (%d, %v), want (2, true)", idx, ok)
	}
	if _, ok := z.searchTileKey(25); ok {
		t.Errorf("searchTileKey(25) found a match, want none")
	}
	if _, ok := z.searchTileKey(5); ok {
		t.Errorf("searchTileKey(5) found a match, want none (below range)")
	}
	if _, ok := z.searchTileKey(40); ok {
		t.Errorf("searchTileKey(40) found a match, want none (above range)")
	}
}

func TestSearchTileKey_Empty(t *testing.T) {
	var z zoomLevel
	if _, ok := z.searchTileKey(0); ok {
		t.Errorf("searchTileKey on empty level found a match")
	}
}

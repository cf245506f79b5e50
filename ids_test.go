package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocateIDSmallestAbsent(t *testing.T) {
	tests := []struct {
		name     string
		existing []int
		want     int
	}{
		{"empty", nil, 1},
		{"contiguous", []int{1, 2, 3}, 4},
		{"gap at start", []int{2, 3}, 1},
		{"gap in middle", []int{1, 3, 4}, 2},
		{"sparse", []int{1, 2, 5, 9}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := make(map[int]bool)
			for _, n := range tt.existing {
				set[n] = true
			}
			assert.Equal(t, tt.want, allocateID(set))
		})
	}
}

func TestDeletedIDIsReused(t *testing.T) {
	ed := newTestEditor(t, nil)
	for i := 0; i < 3; i++ {
		mustAdd(t, ed, KindRectangle)
	}
	ed.Select("el-2")
	_, err := ed.DeleteSelected()
	assert.NoError(t, err)

	assert.Equal(t, 2, allocateID(ed.store.liveIDs()))
	el := mustAdd(t, ed, KindCircle)
	assert.Equal(t, "el-2", el.ID)
}

func TestParseID(t *testing.T) {
	n, ok := parseID("el-12")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	for _, bad := range []string{"", "el-", "el-x", "el-0", "el--3", "shape-4", "12"} {
		_, ok := parseID(bad)
		assert.False(t, ok, bad)
	}
}

func TestAllocatorIgnoresForeignIDs(t *testing.T) {
	ed := newTestEditor(t, nil)
	ed.store.Replace([]Element{
		{ID: "custom", Kind: KindRectangle, Width: 40, Height: 40, ZIndex: 1},
		{ID: "el-1", Kind: KindRectangle, Width: 40, Height: 40, ZIndex: 2},
	})
	el := mustAdd(t, ed, KindText)
	assert.Equal(t, "el-2", el.ID)
}

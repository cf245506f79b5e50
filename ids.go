package main

import (
	"strconv"
	"strings"
)

// allocateID returns the smallest positive integer not in existing.
func allocateID(existing map[int]bool) int {
	n := 1
	for existing[n] {
		n++
	}
	return n
}

func formatID(n int) string {
	return idPrefix + strconv.Itoa(n)
}

// parseID extracts n from "el-n". Ids in any other form report ok=false.
func parseID(id string) (int, bool) {
	rest, found := strings.CutPrefix(id, idPrefix)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches errors that report their own message without the chain, as zerr.Error does.
type messager interface {
	Message() string
}

// metadataer matches errors that carry key/value context, as zerr.Error does.
type metadataer interface {
	Metadata() map[string]any
}

// joined matches errors built with errors.Join.
type joined interface {
	Unwrap() []error
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain while errors expose Message.
// Joined errors contribute the entries of each member in order.
// The first other error contributes its full text and ends the walk.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	for current := err; current != nil; {
		if j, ok := current.(joined); ok {
			for _, member := range j.Unwrap() {
				entries = append(entries, collectErrorEntries(member)...)
			}
			break
		}

		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if md, ok := current.(metadataer); ok {
			entry.Metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

func formatErrorEntries(entries []ErrorEntry) string {
	lines := make([]string, 0, len(entries)*2)

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		for _, k := range sortedKeys(entry.Metadata) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}

// metadataArgs flattens the metadata of every entry into slog key/value pairs.
func metadataArgs(entries []ErrorEntry) []any {
	var args []any
	for _, entry := range entries {
		for _, k := range sortedKeys(entry.Metadata) {
			args = append(args, k, entry.Metadata[k])
		}
	}
	return args
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

package man_test

import (
	"testing"

	"github.com/abhiramnarayana/grman/internal/man"
)

func entriesWithIDs(identifiers ...string) []man.ArgumentEntry {
	entries := make([]man.ArgumentEntry, 0, len(identifiers))
	for _, identifier := range identifiers {
		entries = append(entries, man.ArgumentEntry{ID: identifier})
	}
	return entries
}

func TestClassifyArguments(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		entries  []man.ArgumentEntry
		expected man.CrossReferences
	}{
		{
			name:     "iface_and_vrf",
			entries:  entriesWithIDs("IFACE", "VRF"),
			expected: man.CrossReferences{Interface: true, VRF: true},
		},
		{
			name:     "name_counts_as_interface",
			entries:  entriesWithIDs("NAME"),
			expected: man.CrossReferences{Interface: true},
		},
		{
			name:     "nexthop_ids",
			entries:  entriesWithIDs("NH", "NH_ID", "SEGLIST"),
			expected: man.CrossReferences{NextHop: true},
		},
		{
			name:     "address_ids",
			entries:  entriesWithIDs("ADDR", "IP", "DEST"),
			expected: man.CrossReferences{Address: true},
		},
		{
			name:     "unrelated_ids_set_nothing",
			entries:  entriesWithIDs("MTU", "COUNT"),
			expected: man.CrossReferences{},
		},
		{
			name:     "no_entries",
			entries:  nil,
			expected: man.CrossReferences{},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			if actual := man.ClassifyArguments(testCase.entries); actual != testCase.expected {
				t.Errorf("unexpected classification: got %+v, want %+v", actual, testCase.expected)
			}
		})
	}
}

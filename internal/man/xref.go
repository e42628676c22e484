package man

// CrossReferences flags which sibling pages the collected arguments relate
// to. Classification is a fixed id lookup tied to the shell's argument
// vocabulary, not derived from node types.
type CrossReferences struct {
	Interface bool
	Address   bool
	NextHop   bool
	VRF       bool
}

var (
	interfaceArgumentIDs = map[string]struct{}{"IFACE": {}, "NAME": {}}
	vrfArgumentIDs       = map[string]struct{}{"VRF": {}}
	nexthopArgumentIDs   = map[string]struct{}{"NH": {}, "NH_ID": {}, "SEGLIST": {}}
	addressArgumentIDs   = map[string]struct{}{"ADDR": {}, "IP": {}, "DEST": {}}
)

// ClassifyArguments tags the collected argument entries into the semantic
// categories that drive the SEE ALSO cross-references.
func ClassifyArguments(entries []ArgumentEntry) CrossReferences {
	var references CrossReferences
	for _, entry := range entries {
		if _, matches := interfaceArgumentIDs[entry.ID]; matches {
			references.Interface = true
		} else if _, matches := vrfArgumentIDs[entry.ID]; matches {
			references.VRF = true
		} else if _, matches := nexthopArgumentIDs[entry.ID]; matches {
			references.NextHop = true
		} else if _, matches := addressArgumentIDs[entry.ID]; matches {
			references.Address = true
		}
	}
	return references
}

package grammar

import "github.com/abhiramnarayana/grman/internal/types"

// Builtin returns the grammar forest of the grcli shell: the command tree
// used for per-command pages and the global option list. The shapes mirror
// what the shell's parser builds at startup, so pages rendered from this
// forest match what the interactive shell actually accepts.
func Builtin() Forest {
	return Forest{
		Commands: []Node{
			interfaceCommands(),
			addressCommands(),
			routeCommands(),
			nexthopCommands(),
			Cmd(
				"ping DEST [vrf VRF] [count COUNT] [delay DELAY]",
				"Send ICMP echo requests to a destination address.",
			),
			Cmd(
				"traceroute DEST [vrf VRF]",
				"Display the hops taken by packets to a destination address.",
			),
		},
		Options: []Node{
			WithHelp(
				Option(Or(types.NoID, Str(types.NoID, "-h"), Str(types.NoID, "--help"))),
				"Show usage help and exit.",
			),
			WithHelp(
				Option(Or(types.NoID, Str(types.NoID, "-V"), Str(types.NoID, "--version"))),
				"Print the version and exit.",
			),
			WithHelp(
				Option(Or(types.NoID, Str(types.NoID, "-e"), Str(types.NoID, "--err-exit"))),
				"Abort on the first error encountered.",
			),
			WithHelp(
				Option(Or(types.NoID, Str(types.NoID, "-x"), Str(types.NoID, "--trace-commands"))),
				"Print executed commands.",
			),
			WithHelp(
				Option(Seq(
					types.NoID,
					Or(types.NoID, Str(types.NoID, "-s"), Str(types.NoID, "--socket")),
					Dyn("path"),
				)),
				"Path to the control plane API socket.",
			),
			WithHelp(
				Option(Seq(
					types.NoID,
					Or(types.NoID, Str(types.NoID, "-f"), Str(types.NoID, "--file")),
					Dyn("file"),
				)),
				"Read commands from a file instead of standard input.",
			),
		},
	}
}

func interfaceCommands() Node {
	showVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "show"), "Display interface status."),
		Option(Seq(types.NoID, Str(types.NoID, "name"), Dyn("IFACE"))),
	)
	addVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "add"), "Create a new interface."),
		Str(types.NoID, "name"),
		Dyn("NAME"),
		Subset(
			Seq(types.NoID, Str(types.NoID, "vrf"), Uint("VRF")),
			Seq(types.NoID, Str(types.NoID, "mtu"), Uint("MTU")),
			Seq(types.NoID, Str(types.NoID, "mac"), Re("MAC", "^[0-9a-f:]+$")),
		),
	)
	setVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "set"), "Modify interface attributes."),
		Dyn("IFACE"),
		Many(Or(
			types.NoID,
			Seq(types.NoID, Str(types.NoID, "vrf"), Uint("VRF")),
			Seq(types.NoID, Str(types.NoID, "mtu"), Uint("MTU")),
			Or(types.NoID, Str(types.NoID, "up"), Str(types.NoID, "down")),
		)),
	)
	delVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "del"), "Delete an interface."),
		Dyn("IFACE"),
	)
	return Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "interface"), "Manage network interfaces."),
		Or("interface", showVariant, addVariant, setVariant, delVariant),
	)
}

func addressCommands() Node {
	showVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "show"), "Display network addresses."),
		Option(Seq(types.NoID, Str(types.NoID, "iface"), Dyn("IFACE"))),
	)
	addVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "add"), "Assign an address to an interface."),
		Dyn("ADDR"),
		Str(types.NoID, "iface"),
		Dyn("IFACE"),
	)
	delVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "del"), "Remove an address from an interface."),
		Dyn("ADDR"),
		Str(types.NoID, "iface"),
		Dyn("IFACE"),
	)
	return Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "address"), "Manage interface network addresses."),
		Or("address", showVariant, addVariant, delVariant),
	)
}

func routeCommands() Node {
	showVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "show"), "Display the routing table."),
		Option(Seq(types.NoID, Str(types.NoID, "vrf"), Uint("VRF"))),
	)
	addVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "add"), "Insert a new route."),
		Dyn("DEST"),
		Str(types.NoID, "via"),
		Dyn("NH"),
		Option(Seq(types.NoID, Str(types.NoID, "vrf"), Uint("VRF"))),
	)
	delVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "del"), "Remove a route."),
		Dyn("DEST"),
		Option(Seq(types.NoID, Str(types.NoID, "vrf"), Uint("VRF"))),
	)
	return Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "route"), "Manage IP routes."),
		Or("route", showVariant, addVariant, delVariant),
	)
}

func nexthopCommands() Node {
	showVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "show"), "Display nexthop entries."),
		Option(Seq(types.NoID, Str(types.NoID, "vrf"), Uint("VRF"))),
	)
	addVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "add"), "Create a nexthop."),
		Str(types.NoID, "id"),
		Uint("NH_ID"),
		Str(types.NoID, "address"),
		Dyn("ADDR"),
		Option(Seq(types.NoID, Str(types.NoID, "iface"), Dyn("IFACE"))),
	)
	delVariant := Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "del"), "Delete a nexthop."),
		Str(types.NoID, "id"),
		Uint("NH_ID"),
	)
	return Seq(
		types.NoID,
		WithHelp(Str(types.NoID, "nexthop"), "Manage nexthop entries."),
		Or("nexthop", showVariant, addVariant, delVariant),
	)
}

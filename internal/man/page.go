package man

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/abhiramnarayana/grman/internal/config"
	"github.com/abhiramnarayana/grman/internal/grammar"
	"github.com/abhiramnarayana/grman/internal/types"
)

const (
	nameHeading          = "# NAME\n\n"
	synopsisHeading      = "# SYNOPSIS\n\n"
	argumentsHeading     = "# ARGUMENTS\n\n"
	seeAlsoHeading       = "# SEE ALSO\n\n"
	optionsHeading       = "# OPTIONS\n\n"
	environmentHeading   = "# ENVIRONMENT\n\n"
	reportingBugsHeading = "# REPORTING BUGS\n\n"

	interfaceTopic = "interface"
	addressTopic   = "address"
	nexthopTopic   = "nexthop"
	routeTopic     = "route"
)

// defaultArgumentSentences supplies the fallback description printed for an
// argument that carries no help text.
var defaultArgumentSentences = map[types.NodeKind]string{
	types.KindUint: "Unsigned integer.",
	types.KindInt:  "Integer.",
	types.KindStr:  "String.",
	types.KindDyn:  "Dynamic value.",
}

// TitleUnderline returns the "=" rule matching the display-cell width of the
// title, followed by the blank line separating it from the first section.
func TitleUnderline(title string) string {
	return strings.Repeat("=", runewidth.StringWidth(title)) + "\n\n"
}

// Renderer assembles complete documentation pages from a grammar forest and
// the static configuration strings. A Renderer holds no per-request state;
// every render is a pure function of its inputs.
type Renderer struct {
	settings config.Settings
	logger   *zap.Logger
}

// NewRenderer constructs a Renderer. A nil logger disables traversal logging.
func NewRenderer(settings config.Settings, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{settings: settings, logger: logger}
}

// CommandPage renders the manual page for one command resolved from the
// top-level forest. An unknown name or a failed argument collection yields
// an error and no partial page.
func (renderer *Renderer) CommandPage(forest []grammar.Node, requestedName string) (string, error) {
	resolution, resolveError := Resolve(forest, requestedName)
	if resolveError != nil {
		return "", resolveError
	}
	renderer.logger.Debug(
		"resolved command",
		zap.String("name", resolution.Name),
		zap.Bool("standalone", resolution.Standalone),
	)

	var builder strings.Builder
	renderer.writePageHeader(&builder, resolution.Name, resolution.Blurb)
	if resolution.Standalone {
		renderer.writeStandaloneBody(&builder, resolution.Target)
		return builder.String(), nil
	}
	if bodyError := renderer.writeCommandBody(&builder, resolution); bodyError != nil {
		return "", bodyError
	}
	return builder.String(), nil
}

// writePageHeader prints the title line, its underline rule, and the NAME section.
func (renderer *Renderer) writePageHeader(builder *strings.Builder, commandName, blurb string) {
	title := fmt.Sprintf(
		"%s-%s %d \"%s %s\"",
		strings.ToUpper(renderer.settings.Product), commandName,
		renderer.settings.Section,
		renderer.settings.Project, renderer.settings.Version,
	)
	builder.WriteString(title + "\n")
	builder.WriteString(TitleUnderline(title))
	builder.WriteString(nameHeading)
	fmt.Fprintf(builder, "**%s-%s** -- %s\n\n", renderer.settings.Product, commandName, blurb)
}

// writeCommandBody prints SYNOPSIS, ARGUMENTS, and SEE ALSO for a
// sequence-shape resolution whose target is the variants alternation.
func (renderer *Renderer) writeCommandBody(builder *strings.Builder, resolution Resolution) error {
	builder.WriteString(synopsisHeading)

	alternation := resolution.Target
	renderer.logger.Debug("rendering variants", zap.Int("count", alternation.ChildCount()))
	for index := 0; index < alternation.ChildCount(); index++ {
		variant, variantError := alternation.Child(index)
		if variantError != nil {
			continue
		}
		fmt.Fprintf(builder, "**%s** ", resolution.Name)
		writeSynopsis(builder, variant, 0)
		builder.WriteString("\n")
		if variantHelp := lookupVariantHelp(variant); variantHelp != "" {
			builder.WriteString("    " + variantHelp + "\n")
		}
		builder.WriteString("\n")
	}

	builder.WriteString(argumentsHeading)

	entries, collectError := CollectVariantArguments(alternation)
	if collectError != nil {
		return collectError
	}
	renderer.logger.Debug("collected arguments", zap.Int("count", len(entries)))

	references := ClassifyArguments(entries)
	for _, entry := range entries {
		writeArgumentHelp(builder, entry.Node)
	}

	builder.WriteString(seeAlsoHeading)
	renderer.writeShellReference(builder)
	renderer.writeSiblingReferences(builder, resolution.Name, references)
	builder.WriteString("\n")
	return nil
}

// lookupVariantHelp finds the help shown under a variant's synopsis line.
// Sequence variants carry it on their first child; other variants carry it
// directly.
func lookupVariantHelp(variant grammar.Node) string {
	if grammar.Kind(variant) == types.KindSeq {
		if variant.ChildCount() < 2 {
			return ""
		}
		leadingChild, leadingError := variant.Child(0)
		if leadingError != nil {
			return ""
		}
		return leadingChild.Help()
	}
	return variant.Help()
}

// writeArgumentHelp prints one ARGUMENTS entry: the id heading, then either
// the node's help text or the default sentence for its kind.
func writeArgumentHelp(builder *strings.Builder, node grammar.Node) {
	fmt.Fprintf(builder, "#### _%s_\n\n", node.ID())
	if helpText := node.Help(); helpText != "" {
		builder.WriteString(helpText + "\n\n")
		return
	}
	if sentence, known := defaultArgumentSentences[grammar.Kind(node)]; known {
		builder.WriteString(sentence + "\n\n")
	}
}

// writeStandaloneBody prints the SYNOPSIS and SEE ALSO sections of a
// command-shape page: the full command id with its leading word in bold.
func (renderer *Renderer) writeStandaloneBody(builder *strings.Builder, commandNode grammar.Node) {
	builder.WriteString(synopsisHeading)
	name, usageTail, hasTail := strings.Cut(commandNode.ID(), " ")
	if hasTail {
		fmt.Fprintf(builder, "**%s** %s\n\n", name, usageTail)
	} else {
		fmt.Fprintf(builder, "**%s**\n\n", name)
	}
	builder.WriteString(seeAlsoHeading)
	renderer.writeShellReference(builder)
	builder.WriteString("\n")
}

// writeShellReference prints the always-present reference to the shell's own page.
func (renderer *Renderer) writeShellReference(builder *strings.Builder) {
	fmt.Fprintf(builder, "**%s**(%d)", renderer.settings.Product, renderer.settings.Section)
}

// writeSiblingReferences appends the cross-references derived from the
// collected arguments, skipping the page currently being rendered.
func (renderer *Renderer) writeSiblingReferences(builder *strings.Builder, commandName string, references CrossReferences) {
	appendReference := func(topic string) {
		fmt.Fprintf(builder, ", **%s-%s**(%d)", renderer.settings.Product, topic, renderer.settings.Section)
	}
	if references.Interface && commandName != interfaceTopic {
		appendReference(interfaceTopic)
	}
	if references.Address && commandName != addressTopic {
		appendReference(addressTopic)
	}
	if references.NextHop && commandName != nexthopTopic {
		appendReference(nexthopTopic)
	}
	if references.VRF && commandName != routeTopic {
		appendReference(routeTopic)
	}
}

// MainPage renders the shell's own page: global option synopsis and listing,
// environment variables, and the bug-report footer.
func (renderer *Renderer) MainPage(options []grammar.Node) string {
	var builder strings.Builder

	title := fmt.Sprintf(
		"%s %d \"%s %s\"",
		strings.ToUpper(renderer.settings.Product),
		renderer.settings.Section,
		renderer.settings.Project, renderer.settings.Version,
	)
	builder.WriteString(title + "\n")
	builder.WriteString(TitleUnderline(title))
	builder.WriteString(nameHeading)
	fmt.Fprintf(&builder, "**%s** -- %s\n\n", renderer.settings.Product, renderer.settings.ShellHelp)

	builder.WriteString(synopsisHeading)
	fmt.Fprintf(&builder, "**%s**\n", renderer.settings.Product)
	for _, optionNode := range options {
		writeOptionSyntax(&builder, optionNode, optionSynopsisMode)
	}
	builder.WriteString("...\n\n")

	builder.WriteString(optionsHeading)
	for _, optionNode := range options {
		writeOptionSyntax(&builder, optionNode, optionListMode)
	}

	builder.WriteString(environmentHeading)
	for _, variable := range renderer.settings.ExpandedEnvironment() {
		fmt.Fprintf(&builder, "#### **%s**\n\n", variable.Name)
		builder.WriteString(variable.Description + "\n\n")
	}

	builder.WriteString(seeAlsoHeading)
	builder.WriteString(renderer.settings.SeeAlso + "\n\n")

	builder.WriteString(reportingBugsHeading)
	builder.WriteString(renderer.settings.BugReport + "\n")

	return builder.String()
}

package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// ListingDark is the default color scheme for disassembly listings.
var ListingDark = styles.Register(chroma.MustNewStyle("regdis-dark", chroma.StyleEntries{
	chroma.Text:       "#FFFFFF",
	chroma.Background: "bg:#1e1e1e",

	chroma.Keyword: "#FFFFFF", // mnemonics in white

	chroma.Name:         "#7C9C9D", // variable and register names in teal
	chroma.NameVariable: "#7C9C9D", // .tN temporaries
	chroma.NameLabel:    "#FFD700", // jump-target and current markers in gold

	chroma.LiteralNumber: "#FF5F87", // offsets and immediates in pink
	chroma.LiteralString: "#EACD53", // constant strings in golden

	chroma.GenericHeading: "#C792EA", // nested disassembly headers

	chroma.Operator:    "#FFFFFF",
	chroma.Punctuation: "#FFFFFF",
}))

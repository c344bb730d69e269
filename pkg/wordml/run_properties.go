package wordml

// Run property translators: the children of w:rPr. Almost all of them are
// ST_OnOff flags or single-value elements; the declarative constructors in
// builder.go keep each one a one-liner.

var (
	BoldTranslator          = BoolFlag("w:b", "bold")
	BoldCSTranslator        = BoolFlag("w:bCs", "boldComplexScript")
	ItalicTranslator        = BoolFlag("w:i", "italic")
	ItalicCSTranslator      = BoolFlag("w:iCs", "italicComplexScript")
	CapsTranslator          = BoolFlag("w:caps", "caps")
	SmallCapsTranslator     = BoolFlag("w:smallCaps", "smallCaps")
	StrikeTranslator        = BoolFlag("w:strike", "strike")
	DoubleStrikeTranslator  = BoolFlag("w:dstrike", "doubleStrike")
	OutlineTranslator       = BoolFlag("w:outline", "outline")
	ShadowTranslator        = BoolFlag("w:shadow", "shadow")
	EmbossTranslator        = BoolFlag("w:emboss", "emboss")
	ImprintTranslator       = BoolFlag("w:imprint", "imprint")
	NoProofTranslator       = BoolFlag("w:noProof", "noProof")
	HiddenTranslator        = BoolFlag("w:vanish", "hidden")
	WebHiddenTranslator     = BoolFlag("w:webHidden", "webHidden")
	RightToLeftTranslator   = BoolFlag("w:rtl", "rtl")
	UnderlineTranslator     = StringValue("w:u", "underline")
	ColorTranslator         = StringValue("w:color", "color")
	HighlightTranslator     = StringValue("w:highlight", "highlight")
	VertAlignTranslator     = StringValue("w:vertAlign", "vertAlign")
	RunStyleTranslator      = StringValue("w:rStyle", "runStyleId")
	EffectTranslator        = StringValue("w:effect", "effect")
	FontSizeTranslator      = IntValue("w:sz", "fontSize")
	FontSizeCSTranslator    = IntValue("w:szCs", "fontSizeComplexScript")
	KerningTranslator       = IntValue("w:kern", "kerning")
	PositionTranslator      = IntValue("w:position", "position")
	LetterSpacingTranslator = IntValue("w:spacing", "letterSpacing")
)

// FontsTranslator handles w:rFonts, which spreads one logical property over
// four script-specific attributes.
var FontsTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:rFonts",
	ModelKey: "fonts",
	Handlers: []AttrHandler{
		StringAttr("w:ascii", "ascii"),
		StringAttr("w:hAnsi", "hAnsi"),
		StringAttr("w:eastAsia", "eastAsia"),
		StringAttr("w:cs", "cs"),
		StringAttr("w:hint", "hint"),
	},
})

// ShadingTranslator handles w:shd. The same instance serves run, paragraph
// and table-cell properties; translators carry no per-conversion state, so
// sharing is safe.
var ShadingTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:shd",
	ModelKey: "shading",
	Handlers: []AttrHandler{
		StringAttr("w:val", "pattern"),
		StringAttr("w:color", "color"),
		StringAttr("w:fill", "fill"),
	},
})

// LanguageTranslator handles w:lang.
var LanguageTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:lang",
	ModelKey: "lang",
	Handlers: []AttrHandler{
		StringAttr("w:val", "value"),
		StringAttr("w:eastAsia", "eastAsia"),
		StringAttr("w:bidi", "bidi"),
	},
})

// runPropertyTranslators is the decode emission order for w:rPr children.
var runPropertyTranslators = []*Translator{
	RunStyleTranslator,
	FontsTranslator,
	BoldTranslator,
	BoldCSTranslator,
	ItalicTranslator,
	ItalicCSTranslator,
	CapsTranslator,
	SmallCapsTranslator,
	StrikeTranslator,
	DoubleStrikeTranslator,
	OutlineTranslator,
	ShadowTranslator,
	EmbossTranslator,
	ImprintTranslator,
	NoProofTranslator,
	HiddenTranslator,
	WebHiddenTranslator,
	ColorTranslator,
	LetterSpacingTranslator,
	KerningTranslator,
	PositionTranslator,
	FontSizeTranslator,
	FontSizeCSTranslator,
	HighlightTranslator,
	UnderlineTranslator,
	EffectTranslator,
	VertAlignTranslator,
	RightToLeftTranslator,
	ShadingTranslator,
	LanguageTranslator,
}

// RunPropertiesTranslator handles w:rPr wherever it appears: inside runs,
// paragraph marks, level definitions and style definitions.
var RunPropertiesTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:rPr",
	ModelKey: "runProperties",
	Children: runPropertyTranslators,
})

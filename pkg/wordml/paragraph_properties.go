package wordml

// Paragraph property translators: the children of w:pPr.

var (
	KeepNextTranslator            = BoolFlag("w:keepNext", "keepNext")
	KeepLinesTranslator           = BoolFlag("w:keepLines", "keepLines")
	PageBreakBeforeTranslator     = BoolFlag("w:pageBreakBefore", "pageBreakBefore")
	WidowControlTranslator        = BoolFlag("w:widowControl", "widowControl")
	SuppressAutoHyphensTranslator = BoolFlag("w:suppressAutoHyphens", "suppressAutoHyphens")
	BidiTranslator                = BoolFlag("w:bidi", "bidi")
	ContextualSpacingTranslator   = BoolFlag("w:contextualSpacing", "contextualSpacing")
	MirrorIndentsTranslator       = BoolFlag("w:mirrorIndents", "mirrorIndents")
	ParagraphStyleTranslator      = StringValue("w:pStyle", "styleId")
	TextAlignTranslator           = StringValue("w:jc", "textAlign")
	OutlineLevelTranslator        = IntValue("w:outlineLvl", "outlineLevel")
)

// IndentTranslator handles w:ind.
var IndentTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:ind",
	ModelKey: "indent",
	Handlers: []AttrHandler{
		IntAttr("w:left", "left"),
		IntAttr("w:right", "right"),
		IntAttr("w:start", "start"),
		IntAttr("w:end", "end"),
		IntAttr("w:firstLine", "firstLine"),
		IntAttr("w:hanging", "hanging"),
	},
})

// SpacingTranslator handles w:spacing on paragraphs.
var SpacingTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:spacing",
	ModelKey: "spacing",
	Handlers: []AttrHandler{
		IntAttr("w:before", "before"),
		IntAttr("w:after", "after"),
		IntAttr("w:line", "line"),
		StringAttr("w:lineRule", "lineRule"),
	},
})

// NumberingReferenceTranslator handles w:numPr, the paragraph's pointer
// into numbering.xml.
var NumberingReferenceTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:numPr",
	ModelKey: "numbering",
	Children: []*Translator{
		IntValue("w:ilvl", "ilvl"),
		IntValue("w:numId", "numId"),
	},
})

// TabStopTranslator translates one w:tab stop; the position doubles as the
// discriminator within w:tabs.
var TabStopTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:tab",
	ModelKey: "tab",
	Handlers: []AttrHandler{
		IntAttr("w:pos", "pos"),
		StringAttr("w:val", "align"),
		StringAttr("w:leader", "leader"),
	},
})

// TabsTranslator handles w:tabs. The element is a bare container for
// repeated w:tab children, so the model value is the keyed collection
// itself rather than a wrapping object.
var TabsTranslator = NewCustomTranslator("w:tabs", "tabs", nil,
	func(t *Translator, nodes []*Element) (any, bool) {
		if len(nodes) == 0 {
			return nil, false
		}
		return EncodePropertiesByKey(nodes[0], "w:tab", "pos", TabStopTranslator)
	},
	func(t *Translator, attrs ModelMap) (*Element, bool) {
		stops := DecodePropertiesByKey(attrs, t.ModelKey, "pos", TabStopTranslator)
		if len(stops) == 0 {
			return nil, false
		}
		el := NewElement(t.XMLName)
		el.Children = stops
		return el, true
	},
)

// paragraphPropertyTranslators is the decode emission order for w:pPr
// children.
var paragraphPropertyTranslators = []*Translator{
	ParagraphStyleTranslator,
	KeepNextTranslator,
	KeepLinesTranslator,
	PageBreakBeforeTranslator,
	WidowControlTranslator,
	NumberingReferenceTranslator,
	SuppressAutoHyphensTranslator,
	BidiTranslator,
	SpacingTranslator,
	IndentTranslator,
	ContextualSpacingTranslator,
	MirrorIndentsTranslator,
	TabsTranslator,
	TextAlignTranslator,
	OutlineLevelTranslator,
	ShadingTranslator,
	RunPropertiesTranslator,
}

// ParagraphPropertiesTranslator handles w:pPr wherever it appears.
var ParagraphPropertiesTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:pPr",
	ModelKey: "paragraphProperties",
	Children: paragraphPropertyTranslators,
})

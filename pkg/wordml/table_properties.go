package wordml

// Table, row and cell property translators. These are bound directly into
// their parents rather than registered: several of them reuse element names
// (w:jc) that already resolve to paragraph-level translators in the
// registry.

var (
	TableStyleTranslator         = StringValue("w:tblStyle", "tableStyleId")
	TableJustificationTranslator = StringValue("w:jc", "tableJustification")
	TableCaptionTranslator       = StringValue("w:tblCaption", "caption")
	TableOverlapTranslator       = StringValue("w:tblOverlap", "overlap")
	BidiVisualTranslator         = BoolFlag("w:bidiVisual", "bidiVisual")
	TableLayoutTranslator        = StringValueAt("w:tblLayout", "w:type", "tableLayout")

	TableWidthTranslator  = WidthValue("w:tblW", "tableWidth")
	TableIndentTranslator = WidthValue("w:tblInd", "tableIndent")
	CellSpacingTranslator = WidthValue("w:tblCellSpacing", "cellSpacing")
	CellWidthTranslator   = WidthValue("w:tcW", "cellWidth")
	WidthBeforeTranslator = WidthValue("w:wBefore", "widthBefore")
	WidthAfterTranslator  = WidthValue("w:wAfter", "widthAfter")
)

// TableLookTranslator handles w:tblLook's conditional-formatting switches.
var TableLookTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:tblLook",
	ModelKey: "tableLook",
	Handlers: []AttrHandler{
		StringAttr("w:val", "value"),
		OptionalBoolAttr("w:firstRow", "firstRow"),
		OptionalBoolAttr("w:lastRow", "lastRow"),
		OptionalBoolAttr("w:firstColumn", "firstColumn"),
		OptionalBoolAttr("w:lastColumn", "lastColumn"),
		OptionalBoolAttr("w:noHBand", "noHBand"),
		OptionalBoolAttr("w:noVBand", "noVBand"),
	},
})

// tablePropertyTranslators is the decode emission order for w:tblPr
// children.
var tablePropertyTranslators = []*Translator{
	TableStyleTranslator,
	BidiVisualTranslator,
	TableWidthTranslator,
	TableJustificationTranslator,
	CellSpacingTranslator,
	TableIndentTranslator,
	ShadingTranslator,
	TableLayoutTranslator,
	TableCaptionTranslator,
	TableOverlapTranslator,
	TableLookTranslator,
}

// TablePropertiesTranslator handles w:tblPr.
var TablePropertiesTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:tblPr",
	ModelKey: "tableProperties",
	Children: tablePropertyTranslators,
})

// RowHeightTranslator handles w:trHeight.
var RowHeightTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:trHeight",
	ModelKey: "rowHeight",
	Handlers: []AttrHandler{
		IntAttr("w:val", "value"),
		StringAttr("w:hRule", "rule"),
	},
})

var (
	CantSplitTranslator    = BoolFlag("w:cantSplit", "cantSplit")
	RepeatHeaderTranslator = BoolFlag("w:tblHeader", "repeatHeader")
	GridBeforeTranslator   = IntValue("w:gridBefore", "gridBefore")
	GridAfterTranslator    = IntValue("w:gridAfter", "gridAfter")
)

// RowPropertiesTranslator handles w:trPr.
var RowPropertiesTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:trPr",
	ModelKey: "rowProperties",
	Children: []*Translator{
		GridBeforeTranslator,
		GridAfterTranslator,
		WidthBeforeTranslator,
		WidthAfterTranslator,
		CantSplitTranslator,
		RowHeightTranslator,
		RepeatHeaderTranslator,
		TableJustificationTranslator,
	},
})

var (
	GridSpanTranslator      = IntValue("w:gridSpan", "gridSpan")
	VerticalAlignTranslator = StringValue("w:vAlign", "verticalAlign")
	NoWrapTranslator        = BoolFlag("w:noWrap", "noWrap")
	FitTextTranslator       = BoolFlag("w:tcFitText", "fitText")
	HideMarkTranslator      = BoolFlag("w:hideMark", "hideMark")
)

// VerticalMergeTranslator handles w:vMerge. A bare <w:vMerge/> continues
// the merge started in the row above; the custom encode lets the element
// survive with no attributes instead of vanishing as empty.
var VerticalMergeTranslator = NewCustomTranslator("w:vMerge", "verticalMerge",
	[]AttrHandler{StringAttr("w:val", "verticalMerge")},
	func(t *Translator, nodes []*Element) (any, bool) {
		if len(nodes) == 0 {
			return nil, false
		}
		if v, ok := t.Handlers[0].Encode(nodes[0].Attrs); ok {
			return v, true
		}
		return "continue", true
	},
	func(t *Translator, attrs ModelMap) (*Element, bool) {
		v, ok := attrs.String(t.ModelKey)
		if !ok {
			return nil, false
		}
		el := NewElement(t.XMLName)
		if v != "continue" {
			el.SetAttr(t.Handlers[0].Attr, v)
		}
		return el, true
	},
)

// CellPropertiesTranslator handles w:tcPr.
var CellPropertiesTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:tcPr",
	ModelKey: "cellProperties",
	Children: []*Translator{
		CellWidthTranslator,
		GridSpanTranslator,
		VerticalMergeTranslator,
		ShadingTranslator,
		NoWrapTranslator,
		FitTextTranslator,
		VerticalAlignTranslator,
		HideMarkTranslator,
	},
})

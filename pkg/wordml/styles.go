package wordml

// Translators for word/styles.xml. Styles demonstrate the string-keyed
// collection shape: w:style elements are discriminated by w:styleId, not by
// an integer index.

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

var (
	StyleNameTranslator      = StringValue("w:name", "name")
	AliasesTranslator        = StringValue("w:aliases", "aliases")
	BasedOnTranslator        = StringValue("w:basedOn", "basedOn")
	NextStyleTranslator      = StringValue("w:next", "next")
	LinkedStyleTranslator    = StringValue("w:link", "link")
	UIPriorityTranslator     = IntValue("w:uiPriority", "uiPriority")
	SemiHiddenTranslator     = BoolFlag("w:semiHidden", "semiHidden")
	UnhideWhenUsedTranslator = BoolFlag("w:unhideWhenUsed", "unhideWhenUsed")
	QuickFormatTranslator    = BoolFlag("w:qFormat", "quickFormat")
	LockedTranslator         = BoolFlag("w:locked", "locked")
)

// stylePropertyTranslators is the decode emission order for w:style
// children.
var stylePropertyTranslators = []*Translator{
	StyleNameTranslator,
	AliasesTranslator,
	BasedOnTranslator,
	NextStyleTranslator,
	LinkedStyleTranslator,
	UIPriorityTranslator,
	SemiHiddenTranslator,
	UnhideWhenUsedTranslator,
	QuickFormatTranslator,
	LockedTranslator,
	ParagraphPropertiesTranslator,
	RunPropertiesTranslator,
	TablePropertiesTranslator,
}

// StyleTranslator handles one w:style definition. The w:styleId attribute
// is the discriminator within the part's style collection; w:default and
// w:customStyle are secondary flags, so absence stays absence instead of
// the ST_OnOff presence-implies-on rule.
var StyleTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:style",
	ModelKey: "style",
	Handlers: []AttrHandler{
		StringAttr("w:type", "type"),
		StringAttr("w:styleId", "styleId"),
		OptionalBoolAttr("w:default", "default"),
		OptionalBoolAttr("w:customStyle", "customStyle"),
	},
	Children: stylePropertyTranslators,
})

// RunDefaultTranslator and ParagraphDefaultTranslator are wrapper elements
// holding the document-wide property defaults.
var RunDefaultTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:rPrDefault",
	ModelKey: "runDefault",
	Children: []*Translator{RunPropertiesTranslator},
})

var ParagraphDefaultTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:pPrDefault",
	ModelKey: "paragraphDefault",
	Children: []*Translator{ParagraphPropertiesTranslator},
})

// DocDefaultsTranslator handles w:docDefaults.
var DocDefaultsTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:docDefaults",
	ModelKey: "docDefaults",
	Children: []*Translator{
		RunDefaultTranslator,
		ParagraphDefaultTranslator,
	},
})

// StylesTranslator handles the w:styles part root: the document defaults
// followed by the style collection keyed by styleId.
var StylesTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:styles",
	ModelKey: "styles",
	Defaults: map[string]string{
		"xmlns:w": wordNamespace,
	},
	Children: []*Translator{
		DocDefaultsTranslator,
	},
	Keyed: []KeyedChildSpec{
		{XMLName: "w:style", ModelKey: "styles", DiscriminatorKey: "styleId", Item: StyleTranslator},
	},
})

package wordml

// Translators for word/numbering.xml: list level definitions, abstract
// numbering definitions, and the concrete numbering instances that point at
// them. This is the deepest composition in the package — levels nest inside
// abstract definitions, overrides nest inside instances, and every layer is
// a keyed collection over an integer discriminator.

var (
	StartTranslator        = IntValue("w:start", "start")
	NumFmtTranslator       = StringValue("w:numFmt", "numFmt")
	LevelTextTranslator    = StringValue("w:lvlText", "lvlText")
	LevelJcTranslator      = StringValue("w:lvlJc", "lvlJc")
	LevelRestartTranslator = IntValue("w:lvlRestart", "lvlRestart")
	PicBulletIdTranslator  = IntValue("w:lvlPicBulletId", "picBulletId")
	IsLegalTranslator      = BoolFlag("w:isLgl", "isLegal")
	SuffixTranslator       = StringValue("w:suff", "suffix")
)

// levelPropertyTranslators is the decode emission order for w:lvl children.
var levelPropertyTranslators = []*Translator{
	StartTranslator,
	NumFmtTranslator,
	LevelRestartTranslator,
	ParagraphStyleTranslator,
	IsLegalTranslator,
	SuffixTranslator,
	LevelTextTranslator,
	PicBulletIdTranslator,
	LevelJcTranslator,
	ParagraphPropertiesTranslator,
	RunPropertiesTranslator,
}

// LevelTranslator handles one w:lvl definition. The w:ilvl attribute is
// the discriminator when levels are collected under an abstract definition.
var LevelTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:lvl",
	ModelKey: "level",
	Handlers: []AttrHandler{
		IntAttr("w:ilvl", "ilvl"),
		StringAttr("w:tplc", "templateCode"),
		OptionalBoolAttr("w:tentative", "tentative"),
	},
	Children: levelPropertyTranslators,
})

var StartOverrideTranslator = IntValue("w:startOverride", "startOverride")

// LevelOverrideTranslator handles w:lvlOverride inside a w:num instance:
// either a start override, a full replacement level, or both.
var LevelOverrideTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:lvlOverride",
	ModelKey: "levelOverride",
	Handlers: []AttrHandler{
		IntAttr("w:ilvl", "ilvl"),
	},
	Children: []*Translator{
		StartOverrideTranslator,
		LevelTranslator,
	},
})

var (
	NsidTranslator           = StringValue("w:nsid", "nsid")
	MultiLevelTypeTranslator = StringValue("w:multiLevelType", "multiLevelType")
	TemplateTranslator       = StringValue("w:tmpl", "template")
	NameTranslator           = StringValue("w:name", "name")
	StyleLinkTranslator      = StringValue("w:styleLink", "styleLink")
	NumStyleLinkTranslator   = StringValue("w:numStyleLink", "numStyleLink")
)

// AbstractNumTranslator handles w:abstractNum: a handful of identity
// properties plus the level definitions keyed by ilvl.
var AbstractNumTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:abstractNum",
	ModelKey: "abstractNum",
	Handlers: []AttrHandler{
		IntAttr("w:abstractNumId", "abstractNumId"),
	},
	Children: []*Translator{
		NsidTranslator,
		MultiLevelTypeTranslator,
		TemplateTranslator,
		NameTranslator,
		StyleLinkTranslator,
		NumStyleLinkTranslator,
	},
	Keyed: []KeyedChildSpec{
		{XMLName: "w:lvl", ModelKey: "levels", DiscriminatorKey: "ilvl", Item: LevelTranslator},
	},
})

var AbstractNumIdTranslator = IntValue("w:abstractNumId", "abstractNumId")

// NumTranslator handles w:num: the concrete instance pointing at an
// abstract definition, with optional per-level overrides keyed by ilvl.
var NumTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:num",
	ModelKey: "num",
	Handlers: []AttrHandler{
		IntAttr("w:numId", "numId"),
	},
	Children: []*Translator{
		AbstractNumIdTranslator,
	},
	Keyed: []KeyedChildSpec{
		{XMLName: "w:lvlOverride", ModelKey: "overrides", DiscriminatorKey: "ilvl", Item: LevelOverrideTranslator},
	},
})

// NumberingTranslator handles the w:numbering part root. Abstract
// definitions come before instances in the decoded output, matching the
// schema's content model.
var NumberingTranslator = NewElementTranslator(TranslatorSpec{
	XMLName:  "w:numbering",
	ModelKey: "numbering",
	Defaults: map[string]string{
		"xmlns:w": wordNamespace,
	},
	Keyed: []KeyedChildSpec{
		{XMLName: "w:abstractNum", ModelKey: "abstractNums", DiscriminatorKey: "abstractNumId", Item: AbstractNumTranslator},
		{XMLName: "w:num", ModelKey: "nums", DiscriminatorKey: "numId", Item: NumTranslator},
	},
})

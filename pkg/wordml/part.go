package wordml

// Whole-part conversion entry points. A part conversion is a single
// synchronous depth-first walk: the root translator delegates each child to
// its bound translator and assembles one model attribute bag, and the
// inverse walk rebuilds the element tree from the bag. Both directions are
// side-effect free and safe to run concurrently over different trees.

var partTranslatorsByXMLName = map[string]*Translator{
	NumberingTranslator.XMLName: NumberingTranslator,
	StylesTranslator.XMLName:    StylesTranslator,
}

var partTranslatorsByType = map[string]*Translator{
	NumberingTranslator.ModelKey: NumberingTranslator,
	StylesTranslator.ModelKey:    StylesTranslator,
}

// EncodePart converts a parsed part root into a document-model node. The
// node's type is the part translator's model key ("numbering", "styles").
// A part with no recognized content yields a node with an empty attribute
// bag: the part itself is present even when everything in it is absent.
func EncodePart(root *Element) (*ModelNode, error) {
	if root == nil {
		return nil, NewConversionError("", "nil part root")
	}
	tr, ok := partTranslatorsByXMLName[root.Name]
	if !ok {
		return nil, NewConversionError(root.Name, "no translator for part root")
	}

	attrs := ModelMap{}
	if v, encoded := tr.Encode([]*Element{root}); encoded {
		if obj, isObject := asModelMap(v); isObject {
			attrs = obj
		}
	}

	GetLogger().WithFields(Fields{
		"part": tr.ModelKey,
		"keys": len(attrs),
	}).Debug("encoded part to model")

	return &ModelNode{Type: tr.ModelKey, Attrs: attrs}, nil
}

// DecodePart rebuilds a part's element tree from a document-model node.
func DecodePart(node *ModelNode) (*Element, error) {
	if node == nil {
		return nil, NewConversionError("", "nil model node")
	}
	tr, ok := partTranslatorsByType[node.Type]
	if !ok {
		return nil, NewConversionError(node.Type, "no translator for model type")
	}

	attrs := node.Attrs
	if attrs == nil {
		attrs = ModelMap{}
	}
	el, decoded := tr.Decode(ModelMap{tr.ModelKey: attrs})
	if !decoded {
		return nil, NewConversionError(node.Type, "part failed to decode")
	}

	GetLogger().WithFields(Fields{
		"part":     node.Type,
		"children": len(el.Children),
	}).Debug("decoded model to part")

	return el, nil
}

// convertibleParts lists the package parts the framework has part-root
// translators for.
var convertibleParts = []string{PartNumbering, PartStyles}

// ConvertParts round-trips every known part present in the package through
// the model and returns the re-serialized bytes by part name. In strict
// mode a part that fails to parse or convert aborts the whole conversion;
// otherwise the failure is logged and the part is skipped, matching the
// layer's absorptive error policy.
func ConvertParts(pkg *PackageReader) (map[string][]byte, error) {
	strict := GetGlobalConfig().StrictMode
	out := make(map[string][]byte)

	for _, part := range convertibleParts {
		if !pkg.HasPart(part) {
			continue
		}
		rebuilt, err := convertPart(pkg, part)
		if err != nil {
			if strict {
				return nil, err
			}
			GetLogger().WithField("part", part).Warn("skipping part: %v", err)
			continue
		}
		out[part] = Marshal(rebuilt)
	}
	return out, nil
}

func convertPart(pkg *PackageReader, part string) (*Element, error) {
	root, err := pkg.ParsePart(part)
	if err != nil {
		return nil, err
	}
	GetLogger().DebugElement(root)
	node, err := EncodePart(root)
	if err != nil {
		return nil, err
	}
	return DecodePart(node)
}

// EncodeNumbering converts a w:numbering root into its model bag.
func EncodeNumbering(root *Element) (ModelMap, error) {
	node, err := EncodePart(root)
	if err != nil {
		return nil, err
	}
	return node.Attrs, nil
}

// DecodeNumbering rebuilds a w:numbering part from its model bag.
func DecodeNumbering(attrs ModelMap) (*Element, error) {
	return DecodePart(&ModelNode{Type: NumberingTranslator.ModelKey, Attrs: attrs})
}

// EncodeStyles converts a w:styles root into its model bag.
func EncodeStyles(root *Element) (ModelMap, error) {
	node, err := EncodePart(root)
	if err != nil {
		return nil, err
	}
	return node.Attrs, nil
}

// DecodeStyles rebuilds a w:styles part from its model bag.
func DecodeStyles(attrs ModelMap) (*Element, error) {
	return DecodePart(&ModelNode{Type: StylesTranslator.ModelKey, Attrs: attrs})
}

package wordml

import (
	"strings"
	"testing"
)

const numberingFixture = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
	<w:abstractNum w:abstractNumId="0">
		<w:nsid w:val="0F4E2D71"/>
		<w:multiLevelType w:val="hybridMultilevel"/>
		<w:lvl w:ilvl="0">
			<w:start w:val="1"/>
			<w:numFmt w:val="decimal"/>
			<w:lvlText w:val="%1."/>
			<w:lvlJc w:val="left"/>
			<w:pPr>
				<w:ind w:left="720" w:hanging="360"/>
			</w:pPr>
		</w:lvl>
		<w:lvl w:ilvl="1">
			<w:start w:val="1"/>
			<w:numFmt w:val="lowerLetter"/>
			<w:lvlText w:val="%2."/>
			<w:lvlJc w:val="left"/>
			<w:rPr>
				<w:b/>
				<w:i w:val="0"/>
			</w:rPr>
		</w:lvl>
	</w:abstractNum>
	<w:num w:numId="1">
		<w:abstractNumId w:val="0"/>
		<w:lvlOverride w:ilvl="0">
			<w:startOverride w:val="5"/>
		</w:lvlOverride>
	</w:num>
</w:numbering>`

func TestNumberingPartEncode(t *testing.T) {
	root, err := ParseElement(strings.NewReader(numberingFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	model, err := EncodeNumbering(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	abstracts, ok := model.Collection("abstractNums")
	if !ok || abstracts.Len() != 1 {
		t.Fatalf("expected 1 abstract definition, got %v", model["abstractNums"])
	}
	abstract, _ := abstracts.Get(0)
	if abstract["nsid"] != "0F4E2D71" {
		t.Errorf("expected nsid, got %v", abstract["nsid"])
	}
	if abstract["multiLevelType"] != "hybridMultilevel" {
		t.Errorf("expected multiLevelType, got %v", abstract["multiLevelType"])
	}

	levels, ok := abstract.Collection("levels")
	if !ok || levels.Len() != 2 {
		t.Fatalf("expected 2 levels, got %v", abstract["levels"])
	}
	lvl0, _ := levels.Get(0)
	if lvl0["start"] != 1 || lvl0["numFmt"] != "decimal" || lvl0["lvlText"] != "%1." {
		t.Errorf("level 0 mis-encoded: %v", lvl0)
	}
	paraProps, ok := lvl0.Object("paragraphProperties")
	if !ok {
		t.Fatal("expected paragraph properties on level 0")
	}
	indent, ok := paraProps.Object("indent")
	if !ok || indent["left"] != 720 || indent["hanging"] != 360 {
		t.Errorf("indent mis-encoded: %v", paraProps["indent"])
	}

	lvl1, _ := levels.Get(1)
	runProps, ok := lvl1.Object("runProperties")
	if !ok {
		t.Fatal("expected run properties on level 1")
	}
	if runProps["bold"] != true {
		t.Errorf("expected bold=true from bare w:b, got %v", runProps["bold"])
	}
	if runProps["italic"] != false {
		t.Errorf("expected italic=false from w:val=0, got %v", runProps["italic"])
	}

	nums, ok := model.Collection("nums")
	if !ok || nums.Len() != 1 {
		t.Fatalf("expected 1 num instance, got %v", model["nums"])
	}
	num, _ := nums.Get(1)
	if num["abstractNumId"] != 0 {
		t.Errorf("expected abstractNumId=0, got %v", num["abstractNumId"])
	}
	overrides, ok := num.Collection("overrides")
	if !ok || overrides.Len() != 1 {
		t.Fatalf("expected 1 override, got %v", num["overrides"])
	}
	override, _ := overrides.Get(0)
	if override["startOverride"] != 5 {
		t.Errorf("expected startOverride=5, got %v", override["startOverride"])
	}
}

func TestNumberingPartRoundTrip(t *testing.T) {
	root, err := ParseElement(strings.NewReader(numberingFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	model, err := EncodeNumbering(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rebuilt, err := DecodeNumbering(model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rebuilt.Name != "w:numbering" {
		t.Fatalf("expected w:numbering root, got %s", rebuilt.Name)
	}
	if rebuilt.Attrs["xmlns:w"] != wordNamespace {
		t.Error("expected the namespace declaration on the rebuilt root")
	}

	abstracts := rebuilt.ChildrenNamed("w:abstractNum")
	if len(abstracts) != 1 {
		t.Fatalf("expected 1 abstract definition, got %d", len(abstracts))
	}
	lvls := abstracts[0].ChildrenNamed("w:lvl")
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	for i, lvl := range lvls {
		want := []string{"0", "1"}[i]
		if lvl.Attrs["w:ilvl"] != want {
			t.Errorf("expected w:ilvl=%s in relative order, got %q", want, lvl.Attrs["w:ilvl"])
		}
	}

	// Presence-sensitive details survive both directions.
	if rPr, ok := lvls[1].FirstChild("w:rPr"); ok {
		if b, found := rPr.FirstChild("w:b"); !found {
			t.Error("expected w:b to survive")
		} else if len(b.Attrs) != 0 {
			t.Errorf("bare w:b must stay bare, got %v", b.Attrs)
		}
		if i, found := rPr.FirstChild("w:i"); !found {
			t.Error("expected w:i to survive")
		} else if i.Attrs["w:val"] != "0" {
			t.Errorf("expected w:i w:val=0, got %v", i.Attrs)
		}
	} else {
		t.Error("expected w:rPr on level 1")
	}

	nums := rebuilt.ChildrenNamed("w:num")
	if len(nums) != 1 {
		t.Fatalf("expected 1 num instance, got %d", len(nums))
	}
	if nums[0].Attrs["w:numId"] != "1" {
		t.Errorf("expected w:numId=1, got %v", nums[0].Attrs)
	}
	override, ok := nums[0].FirstChild("w:lvlOverride")
	if !ok {
		t.Fatal("expected w:lvlOverride to survive")
	}
	if override.Attrs["w:ilvl"] != "0" {
		t.Errorf("expected re-injected w:ilvl=0, got %v", override.Attrs)
	}
	start, ok := override.FirstChild("w:startOverride")
	if !ok || start.Attrs["w:val"] != "5" {
		t.Error("expected w:startOverride w:val=5")
	}

	// A second encode of the rebuilt tree produces the same model:
	// encode(decode(encode(x))) == encode(x).
	again, err := EncodeNumbering(rebuilt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again) != len(model) {
		t.Errorf("second encode changed the key set: %d vs %d", len(again), len(model))
	}
}

func TestEmptyNumberingPart(t *testing.T) {
	root, err := ParseElement(strings.NewReader(
		`<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	model, err := EncodeNumbering(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(model) != 0 {
		t.Errorf("expected an empty model bag, got %v", model)
	}

	rebuilt, err := DecodeNumbering(model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rebuilt.Name != "w:numbering" || len(rebuilt.Children) != 0 {
		t.Errorf("expected a bare part root, got %s with %d children", rebuilt.Name, len(rebuilt.Children))
	}
}

func TestEncodePartUnknownRoot(t *testing.T) {
	if _, err := EncodePart(NewElement("w:fontTable")); err == nil {
		t.Error("expected an error for an unknown part root")
	}
	if _, err := EncodePart(nil); err == nil {
		t.Error("expected an error for a nil root")
	}
}

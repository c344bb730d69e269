package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"

	"github.com/benjaminschreck/go-wordml/pkg/wordml"
)

const version = "0.1.0"

func main() {
	args := make([]string, 0, len(os.Args))
	for _, arg := range os.Args {
		if arg == "--debug" {
			wordml.GetLogger().SetLevel(wordml.LogDebug)
			continue
		}
		args = append(args, arg)
	}
	os.Args = args

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("wordml version %s\n", version)
	case "inspect":
		if len(os.Args) < 3 {
			usage()
			os.Exit(1)
		}
		part := wordml.PartNumbering
		if len(os.Args) > 3 {
			part = os.Args[3]
		}
		if err := inspect(os.Args[2], part); err != nil {
			color.Red("inspect: %v", err)
			os.Exit(1)
		}
	case "roundtrip":
		if len(os.Args) < 4 {
			usage()
			os.Exit(1)
		}
		if err := roundtrip(os.Args[2], os.Args[3]); err != nil {
			color.Red("roundtrip: %v", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("wordml - OOXML part <-> document model converter")
	fmt.Println("\nUsage: wordml <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  inspect <file.docx> [part]       Encode a part and dump its model")
	fmt.Println("  roundtrip <in.docx> <out.docx>   Encode and decode every known part, rewrite the package")
	fmt.Println("  version                          Show version information")
	fmt.Println("\nFlags:")
	fmt.Println("  --debug                          Log conversion details to stderr")
}

func inspect(path, part string) error {
	pkg, _, err := wordml.OpenPackage(path)
	if err != nil {
		return err
	}
	if !pkg.HasPart(part) {
		return fmt.Errorf("package has no part %s", part)
	}
	root, err := pkg.ParsePart(part)
	if err != nil {
		return err
	}
	node, err := wordml.EncodePart(root)
	if err != nil {
		return err
	}

	color.Cyan("%s (%s)", part, node.Type)
	dumpModel(node.Attrs, 1)
	return nil
}

func dumpModel(attrs wordml.ModelMap, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := attrs[k].(type) {
		case wordml.ModelMap:
			color.Green("%s%s:", indent, k)
			dumpModel(v, depth+1)
		case *wordml.Keyed:
			color.Green("%s%s: (%d entries)", indent, k, v.Len())
			v.Each(func(key any, item wordml.ModelMap) {
				color.Yellow("%s  [%v]:", indent, key)
				dumpModel(item, depth+2)
			})
		default:
			fmt.Printf("%s%s = %v\n", indent, k, v)
		}
	}
}

func roundtrip(in, out string) error {
	pkg, _, err := wordml.OpenPackage(in)
	if err != nil {
		return err
	}

	replacements, err := wordml.ConvertParts(pkg)
	if err != nil {
		return err
	}
	for part, content := range replacements {
		color.Green("round-tripped %s (%d bytes)", part, len(content))
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	return pkg.Rewrite(f, replacements)
}

package wordml

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
)

// Well-known package part names.
const (
	PartDocument  = "word/document.xml"
	PartNumbering = "word/numbering.xml"
	PartStyles    = "word/styles.xml"
)

// PackageReader handles reading parts out of a DOCX package.
type PackageReader struct {
	reader *zip.Reader
	Parts  map[string]*zip.File
	cache  *PartCache
}

// NewPackageReader creates a package reader over DOCX bytes.
func NewPackageReader(r io.ReaderAt, size int64) (*PackageReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, NewPartError("open", "", err)
	}

	pr := &PackageReader{
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
		cache:  NewPartCache(),
	}

	// Index all parts by name
	for _, file := range zipReader.File {
		pr.Parts[file.Name] = file
	}

	// A package without the main document part is not a DOCX file.
	if _, ok := pr.Parts[PartDocument]; !ok {
		return nil, NewPartError("open", PartDocument, io.ErrUnexpectedEOF)
	}

	return pr, nil
}

// OpenPackage opens a DOCX file from disk.
func OpenPackage(path string) (*PackageReader, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, NewPartError("read", path, err)
	}
	pr, err := NewPackageReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, err
	}
	return pr, data, nil
}

// HasPart reports whether the package contains the named part.
func (pr *PackageReader) HasPart(name string) bool {
	_, ok := pr.Parts[name]
	return ok
}

// PartBytes retrieves the raw content of a package part.
func (pr *PackageReader) PartBytes(name string) ([]byte, error) {
	file, ok := pr.Parts[name]
	if !ok {
		return nil, NewPartError("read", name, nil)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, NewPartError("open", name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, NewPartError("read", name, err)
	}
	return content, nil
}

// ParsePart parses a package part into an element tree. Parsed trees are
// cached per reader, so repeated conversions of the same part skip the
// parse. Callers who edit a returned tree must Clone it first.
func (pr *PackageReader) ParsePart(name string) (*Element, error) {
	return pr.cache.Parse(func() (*Element, error) {
		content, err := pr.PartBytes(name)
		if err != nil {
			return nil, err
		}
		root, err := ParseElement(bytes.NewReader(content))
		if err != nil {
			return nil, NewPartError("parse", name, err)
		}
		return root, nil
	}, name)
}

// Rewrite copies the package to w, replacing the parts named in
// replacements with new content. Parts not mentioned pass through
// unchanged, preserving everything the conversion layer does not touch.
func (pr *PackageReader) Rewrite(w io.Writer, replacements map[string][]byte) error {
	out := zip.NewWriter(w)

	for _, file := range pr.reader.File {
		writer, err := out.Create(file.Name)
		if err != nil {
			return NewPartError("write", file.Name, err)
		}

		if replaced, ok := replacements[file.Name]; ok {
			if _, err := writer.Write(replaced); err != nil {
				return NewPartError("write", file.Name, err)
			}
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return NewPartError("copy", file.Name, err)
		}
		if _, err := io.Copy(writer, rc); err != nil {
			rc.Close()
			return NewPartError("copy", file.Name, err)
		}
		rc.Close()
	}

	if err := out.Close(); err != nil {
		return NewPartError("close", "", err)
	}
	return nil
}

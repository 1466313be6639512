package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/Dunsteer/ngrx-essentials-generator/naming"
)

// File is one rendered file ready to be written.
type File struct {
	Kind    TemplateKind
	Path    string
	Content []byte
}

// Plan renders the files for kinds (all kinds when empty) without any I/O.
func Plan(baseDir, suffix string, b naming.Bundle, kinds []TemplateKind) ([]File, error) {
	if b.Slug == "" {
		return nil, &Error{Kind: InvalidSlug, Message: "slug is empty", Err: naming.ErrEmptySlug}
	}
	if len(kinds) == 0 {
		kinds = AllKinds()
	}

	target := TargetDir(baseDir, suffix)
	files := make([]File, 0, len(kinds))
	for _, kind := range kinds {
		content, err := Render(kind, b)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", kind.Filename(b.Slug), err)
		}
		files = append(files, File{
			Kind:    kind,
			Path:    filepath.Join(target, kind.Filename(b.Slug)),
			Content: content,
		})
	}
	return files, nil
}

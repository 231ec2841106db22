package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"source.hodakov.me/hdkv/animetree/internal/domains/resolver/dto"
)

// entry is a child of a directory in the mounted view.
type entry struct {
	name        string
	sourcePath  string
	isDirectory bool
}

// listDirectory resolves the children of the source directory at path.
// Entries the resolver ignores are hidden. When two entries end up with the
// same name the first one wins.
func (f *FS) listDirectory(path string) ([]entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w (%w)", ErrFilesystem, ErrCantListDirectory, err)
	}

	children := make([]dto.Entry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		children = append(children, dto.Entry{
			Path:        filepath.Join(path, dirEntry.Name()),
			IsDirectory: dirEntry.IsDir(),
		})
	}

	batch, err := f.resolver.ResolveChildren(f.item(path), children)
	if err != nil {
		return nil, fmt.Errorf("%w: %w (%w)", ErrFilesystem, ErrCantListDirectory, err)
	}

	if batch.Ignored {
		return nil, nil
	}

	entries := make([]entry, 0, len(children))
	taken := make(map[string]string, len(children))

	add := func(sourcePath string, isDirectory bool, decision *dto.Decision) {
		name := virtualName(sourcePath, decision)

		if existing, ok := taken[name]; ok {
			f.app.Logger().WithFields(logrus.Fields{
				"name":     name,
				"kept":     existing,
				"shadowed": sourcePath,
			}).Warn("Two entries map to the same name, hiding the second one")

			return
		}

		taken[name] = sourcePath
		entries = append(entries, entry{
			name:        name,
			sourcePath:  sourcePath,
			isDirectory: isDirectory,
		})
	}

	for _, resolved := range batch.Items {
		add(resolved.Entry.Path, false, resolved.Decision)
	}

	for _, leftOver := range batch.LeftOver {
		if !leftOver.IsDirectory {
			continue
		}

		decision, err := f.resolver.Resolve(f.item(leftOver.Path))
		if err != nil {
			f.app.Logger().WithError(err).WithField("path", leftOver.Path).
				Warn("Hiding folder that could not be resolved")

			continue
		}

		if decision.Kind != dto.CreateContainer {
			continue
		}

		add(leftOver.Path, true, decision)
	}

	f.app.Logger().WithFields(logrus.Fields{
		"path":              path,
		"directory entries": len(entries),
	}).Debug("Listed directory")

	return entries, nil
}

// lookupEntry finds the child of the source directory at path shown as name.
func (f *FS) lookupEntry(path, name string) (entry, bool) {
	entries, err := f.listDirectory(path)
	if err != nil {
		f.app.Logger().WithError(err).WithField("path", path).Error("Error reading directory")

		return entry{}, false
	}

	for _, candidate := range entries {
		if candidate.name == name {
			return candidate, true
		}
	}

	return entry{}, false
}

func (f *FS) item(path string) *dto.Item {
	return &dto.Item{
		Path:           path,
		ParentPath:     filepath.Dir(path),
		IsDirectory:    true,
		CollectionType: f.collectionType,
		LibraryRoot:    f.sourceDir,
	}
}

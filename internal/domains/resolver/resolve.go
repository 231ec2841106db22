package resolver

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	cdto "source.hodakov.me/hdkv/animetree/internal/domains/classifier/dto"
	mdto "source.hodakov.me/hdkv/animetree/internal/domains/metadata/dto"
	"source.hodakov.me/hdkv/animetree/internal/domains/resolver/dto"
)

// Resolve decides what the host should build for a single item.
func (r *Resolver) Resolve(item *dto.Item) (*dto.Decision, error) {
	libraryPath := item.LibraryRoot
	if libraryPath == "" {
		libraryPath = item.Path
	}

	if !r.supports(item.CollectionType, libraryPath) {
		return dto.IgnoreDecision(cdto.Unknown), nil
	}

	role := r.classifier.ClassifyEntry(item.Path, item.ParentPath, item.IsDirectory)

	r.app.Logger().WithFields(logrus.Fields{
		"path": item.Path,
		"role": role,
	}).Debug("Classified item")

	switch {
	case role.IsFolder():
		folder, err := r.classifier.DescribeFolder(item.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w (%w)", ErrResolver, ErrCantResolveItem, err)
		}

		return &dto.Decision{Kind: dto.CreateContainer, Role: role, Folder: folder}, nil
	case role.IsFile():
		media, err := r.metadata.DescribeFile(role, filepath.Base(item.Path))
		if err != nil {
			return nil, fmt.Errorf("%w: %w (%w)", ErrResolver, ErrCantResolveItem, err)
		}

		return &dto.Decision{Kind: dto.CreateMedia, Role: role, Media: media}, nil
	default:
		return dto.IgnoreDecision(role), nil
	}
}

// ResolveChildren resolves the files among the children of parent.
// Sub-folders always end up in LeftOver, together with the files that were
// ignored or failed to resolve.
func (r *Resolver) ResolveChildren(parent *dto.Item, children []dto.Entry) (*dto.BatchResult, error) {
	libraryPath := parent.LibraryRoot
	if libraryPath == "" {
		libraryPath = parent.Path
	}

	if !r.supports(parent.CollectionType, libraryPath) {
		return &dto.BatchResult{Ignored: true}, nil
	}

	result := &dto.BatchResult{
		Items:    make([]dto.ResolvedItem, 0, len(children)),
		LeftOver: make([]dto.Entry, 0),
	}

	for _, child := range children {
		if child.IsDirectory {
			result.LeftOver = append(result.LeftOver, child)

			continue
		}

		decision, err := r.Resolve(&dto.Item{
			Path:           child.Path,
			ParentPath:     parent.Path,
			CollectionType: parent.CollectionType,
			LibraryRoot:    libraryPath,
		})
		if err != nil {
			r.app.Logger().WithError(err).WithField("path", child.Path).
				Warn("Failed to resolve file, leaving it to the host")

			result.LeftOver = append(result.LeftOver, child)

			continue
		}

		if decision.Kind == dto.Ignore {
			result.LeftOver = append(result.LeftOver, child)

			continue
		}

		result.Items = append(result.Items, dto.ResolvedItem{Entry: child, Decision: decision})
	}

	r.app.Logger().WithFields(logrus.Fields{
		"path":      parent.Path,
		"items":     len(result.Items),
		"left over": len(result.LeftOver),
	}).Debug("Resolved folder children")

	return result, nil
}

// DescribeExtra refreshes the metadata of an existing extra item from its
// path alone. It reports false for anything that is not an extra file.
func (r *Resolver) DescribeExtra(path string) (*mdto.Metadata, bool) {
	if !r.isAnimeLibrary(path) {
		return nil, false
	}

	role := r.classifier.ClassifyEntry(path, filepath.Dir(path), false)

	r.app.Logger().WithFields(logrus.Fields{
		"path": path,
		"role": role,
	}).Debug("Classified item")

	if !role.IsExtraFile() {
		return nil, false
	}

	media, err := r.metadata.DescribeFile(role, filepath.Base(path))
	if err != nil {
		r.app.Logger().WithError(err).WithField("path", path).Warn("Failed to describe extra")

		return nil, false
	}

	r.app.Logger().WithFields(logrus.Fields{
		"path":     path,
		"category": *media.ExtraCategory,
	}).Debug("Described extra")

	return media, true
}

package scanner

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	cdto "source.hodakov.me/hdkv/animetree/internal/domains/classifier/dto"
	rdto "source.hodakov.me/hdkv/animetree/internal/domains/resolver/dto"
	"source.hodakov.me/hdkv/animetree/internal/domains/scanner/dto"
)

// Scan walks the library rooted at root. Folders whose resolution fails are
// reported with their error and not descended into.
func (s *Scanner) Scan(root string) (*dto.Report, error) {
	root = filepath.Clean(root)

	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w (%w)", ErrScanner, ErrCantReadDirectory, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %w (%s)", ErrScanner, ErrNotADirectory, root)
	}

	report := &dto.Report{
		Root: root,
		Rows: make([]dto.Row, 0),
	}

	err = s.scanDirectory(report, root)
	if err != nil {
		return nil, err
	}

	s.app.Logger().WithFields(logrus.Fields{
		"root":    root,
		"entries": len(report.Rows),
		"ignored": report.Ignored,
	}).Info("Library scan finished")

	return report, nil
}

func (s *Scanner) scanDirectory(report *dto.Report, path string) error {
	entries, err := afero.ReadDir(s.fs, path)
	if err != nil {
		if path == report.Root {
			return fmt.Errorf("%w: %w (%w)", ErrScanner, ErrCantReadDirectory, err)
		}

		s.app.Logger().WithError(err).WithField("path", path).Error("Error reading directory")

		return nil
	}

	children := make([]rdto.Entry, 0, len(entries))
	for _, entry := range entries {
		children = append(children, rdto.Entry{
			Path:        filepath.Join(path, entry.Name()),
			IsDirectory: entry.IsDir(),
		})
	}

	batch, err := s.resolver.ResolveChildren(s.item(report, path, true), children)
	if err != nil {
		return fmt.Errorf("%w: %w (%w)", ErrScanner, ErrCantReadDirectory, err)
	}

	if batch.Ignored {
		report.Ignored = true

		return nil
	}

	for _, resolved := range batch.Items {
		report.Rows = append(report.Rows, rowFromDecision(resolved.Entry.Path, resolved.Decision))
	}

	for _, leftOver := range batch.LeftOver {
		if !leftOver.IsDirectory {
			report.Rows = append(report.Rows, dto.Row{
				Path: leftOver.Path,
				Role: cdto.Unknown,
				Kind: rdto.Ignore,
			})

			continue
		}

		decision, err := s.resolver.Resolve(s.item(report, leftOver.Path, true))
		if err != nil {
			s.app.Logger().WithError(err).WithField("path", leftOver.Path).
				Warn("Skipping folder that could not be resolved")

			report.Rows = append(report.Rows, dto.Row{
				Path:  leftOver.Path,
				Kind:  rdto.Ignore,
				Error: err.Error(),
			})

			continue
		}

		report.Rows = append(report.Rows, rowFromDecision(leftOver.Path, decision))

		err = s.scanDirectory(report, leftOver.Path)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Scanner) item(report *dto.Report, path string, isDirectory bool) *rdto.Item {
	return &rdto.Item{
		Path:           path,
		ParentPath:     filepath.Dir(path),
		IsDirectory:    isDirectory,
		CollectionType: s.collectionType,
		LibraryRoot:    report.Root,
	}
}

func rowFromDecision(path string, decision *rdto.Decision) dto.Row {
	row := dto.Row{
		Path: path,
		Role: decision.Role,
		Kind: decision.Kind,
	}

	if decision.Folder != nil {
		row.Name = decision.Folder.Name
		row.SortName = decision.Folder.SortName
		row.Index = decision.Folder.Index
	}

	if decision.Media != nil {
		row.Name = decision.Media.Name
		row.SortName = decision.Media.SortName
		row.Index = decision.Media.EpisodeIndex
		row.SeasonIndex = decision.Media.SeasonIndex

		if decision.Media.ExtraCategory != nil {
			row.ExtraCategory = decision.Media.ExtraCategory.String()
		}
	}

	return row
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"source.hodakov.me/hdkv/animetree/internal/domains"
	cdto "source.hodakov.me/hdkv/animetree/internal/domains/classifier/dto"
	mdto "source.hodakov.me/hdkv/animetree/internal/domains/metadata/dto"
)

type classifyResult struct {
	Path     string               `json:"path"`
	Role     cdto.Role            `json:"role"`
	Folder   *cdto.Classification `json:"folder,omitempty"`
	Metadata *mdto.Metadata       `json:"metadata,omitempty"`
}

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var (
		isDirectory bool
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "classify <path>",
		Short: "Print the role of a single path, and the metadata derived for files",
		Long: "Classifies a single path without looking at the disk. " +
			"Pass --dir when the path is a folder.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.bootstrap(cmd.Context(), false)
			if err != nil {
				return err
			}

			classifier, ok := app.RetrieveDomain(domains.ClassifierName).(domains.Classifier)
			if !ok {
				return fmt.Errorf("classifier domain is not registered")
			}

			mapper, ok := app.RetrieveDomain(domains.MetadataName).(domains.Metadata)
			if !ok {
				return fmt.Errorf("metadata domain is not registered")
			}

			path := filepath.Clean(args[0])
			result := &classifyResult{Path: path}

			if isDirectory {
				folder, err := classifier.DescribeFolder(path)
				if err != nil {
					return err
				}

				result.Role = folder.Role
				result.Folder = folder
			} else {
				result.Role = classifier.ClassifyEntry(path, filepath.Dir(path), false)

				if result.Role.IsFile() {
					media, err := mapper.DescribeFile(result.Role, filepath.Base(path))
					if err != nil {
						return err
					}

					result.Metadata = media
				}
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}

			printClassification(cmd, result)

			return nil
		},
	}

	cmd.Flags().BoolVar(&isDirectory, "dir", false, "Treat the path as a folder")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func printClassification(cmd *cobra.Command, result *classifyResult) {
	rows := [][]string{
		{"Path", result.Path},
		{"Role", result.Role.String()},
	}

	if result.Folder != nil {
		rows = append(rows,
			[]string{"Name", result.Folder.Name},
			[]string{"Sort name", result.Folder.SortName},
			[]string{"Index", optionalInt(result.Folder.Index)},
		)
	}

	if media := result.Metadata; media != nil {
		rows = append(rows,
			[]string{"Name", media.Name},
			[]string{"Sort name", media.SortName},
			[]string{"Episode", optionalInt(media.EpisodeIndex)},
			[]string{"Season", optionalInt(media.SeasonIndex)},
		)

		if media.ExtraCategory != nil {
			rows = append(rows, []string{"Category", media.ExtraCategory.String()})
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
}

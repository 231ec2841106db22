package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"source.hodakov.me/hdkv/animetree/internal/configuration"
	"source.hodakov.me/hdkv/animetree/internal/domains/classifier/dto"
)

func newTestClassifier() *Classifier {
	return NewWithNaming(configuration.Naming{
		ExtrasFolderNames: []string{"extras", "trailers", "100. extras"},
		VideoExtensions:   []string{".mkv", ".mp4"},
		AudioExtensions:   []string{".flac", ".mp3"},
	})
}

func TestClassifyFolder(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()

	tests := []struct {
		name string
		path string
		want dto.Role
	}{
		{name: "anime folder", path: "/media/Anime/Monogatari/03. Bocchi the Rock!", want: dto.AnimeFolder},
		{name: "anime folder relative", path: "1. Title", want: dto.AnimeFolder},
		{name: "anime folder ideographic space", path: "/Anime/F/03.\u3000Bocchi", want: dto.AnimeFolder},
		{name: "anime folder no-break space", path: "/Anime/F/03.\u00a0Bocchi", want: dto.AnimeFolder},
		{name: "anime folder trailing slash", path: "/media/Anime/12. Title/", want: dto.AnimeFolder},
		{name: "extras folder", path: "/media/Anime/Franchise/01. Show/extras", want: dto.ExtraFolder},
		{name: "extras folder any case", path: "/media/Anime/Franchise/01. Show/Trailers", want: dto.ExtraFolder},
		{name: "extras name wins over ordinal", path: "/media/Anime/100. Extras", want: dto.ExtraFolder},
		{name: "franchise folder", path: "/media/Anime/Monogatari", want: dto.FranchiseFolder},
		{name: "ordinal without space", path: "/media/Anime/03.Title", want: dto.FranchiseFolder},
		{name: "ordinal not at start", path: "/media/Anime/Season 03. Title", want: dto.FranchiseFolder},
		{name: "empty path", path: "", want: dto.Unknown},
		{name: "filesystem root", path: "/", want: dto.Unknown},
		{name: "current directory", path: ".", want: dto.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, c.ClassifyFolder(tt.path))
		})
	}
}

func TestClassifyEntry(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()

	tests := []struct {
		name        string
		path        string
		parentPath  string
		isDirectory bool
		want        dto.Role
	}{
		{
			name:       "episode",
			path:       "/Anime/F/01. Show/[Group] Show - 01.mkv",
			parentPath: "/Anime/F/01. Show",
			want:       dto.EpisodeFile,
		},
		{
			name:       "episode upper case extension",
			path:       "/Anime/F/01. Show/Show - 01.MKV",
			parentPath: "/Anime/F/01. Show",
			want:       dto.EpisodeFile,
		},
		{
			name:       "extra video",
			path:       "/Anime/F/01. Show/extras/NCOP.mkv",
			parentPath: "/Anime/F/01. Show/extras",
			want:       dto.ExtraVideoFile,
		},
		{
			name:       "extra audio",
			path:       "/Anime/F/01. Show/extras/OST 01.flac",
			parentPath: "/Anime/F/01. Show/extras",
			want:       dto.ExtraAudioFile,
		},
		{
			name:       "audio in anime folder",
			path:       "/Anime/F/01. Show/OST.flac",
			parentPath: "/Anime/F/01. Show",
			want:       dto.Unknown,
		},
		{
			name:       "video in franchise folder",
			path:       "/Anime/F/movie.mkv",
			parentPath: "/Anime/F",
			want:       dto.Unknown,
		},
		{
			name:       "unknown extension",
			path:       "/Anime/F/01. Show/cover.jpg",
			parentPath: "/Anime/F/01. Show",
			want:       dto.Unknown,
		},
		{
			name:       "no extension",
			path:       "/Anime/F/01. Show/README",
			parentPath: "/Anime/F/01. Show",
			want:       dto.Unknown,
		},
		{
			name:       "file without parent",
			path:       "episode.mkv",
			parentPath: "",
			want:       dto.Unknown,
		},
		{
			name:        "directory delegates to folder",
			path:        "/Anime/F/02. Other",
			parentPath:  "/Anime/F",
			isDirectory: true,
			want:        dto.AnimeFolder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, c.ClassifyEntry(tt.path, tt.parentPath, tt.isDirectory))
		})
	}
}

func TestClassifyEntrySwapParent(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()

	assert.Equal(t, dto.EpisodeFile, c.ClassifyEntry("/A/01. Show/ep.mkv", "/A/01. Show", false))
	assert.Equal(t, dto.ExtraVideoFile, c.ClassifyEntry("/A/01. Show/extras/ep.mkv", "/A/01. Show/extras", false))
}

func TestClassifyIsIdempotent(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()
	path, parent := "/Anime/F/07. Show/Show - 07.mp4", "/Anime/F/07. Show"

	first := c.ClassifyEntry(path, parent, false)
	second := c.ClassifyEntry(path, parent, false)

	assert.Equal(t, first, second)
	assert.Equal(t, c.ClassifyFolder(parent), c.ClassifyFolder(parent))
}

func TestAnimeFolderNameAndIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		folder    string
		wantName  string
		wantIndex int
	}{
		{folder: "03. Bocchi the Rock!", wantName: "Bocchi the Rock!", wantIndex: 3},
		{folder: "1. K-On!", wantName: "K-On!", wantIndex: 1},
		{folder: "120.\tTabbed", wantName: "Tabbed", wantIndex: 120},
		{folder: "03.\u3000ぼっち・ざ・ろっく！", wantName: "ぼっち・ざ・ろっく！", wantIndex: 3},
		{folder: "04.\u00a0No-Break", wantName: "No-Break", wantIndex: 4},
		{folder: "2. 3. Nested Ordinal", wantName: "3. Nested Ordinal", wantIndex: 2},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			t.Parallel()

			index, err := AnimeFolderIndex(tt.folder)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, index)
			assert.Equal(t, tt.wantName, AnimeFolderName(tt.folder))
		})
	}
}

func TestAnimeFolderIndexErrors(t *testing.T) {
	t.Parallel()

	for _, folder := range []string{"Monogatari", "", "99999999999999999999999. Overflow"} {
		_, err := AnimeFolderIndex(folder)
		require.Error(t, err, folder)
		assert.ErrorIs(t, err, ErrClassifier)
		assert.ErrorIs(t, err, ErrCantDetermineIndex)
	}
}

func TestDescribeFolder(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()

	anime, err := c.DescribeFolder("/Anime/Music/03. Bocchi the Rock!")
	require.NoError(t, err)
	assert.Equal(t, dto.AnimeFolder, anime.Role)
	assert.Equal(t, "Bocchi the Rock!", anime.Name)
	assert.Equal(t, "Bocchi the Rock!", anime.SortName)
	require.NotNil(t, anime.Index)
	assert.Equal(t, 3, *anime.Index)

	franchise, err := c.DescribeFolder("/Anime/Music")
	require.NoError(t, err)
	assert.Equal(t, dto.FranchiseFolder, franchise.Role)
	assert.Equal(t, "Music", franchise.Name)
	assert.Nil(t, franchise.Index)

	extras, err := c.DescribeFolder("/Anime/Music/03. Bocchi the Rock!/extras")
	require.NoError(t, err)
	assert.Equal(t, dto.ExtraFolder, extras.Role)
	assert.Equal(t, "extras", extras.Name)
	assert.Nil(t, extras.Index)

	_, err = c.DescribeFolder("/Anime/99999999999999999999999. Overflow")
	assert.ErrorIs(t, err, ErrCantDetermineIndex)
}

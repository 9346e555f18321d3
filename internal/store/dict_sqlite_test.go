package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpdictapi/internal/entity"
	"mcpdictapi/internal/store"
	"mcpdictapi/internal/testutil"
)

func openFixture(t *testing.T) *store.Dict {
	t.Helper()
	d, err := store.Open(testutil.CreateDictDB(t))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := store.Open(t.TempDir() + "/does-not-exist.db")
	assert.Error(t, err)
}

func TestDict_Version(t *testing.T) {
	d := openFixture(t)

	version, err := d.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testutil.FixtureVersion, version)
}

func TestDict_ListLanguages(t *testing.T) {
	d := openFixture(t)

	langs, err := d.ListLanguages(context.Background())
	require.NoError(t, err)

	// The 漢字 metadata row is not a language variety.
	require.Len(t, langs, 3)

	seen := map[int64]bool{}
	for i, l := range langs {
		assert.False(t, seen[l.ID], "duplicate language_id %d", l.ID)
		seen[l.ID] = true
		if i > 0 {
			assert.Greater(t, l.ID, langs[i-1].ID, "languages must be ordered by 語言ID ascending")
		}
		assert.NotEqual(t, "漢字", l.Abbr)
	}

	assert.Equal(t, "甲語", langs[0].Name)
	assert.Equal(t, "甲", langs[0].Abbr)
	assert.Equal(t, "甲地", langs[0].Location)
	assert.Equal(t, "120.00,30.00", langs[0].Coordinates)
}

func TestDict_Readings(t *testing.T) {
	d := openFixture(t)

	got, err := d.Readings(context.Background(), []string{"是", "社"})
	require.NoError(t, err)

	// 丙語 has no readings anywhere and must not appear at all.
	require.Len(t, got, 2)
	require.Contains(t, got, testutil.LangAID)
	require.Contains(t, got, testutil.LangBID)

	a := got[testutil.LangAID]
	require.Len(t, a, 2)
	assert.Equal(t, entity.ReadingCell{{Transcription: "si5"}}, a[0])
	assert.Empty(t, a[1], "甲語 has no reading for 社")

	b := got[testutil.LangBID]
	require.Len(t, b, 2)
	assert.Equal(t, entity.ReadingCell{
		{Transcription: "sɿ1", Annotation: "*思*想"},
		{Transcription: "sɿ5", Annotation: "意*思*"},
	}, b[0])
	assert.Equal(t, entity.ReadingCell{{Transcription: "sɿ1"}}, b[1])
}

func TestDict_Readings_UnknownCharacter(t *testing.T) {
	d := openFixture(t)

	got, err := d.Readings(context.Background(), []string{"是", "龘"})
	require.NoError(t, err)

	for id, cells := range got {
		require.Len(t, cells, 2)
		assert.Empty(t, cells[1], "unknown character must yield an empty cell for language %d", id)
	}
}

func TestDict_Readings_OnlyUnknownCharacters(t *testing.T) {
	d := openFixture(t)

	got, err := d.Readings(context.Background(), []string{"龘"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDict_Readings_DuplicateCharacters(t *testing.T) {
	d := openFixture(t)

	got, err := d.Readings(context.Background(), []string{"是", "是"})
	require.NoError(t, err)

	a := got[testutil.LangAID]
	require.Len(t, a, 2)
	assert.Equal(t, a[0], a[1], "duplicate input characters must produce identical cells positionally")
}

func TestDict_Readings_NoChars(t *testing.T) {
	d := openFixture(t)

	got, err := d.Readings(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

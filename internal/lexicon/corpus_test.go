package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestNewSortsAndDedupes(t *testing.T) {
	is := is.New(t)
	c, err := New([]string{"UNTIL", "arose", "until", "cider"}, []string{"CIDER"})
	is.NoErr(err)
	is.Equal(c.Words(), []string{"arose", "cider", "until"})
	is.Equal(c.Len(), 3)
	is.True(c.Contains("AROSE"))
	is.True(!c.Contains("sooty"))
	is.True(c.Confirmed("cider"))
	is.True(!c.Confirmed("arose"))
}

func TestNewRejectsBadWords(t *testing.T) {
	is := is.New(t)
	_, err := New([]string{"arose", "no"}, nil)
	is.True(err != nil)
}

func TestLoadAppliesOverrides(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	writeFile(t, dir, AnswersFile, "arose\nuntil\nsooty\n# a comment\n\ncider\n")
	writeFile(t, dir, NonWordsFile, "sooty\n")
	writeFile(t, dir, AddlWordsFile, "shade\n")
	writeFile(t, dir, ConfWordsFile, "shade\n")

	c, err := Load(dir)
	is.NoErr(err)
	is.Equal(c.Words(), []string{"arose", "cider", "shade", "until"})
	is.True(c.Confirmed("shade"))
}

func TestLoadWithoutOverrideFiles(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	writeFile(t, dir, AnswersFile, "arose\n")
	c, err := Load(dir)
	is.NoErr(err)
	is.Equal(c.Len(), 1)
}

func TestLoadMissingAnswerList(t *testing.T) {
	is := is.New(t)
	_, err := Load(t.TempDir())
	is.True(err != nil)
}

func TestDropThenAdd(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	writeFile(t, dir, AnswersFile, "arose\nuntil\n")

	is.NoErr(Drop(dir, "until"))
	c, err := Load(dir)
	is.NoErr(err)
	is.Equal(c.Words(), []string{"arose"})

	// Adding it back clears the exclusion.
	is.NoErr(Add(dir, "until"))
	c, err = Load(dir)
	is.NoErr(err)
	is.Equal(c.Words(), []string{"arose", "until"})
	is.Equal(strings.TrimSpace(readFile(t, dir, NonWordsFile)), "")
}

func TestConfirmClearsExclusion(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	writeFile(t, dir, AnswersFile, "arose\nshade\n")
	is.NoErr(Drop(dir, "shade"))
	is.NoErr(Confirm(dir, "shade"))

	c, err := Load(dir)
	is.NoErr(err)
	is.Equal(c.Words(), []string{"arose", "shade"})
	is.True(c.Confirmed("shade"))
}

func TestMaintainListsStaySorted(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	writeFile(t, dir, AnswersFile, "arose\n")
	is.NoErr(Add(dir, "sooty"))
	is.NoErr(Add(dir, "cider"))
	is.NoErr(Add(dir, "sooty"))
	is.Equal(readFile(t, dir, AddlWordsFile), "cider\nsooty\n")
}

func TestMaintainRejectsBadWord(t *testing.T) {
	is := is.New(t)
	is.True(Add(t.TempDir(), "xyz") != nil)
	is.True(Drop(t.TempDir(), "six-ls") != nil)
}

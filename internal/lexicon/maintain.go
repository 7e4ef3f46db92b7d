package lexicon

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/domino14/wordle_explorer/internal/solver"
)

// Maintenance edits the override lists in place. Each operation keeps
// every list sorted and deduplicated and removes the word from any list
// it contradicts, so a word can never be both excluded and included.

// Add puts word on the additional-words list and takes it off the
// exclusion list.
func Add(dataPath, word string) error {
	word = strings.ToLower(word)
	if err := solver.ValidateWord(word); err != nil {
		return err
	}
	if err := appendToList(dataPath, AddlWordsFile, word); err != nil {
		return err
	}
	return removeFromList(dataPath, NonWordsFile, word)
}

// Drop puts word on the exclusion list and takes it off the additional
// and confirmed lists.
func Drop(dataPath, word string) error {
	word = strings.ToLower(word)
	if err := solver.ValidateWord(word); err != nil {
		return err
	}
	if err := appendToList(dataPath, NonWordsFile, word); err != nil {
		return err
	}
	if err := removeFromList(dataPath, AddlWordsFile, word); err != nil {
		return err
	}
	return removeFromList(dataPath, ConfWordsFile, word)
}

// Confirm records word as a seen puzzle answer and takes it off the
// exclusion list.
func Confirm(dataPath, word string) error {
	word = strings.ToLower(word)
	if err := solver.ValidateWord(word); err != nil {
		return err
	}
	if err := appendToList(dataPath, ConfWordsFile, word); err != nil {
		return err
	}
	return removeFromList(dataPath, NonWordsFile, word)
}

func appendToList(dataPath, file, word string) error {
	path := filepath.Join(dataPath, file)
	words, err := readOptionalListFile(path)
	if err != nil {
		return err
	}
	return writeListFile(path, append(words, word))
}

func removeFromList(dataPath, file, word string) error {
	path := filepath.Join(dataPath, file)
	words, err := readOptionalListFile(path)
	if err != nil {
		return err
	}
	kept := words[:0]
	for _, w := range words {
		if w != word {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(words) {
		return nil
	}
	return writeListFile(path, kept)
}

func writeListFile(path string, words []string) error {
	sort.Strings(words)
	uniq := words[:0]
	for i, w := range words {
		if i == 0 || words[i-1] != w {
			uniq = append(uniq, w)
		}
	}
	var sb strings.Builder
	for _, w := range uniq {
		sb.WriteString(w)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

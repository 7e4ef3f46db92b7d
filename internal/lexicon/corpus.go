// Package lexicon loads and maintains the word corpus: a base answer
// list plus user-maintained addition, exclusion, and confirmation
// lists kept as plain text files in the data directory.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/domino14/wordle_explorer/internal/solver"
)

// File names under the data path. Each holds one word per line; blank
// lines and lines starting with '#' are skipped.
const (
	AnswersFile   = "answers.txt"
	NonWordsFile  = "non_words.txt"
	AddlWordsFile = "addl_words.txt"
	ConfWordsFile = "conf_words.txt"
)

// Corpus is an immutable, sorted collection of valid puzzle words.
// Build one with New or Load; to pick up list edits, load a fresh one.
type Corpus struct {
	words     []string
	index     map[string]struct{}
	confirmed map[string]struct{}
}

// New builds a corpus from words, lowercasing, validating, deduplicating
// and sorting them. confirmed marks the subset known to have been real
// puzzle answers.
func New(words []string, confirmed []string) (*Corpus, error) {
	c := &Corpus{
		index:     make(map[string]struct{}, len(words)),
		confirmed: make(map[string]struct{}, len(confirmed)),
	}
	for _, w := range words {
		w = strings.ToLower(w)
		if err := solver.ValidateWord(w); err != nil {
			return nil, err
		}
		if _, ok := c.index[w]; ok {
			continue
		}
		c.index[w] = struct{}{}
		c.words = append(c.words, w)
	}
	sort.Strings(c.words)
	for _, w := range confirmed {
		c.confirmed[strings.ToLower(w)] = struct{}{}
	}
	return c, nil
}

// Load reads the base answer list plus the three override lists from
// dataPath. The answers file must exist; the override lists are
// optional. The corpus is base plus additions minus exclusions.
func Load(dataPath string) (*Corpus, error) {
	base, err := readListFile(filepath.Join(dataPath, AnswersFile))
	if err != nil {
		return nil, fmt.Errorf("reading answer list: %w", err)
	}
	addl, err := readOptionalListFile(filepath.Join(dataPath, AddlWordsFile))
	if err != nil {
		return nil, err
	}
	non, err := readOptionalListFile(filepath.Join(dataPath, NonWordsFile))
	if err != nil {
		return nil, err
	}
	conf, err := readOptionalListFile(filepath.Join(dataPath, ConfWordsFile))
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(non))
	for _, w := range non {
		excluded[w] = struct{}{}
	}
	merged := make([]string, 0, len(base)+len(addl))
	for _, w := range append(base, addl...) {
		if _, ok := excluded[w]; ok {
			continue
		}
		merged = append(merged, w)
	}
	return New(merged, conf)
}

// Words returns the corpus in canonical (sorted) order. Callers must
// not modify the returned slice.
func (c *Corpus) Words() []string {
	return c.words
}

func (c *Corpus) Len() int {
	return len(c.words)
}

func (c *Corpus) Contains(w string) bool {
	_, ok := c.index[strings.ToLower(w)]
	return ok
}

// Confirmed reports whether w is on the confirmed-answer list.
func (c *Corpus) Confirmed(w string) bool {
	_, ok := c.confirmed[strings.ToLower(w)]
	return ok
}

func (c *Corpus) String() string {
	return fmt.Sprintf("corpus of %d words (%d confirmed)", len(c.words), len(c.confirmed))
}

// ReadWordList reads one word per line from r, lowercasing and trimming
// whitespace. Blank lines and '#' comments are skipped.
func ReadWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func readListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWordList(f)
}

func readOptionalListFile(path string) ([]string, error) {
	words, err := readListFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return words, err
}

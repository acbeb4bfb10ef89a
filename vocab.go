package skipgram

import (
	"strconv"

	"github.com/pkg/errors"
)

// Encoder turns token sequences into vocabulary indices.
type Encoder interface {
	Encode(sets [][]string) ([][]int, error)
}

// IndexEncoder maps the decimal string of every integer in [0, Size) to
// itself. Tokens that are not such a string are rejected, so it only
// serves corpora that are already written as indices.
type IndexEncoder struct {
	Size int
}

func (e IndexEncoder) Encode(sets [][]string) ([][]int, error) {
	word2idx := make(map[string]int, e.Size)
	for i := 0; i < e.Size; i++ {
		word2idx[strconv.Itoa(i)] = i
	}
	return encodeWith(sets, func(tok string) (int, bool) {
		id, ok := word2idx[tok]
		return id, ok
	})
}

// Vocabulary is an insertion-ordered, bidirectional token table.
type Vocabulary struct {
	toID   map[string]int
	toWord []string
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{toID: make(map[string]int)}
}

// BuildVocabulary assigns ids to tokens in order of first appearance.
func BuildVocabulary(sets [][]string) *Vocabulary {
	v := NewVocabulary()
	for _, set := range sets {
		for _, tok := range set {
			v.Add(tok)
		}
	}
	return v
}

// Add returns the id of tok, assigning the next free one if it is new.
func (v *Vocabulary) Add(tok string) int {
	if id, ok := v.toID[tok]; ok {
		return id
	}
	id := len(v.toWord)
	v.toID[tok] = id
	v.toWord = append(v.toWord, tok)
	return id
}

func (v *Vocabulary) ID(tok string) (int, bool) {
	id, ok := v.toID[tok]
	return id, ok
}

func (v *Vocabulary) Word(id int) (string, bool) {
	if id < 0 || id >= len(v.toWord) {
		return "", false
	}
	return v.toWord[id], true
}

func (v *Vocabulary) Len() int {
	return len(v.toWord)
}

// Words returns the tokens in id order.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.toWord))
	copy(out, v.toWord)
	return out
}

func (v *Vocabulary) Encode(sets [][]string) ([][]int, error) {
	return encodeWith(sets, v.ID)
}

// Decode maps ids back to tokens.
func (v *Vocabulary) Decode(ids []int) ([]string, error) {
	out := make([]string, len(ids))
	for i, id := range ids {
		w, ok := v.Word(id)
		if !ok {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "id %d at position %d", id, i)
		}
		out[i] = w
	}
	return out, nil
}

func encodeWith(sets [][]string, lookup func(string) (int, bool)) ([][]int, error) {
	out := make([][]int, len(sets))
	for i, set := range sets {
		ids := make([]int, len(set))
		for j, tok := range set {
			id, ok := lookup(tok)
			if !ok {
				return nil, errors.Wrapf(ErrUnknownToken, "%q in word set %d at position %d", tok, i, j)
			}
			ids[j] = id
		}
		out[i] = ids
	}
	return out, nil
}

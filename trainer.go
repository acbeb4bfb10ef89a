package skipgram

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// EpochStats summarizes one finished epoch.
type EpochStats struct {
	Epoch   int     `json:"epoch"`
	Loss    float64 `json:"loss"`
	Score   float64 `json:"score"`
	Stopped bool    `json:"stopped"`
}

// Trainer owns the hidden and output embedding matrices of a skip-gram
// model and updates them one target window at a time. Calls on the same
// Trainer are serialized.
type Trainer struct {
	mu sync.Mutex

	vocabSize int
	embDim    int
	alpha     float64
	epochs    int
	window    int

	hidden *mat.Dense // vocabSize x embDim
	output *mat.Dense // vocabSize x embDim

	losses  []float64 // per word set, reset every epoch
	scores  []float64 // per word set, reset every epoch
	history []float64 // per epoch, append only

	trackScore bool
	encoder    Encoder
	log        logrus.FieldLogger
	metrics    *Metrics
	onEpoch    func(EpochStats)
}

func NewTrainer(cfg Config) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	initFn, err := initializerFor(cfg.Init)
	if err != nil {
		return nil, err
	}

	t := &Trainer{
		vocabSize:  cfg.VocabSize,
		embDim:     cfg.EmbDim,
		alpha:      cfg.Alpha,
		epochs:     cfg.Epochs,
		window:     cfg.Window,
		hidden:     initFn(cfg.VocabSize, cfg.EmbDim),
		output:     initFn(cfg.VocabSize, cfg.EmbDim),
		trackScore: cfg.TrackScore,
		encoder:    cfg.Encoder,
		log:        cfg.Logger,
		metrics:    cfg.Metrics,
		onEpoch:    cfg.OnEpoch,
	}
	if t.encoder == nil {
		t.encoder = IndexEncoder{Size: cfg.VocabSize}
	}
	if t.log == nil {
		t.log = NewLogger(cfg.LogLevel, os.Stderr)
	}
	return t, nil
}

// Fit trains with the epoch count and window the Trainer was built with.
func (t *Trainer) Fit(words [][]string) ([]float64, error) {
	return t.Train(t.epochs, words, t.vocabSize, t.window)
}

// Train label-encodes words and runs up to epochs passes over them. It
// returns the per-epoch average losses recorded so far, stopping early
// once an epoch's loss exceeds the mean of the last four.
func (t *Trainer) Train(epochs int, words [][]string, vocabSize, window int) ([]float64, error) {
	if vocabSize != t.vocabSize {
		return nil, errors.Wrapf(ErrShapeMismatch, "vocab size %d, trainer built for %d", vocabSize, t.vocabSize)
	}
	sets, err := t.encoder.Encode(words)
	if err != nil {
		return nil, errors.Wrap(err, "label encode")
	}
	return t.TrainSets(epochs, sets, window)
}

// TrainSets is Train for corpora that are already encoded.
func (t *Trainer) TrainSets(epochs int, sets [][]int, window int) ([]float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	nonEmpty := 0
	for i, set := range sets {
		if err := t.checkIndices(set); err != nil {
			return nil, errors.Wrapf(err, "word set %d", i)
		}
		if len(set) > 0 {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		return nil, ErrEmptyCorpus
	}

	for epoch := 0; epoch < epochs; epoch++ {
		t.losses = t.losses[:0]
		t.scores = t.scores[:0]
		for _, set := range sets {
			t.forward(set, window)
		}

		avgLoss := stat.Mean(t.losses, nil)
		t.history = append(t.history, avgLoss)

		s := EpochStats{
			Epoch:   epoch,
			Loss:    avgLoss,
			Stopped: shouldStop(t.history),
		}
		if len(t.scores) > 0 {
			s.Score = stat.Mean(t.scores, nil)
		}
		t.log.WithFields(logrus.Fields{
			"epoch": s.Epoch,
			"loss":  s.Loss,
			"score": s.Score,
		}).Infof("Epoch: %d, Loss: %f", s.Epoch, s.Loss)
		t.metrics.epoch(s)
		if t.onEpoch != nil {
			// Released so the hook can read weights or history.
			t.mu.Unlock()
			t.onEpoch(s)
			t.mu.Lock()
		}

		if s.Stopped {
			decorate(t.log, 1).WithField("epoch", epoch).Info("early stopping: loss above trailing average")
			break
		}
	}
	return t.historyCopy(), nil
}

// shouldStop reports whether the newest loss exceeds the mean of the last
// four entries, itself included.
func shouldStop(history []float64) bool {
	if len(history) == 0 {
		return false
	}
	last := history[len(history)-1]
	return last > stat.Mean(history[max(0, len(history)-4):], nil)
}

// Forward runs one word set through the model, updating both matrices
// after every target, and appends the word set's average loss to the
// current epoch.
func (t *Trainer) Forward(wordSet []int, window int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkIndices(wordSet); err != nil {
		return err
	}
	t.forward(wordSet, window)
	return nil
}

func (t *Trainer) forward(wordSet []int, window int) {
	if len(wordSet) == 0 {
		return
	}

	targetLosses := make([]float64, 0, len(wordSet))
	var targetScores []float64
	for targetIdx, targetWord := range wordSet {
		target := t.oneHot(targetWord)

		hiddenEmb := mat.NewVecDense(t.embDim, nil)
		hiddenEmb.MulVec(t.hidden.T(), target)

		diff := mat.NewVecDense(t.vocabSize, nil)
		acc := diff.RawVector().Data

		// The output matrix and hidden embedding stay fixed until backward,
		// so every context of this target sees the same distribution.
		var probs []float64
		var scores []float64
		for _, ctxIdx := range ContextPositions(targetIdx, window, len(wordSet)) {
			if probs == nil {
				out := mat.NewVecDense(t.vocabSize, nil)
				out.MulVec(t.output, hiddenEmb)
				probs = Softmax(out.RawVector().Data)
			}
			truth := t.oneHot(wordSet[ctxIdx]).RawVector().Data

			floats.Add(acc, CrossEntropyLoss(probs, truth))
			floats.Add(acc, SquaredError(probs, truth))
			if t.trackScore {
				scores = append(scores, MacroF1(truth, probs))
			}
		}

		t.backward(diff, hiddenEmb, target)
		t.metrics.window()

		targetLosses = append(targetLosses, floats.Sum(acc))
		if len(scores) > 0 {
			targetScores = append(targetScores, stat.Mean(scores, nil))
		}
	}

	t.losses = append(t.losses, stat.Mean(targetLosses, nil))
	if len(targetScores) > 0 {
		t.scores = append(t.scores, stat.Mean(targetScores, nil))
	}
}

// Backward applies one update from the accumulated error diff:
// output += alpha * outer(hiddenEmb, diff)ᵀ and
// hidden += alpha * outer(target, outputᵀ·diff), both from the weights as
// they were before the call.
func (t *Trainer) Backward(diff, hiddenEmb, target *mat.VecDense) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if diff.Len() != t.vocabSize || target.Len() != t.vocabSize || hiddenEmb.Len() != t.embDim {
		return errors.Wrapf(ErrShapeMismatch, "diff %d, target %d, hidden %d; want %d, %d, %d",
			diff.Len(), target.Len(), hiddenEmb.Len(), t.vocabSize, t.vocabSize, t.embDim)
	}
	t.backward(diff, hiddenEmb, target)
	return nil
}

func (t *Trainer) backward(diff, hiddenEmb, target *mat.VecDense) {
	var outUpdate mat.Dense
	outUpdate.Outer(t.alpha, diff, hiddenEmb)

	proj := mat.NewVecDense(t.embDim, nil)
	proj.MulVec(t.output.T(), diff)
	var hiddenUpdate mat.Dense
	hiddenUpdate.Outer(t.alpha, target, proj)

	t.output.Add(t.output, &outUpdate)
	t.hidden.Add(t.hidden, &hiddenUpdate)
}

func (t *Trainer) oneHot(idx int) *mat.VecDense {
	v := mat.NewVecDense(t.vocabSize, nil)
	v.SetVec(idx, 1.0)
	return v
}

func (t *Trainer) checkIndices(set []int) error {
	for i, w := range set {
		if w < 0 || w >= t.vocabSize {
			return errors.Wrapf(ErrIndexOutOfRange, "word %d at position %d, vocab size %d", w, i, t.vocabSize)
		}
	}
	return nil
}

// History returns the per-epoch average losses recorded so far.
func (t *Trainer) History() []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.historyCopy()
}

func (t *Trainer) historyCopy() []float64 {
	out := make([]float64, len(t.history))
	copy(out, t.history)
	return out
}

// EpochLosses returns the word-set losses accumulated in the current epoch.
func (t *Trainer) EpochLosses() []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]float64, len(t.losses))
	copy(out, t.losses)
	return out
}

// HiddenWeight returns a copy of the hidden (input) embedding matrix.
func (t *Trainer) HiddenWeight() *mat.Dense {
	t.mu.Lock()
	defer t.mu.Unlock()
	return mat.DenseCopyOf(t.hidden)
}

// SetHiddenWeight replaces the hidden embedding matrix with a copy of m.
// The shape must match the one the Trainer was built with.
func (t *Trainer) SetHiddenWeight(m mat.Matrix) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, c := m.Dims()
	if r != t.vocabSize || c != t.embDim {
		return errors.Wrapf(ErrShapeMismatch, "hidden weight %dx%d, want %dx%d", r, c, t.vocabSize, t.embDim)
	}
	t.hidden = mat.DenseCopyOf(m)
	return nil
}

// OutputWeight returns a copy of the output embedding matrix.
func (t *Trainer) OutputWeight() *mat.Dense {
	t.mu.Lock()
	defer t.mu.Unlock()
	return mat.DenseCopyOf(t.output)
}

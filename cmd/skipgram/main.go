package main

import (
	"bytes"
	"crypto/sha256"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/cpuid/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"skipgram"
)

type trainFlags struct {
	Corpus    string
	Out       string
	Config    string
	VocabMode string
	Vocab     int
	Dim       int
	Win       int
	LR        float64
	Epochs    int
	Init      string
	LogLevel  string
	PromOut   string
	NoScore   bool
}

type cpuInfo struct {
	Brand        string `json:"brand"`
	LogicalCores int    `json:"logical_cores"`
	AVX2         bool   `json:"avx2"`
	FMA3         bool   `json:"fma3"`
}

type manifest struct {
	RunID      string          `json:"run_id"`
	CorpusPath string          `json:"corpus_path"`
	CorpusHash string          `json:"corpus_hash"`
	VocabMode  string          `json:"vocab_mode"`
	VocabSize  int             `json:"vocab_size"`
	WordSets   int             `json:"word_sets"`
	Config     skipgram.Config `json:"config"`
	CPU        cpuInfo         `json:"cpu"`
	EpochsRun  int             `json:"epochs_run"`
	FinalLoss  float64         `json:"final_loss"`
	TrainedAt  time.Time       `json:"trained_at"`
}

type metricsFile struct {
	Epochs []skipgram.EpochStats `json:"epochs"`
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "train":
		err = runTrain(os.Args[2:])
	case "demo":
		err = runDemo(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logrus.WithError(err).Error(os.Args[1] + " failed")
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("skipgram - skip-gram word embedding trainer")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  skipgram train --corpus FILE --out DIR [options]")
	fmt.Println("  skipgram demo")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  train    Train embeddings on a corpus, one word set per line")
	fmt.Println("  demo     Train the built-in four word example")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)

	def := skipgram.DefaultConfig()
	f := trainFlags{}
	fs.StringVar(&f.Corpus, "corpus", "", "Path to training corpus (required)")
	fs.StringVar(&f.Out, "out", "", "Output directory for metrics and manifest (required)")
	fs.StringVar(&f.Config, "config", "", "JSON config file")
	fs.StringVar(&f.VocabMode, "vocab-mode", "corpus", "corpus: build vocabulary from tokens; index: tokens are decimal ids")
	fs.IntVar(&f.Vocab, "vocab", 0, "Vocabulary size (index mode)")
	fs.IntVar(&f.Dim, "dim", def.EmbDim, "Embedding dimension")
	fs.IntVar(&f.Win, "win", def.Window, "Context window radius")
	fs.Float64Var(&f.LR, "lr", def.Alpha, "Learning rate")
	fs.IntVar(&f.Epochs, "epochs", def.Epochs, "Maximum number of epochs")
	fs.StringVar(&f.Init, "init", def.Init, "Weight initializer: xavier or glorot")
	fs.StringVar(&f.LogLevel, "log-level", def.LogLevel, "Log level")
	fs.StringVar(&f.PromOut, "prom-out", "", "Write prometheus metrics to this text file")
	fs.BoolVar(&f.NoScore, "no-score", false, "Skip the macro F1 diagnostic")

	fs.Parse(args)

	if f.Corpus == "" || f.Out == "" {
		fmt.Println("Error: --corpus and --out are required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	cfg := def
	if f.Config != "" {
		var err error
		if cfg, err = skipgram.LoadConfig(f.Config); err != nil {
			return err
		}
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "dim":
			cfg.EmbDim = f.Dim
		case "win":
			cfg.Window = f.Win
		case "lr":
			cfg.Alpha = f.LR
		case "epochs":
			cfg.Epochs = f.Epochs
		case "init":
			cfg.Init = f.Init
		case "log-level":
			cfg.LogLevel = f.LogLevel
		case "no-score":
			cfg.TrackScore = !f.NoScore
		}
	})

	runID := uuid.New().String()
	logger := skipgram.NewLogger(cfg.LogLevel, os.Stderr)
	log := logger.WithField("run", runID)

	if err := os.MkdirAll(f.Out, 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	raw, err := os.ReadFile(f.Corpus)
	if err != nil {
		return errors.Wrap(err, "read corpus")
	}
	corpusHash := fmt.Sprintf("%x", sha256.Sum256(raw))[:16]
	sets, err := skipgram.ReadCorpus(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"path": f.Corpus, "hash": corpusHash, "word_sets": len(sets)}).Info("loaded corpus")

	switch f.VocabMode {
	case "corpus":
		vocab := skipgram.BuildVocabulary(sets)
		cfg.VocabSize = vocab.Len()
		cfg.Encoder = vocab
	case "index":
		if f.Vocab <= 0 && cfg.VocabSize <= 0 {
			return errors.New("--vocab is required in index mode")
		}
		if f.Vocab > 0 {
			cfg.VocabSize = f.Vocab
		}
		cfg.Encoder = skipgram.IndexEncoder{Size: cfg.VocabSize}
	default:
		return errors.Errorf("unknown vocab mode %q", f.VocabMode)
	}

	reg := prometheus.NewRegistry()
	if cfg.Metrics, err = skipgram.NewMetrics(reg); err != nil {
		return err
	}
	var stats []skipgram.EpochStats
	cfg.OnEpoch = func(s skipgram.EpochStats) { stats = append(stats, s) }
	cfg.Logger = log

	cpu := cpuInfo{
		Brand:        cpuid.CPU.BrandName,
		LogicalCores: cpuid.CPU.LogicalCores,
		AVX2:         cpuid.CPU.Supports(cpuid.AVX2),
		FMA3:         cpuid.CPU.Supports(cpuid.FMA3),
	}
	log.WithFields(logrus.Fields{
		"vocab_size": cfg.VocabSize,
		"emb_dim":    cfg.EmbDim,
		"window":     cfg.Window,
		"alpha":      cfg.Alpha,
		"epochs":     cfg.Epochs,
		"cpu":        cpu.Brand,
		"avx2":       cpu.AVX2,
	}).Info("model configuration")

	trainer, err := skipgram.NewTrainer(cfg)
	if err != nil {
		return err
	}
	history, err := trainer.Fit(sets)
	if err != nil {
		return err
	}

	if err := saveJSON(filepath.Join(f.Out, "metrics.json"), metricsFile{Epochs: stats}); err != nil {
		return err
	}
	m := manifest{
		RunID:      runID,
		CorpusPath: f.Corpus,
		CorpusHash: corpusHash,
		VocabMode:  f.VocabMode,
		VocabSize:  cfg.VocabSize,
		WordSets:   len(sets),
		Config:     cfg,
		CPU:        cpu,
		EpochsRun:  len(history),
		TrainedAt:  time.Now(),
	}
	if len(history) > 0 {
		m.FinalLoss = history[len(history)-1]
	}
	if err := saveJSON(filepath.Join(f.Out, "manifest.json"), m); err != nil {
		return err
	}
	if f.PromOut != "" {
		if err := prometheus.WriteToTextfile(f.PromOut, reg); err != nil {
			return errors.Wrap(err, "write prometheus textfile")
		}
	}

	log.WithFields(logrus.Fields{"epochs": len(history), "final_loss": m.FinalLoss, "out": f.Out}).Info("training complete")
	return nil
}

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	level := fs.String("log-level", "info", "Log level")
	fs.Parse(args)

	cfg := skipgram.Config{
		VocabSize:  4,
		Alpha:      0.01,
		Epochs:     5,
		EmbDim:     2,
		Window:     1,
		Init:       skipgram.InitXavier,
		TrackScore: true,
		Logger:     skipgram.NewLogger(*level, os.Stderr),
	}
	trainer, err := skipgram.NewTrainer(cfg)
	if err != nil {
		return err
	}
	history, err := trainer.Fit([][]string{{"0", "1", "2", "3"}})
	if err != nil {
		return err
	}
	for i, loss := range history {
		fmt.Printf("epoch %d: loss %.6f\n", i, loss)
	}
	emb := trainer.HiddenTensor()
	fmt.Printf("hidden embeddings %v:\n%v\n", emb.Shape(), emb)
	return nil
}

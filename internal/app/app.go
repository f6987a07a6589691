// Package app builds a Checker from application settings.
package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/artikel/pkg/artikel"
	"github.com/cognicore/artikel/pkg/artikel/annotate"
	"github.com/cognicore/artikel/pkg/artikel/config"
	"github.com/cognicore/artikel/pkg/artikel/internalerr"
	"github.com/cognicore/artikel/pkg/artikel/segment"
	"github.com/cognicore/artikel/pkg/artikel/store"
	"github.com/cognicore/artikel/pkg/artikel/store/filestore"
	"github.com/cognicore/artikel/pkg/artikel/store/memstore"
	"github.com/cognicore/artikel/pkg/artikel/store/redisstore"
	"github.com/cognicore/artikel/pkg/artikel/store/sqlite"
)

// NewChecker loads the dictionaries and wires the annotator and cache store
// selected by s.
func NewChecker(ctx context.Context, s *config.Settings, log *logrus.Logger) (*artikel.Checker, error) {
	dict, err := s.Loader().Load()
	if err != nil {
		return nil, err
	}
	comp := dict.Components()
	log.WithFields(logrus.Fields{
		"contractions": comp.Normalizer.Len(),
		"tag_rules":    len(comp.Rules),
		"uncountable":  len(dict.Uncountable),
	}).Info("dictionaries loaded")

	annotator, segmenter, err := NewAnnotator(s.Annotator, log)
	if err != nil {
		return nil, err
	}

	st, err := OpenStore(ctx, s.Cache, log)
	if err != nil {
		return nil, err
	}

	return artikel.New(artikel.Options{
		Normalizer: comp.Normalizer,
		Annotator:  annotator,
		Rules:      comp.Rules,
		Classifier: comp.Classifier,
		Segmenter:  segmenter,
		Store:      st,
		Workers:    s.Workers,
		Logger:     log,
	})
}

// NewAnnotator returns the configured annotator and the sentence segmenter
// that goes with it.
func NewAnnotator(s config.AnnotatorSettings, log *logrus.Logger) (annotate.Annotator, segment.Segmenter, error) {
	switch s.Type {
	case "", "lexicon":
		if s.Lexicon == "" {
			return annotate.NewLexicon(nil), segment.Simple{}, nil
		}
		lex, err := annotate.LoadLexicon(s.Lexicon)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: lexicon: %w", internalerr.ErrInvalidConfig, err)
		}
		return lex, segment.Simple{}, nil
	case "prose":
		return annotate.NewProse(), segment.Prose{}, nil
	case "remote":
		return annotate.NewRemote(s.URL, s.RetryMax, s.Timeout, log), segment.Prose{}, nil
	}
	return nil, nil, fmt.Errorf("%w: unknown annotator %q", internalerr.ErrInvalidConfig, s.Type)
}

// OpenStore opens the configured cache store; "none" gives nil.
func OpenStore(ctx context.Context, s config.CacheSettings, log *logrus.Logger) (store.Store, error) {
	switch s.Type {
	case "", "none":
		return nil, nil
	case "memory":
		return memstore.New(), nil
	case "file":
		return filestore.Open(s.Path, log)
	case "sqlite":
		return sqlite.OpenSQLite(ctx, s.Path)
	case "redis":
		prefix := s.RedisPrefix
		if prefix == "" {
			prefix = redisstore.DefaultPrefix
		}
		return redisstore.Open(ctx, s.RedisAddr, redisstore.WithPrefix(prefix), redisstore.WithTTL(s.RedisTTL))
	}
	return nil, fmt.Errorf("%w: unknown cache %q", internalerr.ErrInvalidConfig, s.Type)
}

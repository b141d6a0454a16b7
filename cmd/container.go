package main

import (
	"github.com/Abraxas-365/sift/analysis/analysisapi"
	"github.com/Abraxas-365/sift/analysis/analysissrv"
	"github.com/Abraxas-365/sift/analysis/vocabulary"
	"github.com/Abraxas-365/sift/internal/extract"
	"github.com/Abraxas-365/sift/pkg/logx"
)

// Container holds all application dependencies
type Container struct {
	Vocabulary *vocabulary.Store
	Extractor  *extract.Extractor
	Service    *analysissrv.Service
	Handlers   *analysisapi.Handlers
}

// NewContainer initializes the dependency container. An empty vocabularyPath
// keeps the built-in vocabulary; otherwise the YAML override is loaded on
// top of it.
func NewContainer(vocabularyPath string) *Container {
	c := &Container{}

	c.Vocabulary = vocabulary.Default()
	if vocabularyPath != "" {
		store, err := vocabulary.Load(vocabularyPath)
		if err != nil {
			logx.Fatalf("Failed to load vocabulary file %s: %v", vocabularyPath, err)
		}
		c.Vocabulary = store
		logx.Infof("Loaded vocabulary overrides from %s", vocabularyPath)
	}

	c.Extractor = extract.New()
	c.Service = analysissrv.NewService(c.Vocabulary, c.Extractor)
	c.Handlers = analysisapi.NewHandlers(c.Service)

	return c
}

package report

import (
	"context"
	"log"

	"cloud.google.com/go/civil"
	"github.com/carbocation/interactomestats/graphsource"
	"github.com/carbocation/interactomestats/proteome"
)

// Artifact file names.
const (
	InteractionsFile         = "interactions.csv"
	PublicationsFile         = "publication_experiment.csv"
	CurationDistributionFile = "curation_distribution.csv"
	MethodDistributionFile   = "method_distribution.csv"
	SpeciesCoverFile         = "species_cover.csv"
	SummaryTableFile         = "summary_table.csv"
)

// Config is everything a run reads from.
type Config struct {
	Source  graphsource.Source
	Fetcher proteome.ReferenceFetcher
	Catalog proteome.Catalog
	Today   civil.Date
}

// Artifacts holds every table of one run.
type Artifacts struct {
	Interactions         []InteractionRow
	Publications         []PublicationRow
	CurationDistribution []CurationRow
	MethodDistribution   []MethodRow
	SpeciesCover         []proteome.Coverage
	SummaryTable         []SummaryRow
}

// Build computes every artifact. Nothing is returned unless all of them
// succeed.
func Build(ctx context.Context, cfg Config) (*Artifacts, error) {
	var (
		out Artifacts
		err error
	)

	log.Println("Building interaction growth")
	if out.Interactions, err = Interactions(ctx, cfg.Source, cfg.Today); err != nil {
		return nil, err
	}

	log.Println("Building publication and experiment totals")
	if out.Publications, err = PublicationsExperiments(ctx, cfg.Source); err != nil {
		return nil, err
	}

	log.Println("Building curation distribution")
	if out.CurationDistribution, err = CurationDistribution(ctx, cfg.Source, cfg.Today); err != nil {
		return nil, err
	}

	log.Println("Building method distribution")
	if out.MethodDistribution, err = MethodDistribution(ctx, cfg.Source); err != nil {
		return nil, err
	}

	log.Println("Building species coverage")
	if out.SpeciesCover, err = SpeciesCoverage(ctx, cfg.Source, cfg.Catalog, cfg.Fetcher); err != nil {
		return nil, err
	}

	log.Println("Building summary table")
	if out.SummaryTable, err = Summary(ctx, cfg.Source); err != nil {
		return nil, err
	}

	return &out, nil
}

// Emit writes every artifact to sink.
func (a *Artifacts) Emit(ctx context.Context, sink Sink) error {
	artifacts := []struct {
		name string
		rows interface{}
	}{
		{InteractionsFile, &a.Interactions},
		{PublicationsFile, &a.Publications},
		{CurationDistributionFile, &a.CurationDistribution},
		{MethodDistributionFile, &a.MethodDistribution},
		{SpeciesCoverFile, &a.SpeciesCover},
		{SummaryTableFile, &a.SummaryTable},
	}

	for _, artifact := range artifacts {
		if err := sink.WriteArtifact(ctx, artifact.name, artifact.rows); err != nil {
			return err
		}
		log.Printf("Wrote %s\n", artifact.name)
	}

	return nil
}

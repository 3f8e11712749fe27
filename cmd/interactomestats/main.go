package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/civil"
	"cloud.google.com/go/storage"
	"github.com/carbocation/interactomestats"
	_ "github.com/carbocation/interactomestats/compileinfoprint"
	"github.com/carbocation/interactomestats/daterange"
	"github.com/carbocation/interactomestats/graphsource"
	"github.com/carbocation/interactomestats/proteome"
	"github.com/carbocation/interactomestats/report"
	"google.golang.org/api/option"
)

func main() {
	var (
		uri            string
		database       string
		user           string
		password       string
		replay         string
		export         string
		out            string
		reference      string
		todayString    string
		gcpCredentials string
		displayQuery   bool
	)

	flag.StringVar(&uri, "uri", "bolt://localhost:7687", "Address of the Neo4j server holding the interaction graph")
	flag.StringVar(&database, "database", "", "Neo4j database name (Optional; default: the server's default database)")
	flag.StringVar(&user, "user", "", "Neo4j user name")
	flag.StringVar(&password, "pw", "", "Neo4j password")
	flag.StringVar(&replay, "replay", "", "Directory (local or gs://) of query exports to read instead of connecting to Neo4j")
	flag.StringVar(&export, "export", "", "Directory (local or gs://) into which every query result is also written, for later use with -replay (Optional)")
	flag.StringVar(&out, "out", "", "Directory (local or gs://) into which the CSV statistics are written")
	flag.StringVar(&reference, "reference", proteome.UniProtReviewedProteome, "Location of reference proteome listings, with one %s for the proteome ID. May be a URL, a local path, or a gs:// path")
	flag.StringVar(&todayString, "today", "", "With format YYYY-MM-DD, the last day of the time series (Optional; default: today)")
	flag.StringVar(&gcpCredentials, "gcp-credentials", "", "Service account JSON file for Google Storage access (Optional; default: application default credentials)")
	flag.BoolVar(&displayQuery, "display_query", false, "Display the queries that will be run, then exit?")
	flag.Parse()

	if displayQuery {
		queries, err := report.Queries()
		if err != nil {
			log.Fatalln(err)
		}
		for _, q := range queries {
			fmt.Printf("// %s %v\n%s\n\n", q.Name, q.Params, q.Text)
		}
		return
	}

	if out == "" || (replay == "" && (user == "" || password == "")) {
		flag.PrintDefaults()
		os.Exit(1)
	}

	today := daterange.Today()
	if todayString != "" {
		parsed, err := civil.ParseDate(todayString)
		if err != nil {
			log.Fatalln(err)
		}
		today = parsed
	}

	var err error
	for _, path := range []*string{&replay, &export, &out, &reference, &gcpCredentials} {
		if *path, err = interactomestats.ExpandHome(*path); err != nil {
			log.Fatalln(err)
		}
	}

	ctx := context.Background()

	var storageClient *storage.Client
	if usesGoogleStorage(replay, export, out, reference) {
		var opts []option.ClientOption
		if gcpCredentials != "" {
			opts = append(opts, option.WithCredentialsFile(gcpCredentials))
		}

		storageClient, err = storage.NewClient(ctx, opts...)
		if err != nil {
			log.Fatalf("Connecting to Google Storage: %s\n", err)
		}
		defer storageClient.Close()
	}

	if !interactomestats.IsGoogleStoragePath(out) {
		if err := os.MkdirAll(out, 0755); err != nil {
			log.Fatalln(err)
		}
	}
	if export != "" && !interactomestats.IsGoogleStoragePath(export) {
		if err := os.MkdirAll(export, 0755); err != nil {
			log.Fatalln(err)
		}
	}

	var src graphsource.Source
	if replay != "" {
		log.Println("Replaying query results from", replay)
		src = graphsource.TSVReplay{Dir: replay, Storage: storageClient}
	} else {
		log.Println("Connecting to Neo4j at", uri)
		db, err := graphsource.NewNeo4j(ctx, uri, user, password, database)
		if err != nil {
			log.Fatalln(err)
		}
		defer db.Close(ctx)
		src = db
	}

	if export != "" {
		log.Println("Exporting query results to", export)
		src = graphsource.Recorder{Source: src, Dir: export, Storage: storageClient}
	}

	log.Println("Computing statistics through", today)

	artifacts, err := report.Build(ctx, report.Config{
		Source:  src,
		Fetcher: proteome.UniProt{Location: reference, Storage: storageClient},
		Catalog: proteome.ReferenceProteomes,
		Today:   today,
	})
	if err != nil {
		log.Fatalln(err)
	}

	if err := artifacts.Emit(ctx, report.FileSink{Root: out, Storage: storageClient}); err != nil {
		log.Fatalln(err)
	}

	log.Println("Done")
}

func usesGoogleStorage(paths ...string) bool {
	for _, path := range paths {
		if interactomestats.IsGoogleStoragePath(path) {
			return true
		}
	}

	return false
}

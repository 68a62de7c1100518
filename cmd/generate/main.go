package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"catalog-gen/internal/catalog"
	"catalog-gen/internal/config"
	"catalog-gen/internal/content"
	"catalog-gen/internal/export"
	"catalog-gen/internal/identity"
	"catalog-gen/internal/ingest"
	"catalog-gen/internal/providers/glm"
	"catalog-gen/internal/report"
	"catalog-gen/internal/sftpclient"
	"catalog-gen/internal/taxonomy"
)

func main() {
	cfg := config.Load()

	var (
		inPath        = flag.String("in", cfg.InputPath, "input course csv path")
		outPath       = flag.String("out", cfg.OutputPath, "output catalog csv path")
		taxonomyPath  = flag.String("taxonomy", cfg.TaxonomyPath, "taxonomy table YAML override")
		templatesPath = flag.String("templates", cfg.TemplatesPath, "template library YAML override")
		compress      = flag.Bool("compress", false, "write a brotli side-car next to the output")
		uploadSFTP    = flag.Bool("sftp", false, "upload the generated catalog via SFTP")
	)
	flag.Parse()

	rootCtx, rootCancel := context.WithTimeout(context.Background(), 1*time.Hour)
	defer rootCancel()

	table := taxonomy.Default()
	if *taxonomyPath != "" {
		var err error
		if table, err = taxonomy.LoadFile(*taxonomyPath); err != nil {
			log.Fatal(err)
		}
	}
	library := content.Default()
	if *templatesPath != "" {
		var err error
		if library, err = content.LoadFile(*templatesPath); err != nil {
			log.Fatal(err)
		}
	}

	courses, err := ingest.ReadCourses(*inPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("read %d courses from %s", len(courses), *inPath)

	builder := &catalog.Builder{
		Classifier: taxonomy.New(table),
		Decomposer: content.NewDecomposer(library),
		Gen:        identity.New(),
	}
	if cfg.GLMAPIKey != "" {
		builder.Enricher = glm.New(cfg.GLMBaseURL, cfg.GLMAPIKey)
		log.Printf("GLM enrichment enabled (%s)", cfg.GLMBaseURL)
	}

	entries, enrichErrs := builder.BuildAll(rootCtx, courses)
	for _, err := range enrichErrs {
		// those rows still carry rule-based titles
		log.Printf("WARN: %v", err)
	}
	if len(enrichErrs) > 0 {
		log.Printf("WARN: %d rows fell back to rule-based titles", len(enrichErrs))
	}

	if dir := filepath.Dir(*outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}
	if err := export.WriteCatalogCSV(*outPath, entries); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d rows to %s", len(entries), *outPath)

	uploads := []string{*outPath}
	if *compress {
		sidecar, err := export.CompressFile(*outPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", sidecar)
		uploads = append(uploads, sidecar)
	}

	fmt.Print(report.Summary(entries))

	if *uploadSFTP {
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		upCtx, upCancel := context.WithTimeout(rootCtx, 5*time.Minute)
		defer upCancel()

		if err := sftpclient.UploadFiles(upCtx, upCfg, uploads); err != nil {
			log.Fatal(err)
		}
		log.Printf("uploaded %d file(s) to sftp://%s:%d%s", len(uploads), upCfg.Host, upCfg.Port, upCfg.RemoteDir)
	}
}

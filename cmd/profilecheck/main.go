// Command profilecheck loads the user preferences and resume documents,
// runs full validation, and reports every violation found. It is meant for
// a human editing the documents by hand: fix everything in one pass.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"autoapply/internal/config"
	"autoapply/internal/loader"
)

func main() {
	profilePath := flag.String("profile", "user_profile/profile.yaml", "path to the preferences document")
	resumePath := flag.String("resume", "user_profile/resume.json", "path to the resume document")
	flag.Parse()

	policy := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	prefsFile, err := os.Open(*profilePath)
	if err != nil {
		log.Fatalf("open preferences document: %v", err)
	}
	defer prefsFile.Close()

	resumeFile, err := os.Open(*resumePath)
	if err != nil {
		log.Fatalf("open resume document: %v", err)
	}
	defer resumeFile.Close()

	l := loader.New(*policy, logger)
	prefs, rec, err := l.Load(prefsFile, resumeFile)
	if err != nil {
		var parseErr *loader.ParseError
		if errors.As(err, &parseErr) {
			logger.Error("document is not well-formed",
				slog.String("document", parseErr.Document),
				slog.String("error", parseErr.Err.Error()),
			)
			os.Exit(1)
		}

		var valErr *loader.ValidationError
		if errors.As(err, &valErr) {
			for _, v := range valErr.Violations {
				logger.Error("validation failed",
					slog.String("path", v.Path),
					slog.String("reason", v.Reason),
				)
			}
			logger.Error("documents rejected",
				slog.String("document", valErr.Document),
				slog.Int("violations", len(valErr.Violations)),
			)
			os.Exit(1)
		}

		log.Fatalf("load documents: %v", err)
	}

	log.Printf("documents valid: user=%s titles=%d locations=%d skills=%d positions=%d",
		prefs.UserID,
		len(prefs.JobSearch.JobTitles),
		len(prefs.JobSearch.Locations),
		len(rec.Skills.All()),
		len(rec.Experience),
	)
}

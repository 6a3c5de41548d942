package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/m-lyon/porcaro/cache"
	"github.com/m-lyon/porcaro/input"
	"github.com/m-lyon/porcaro/sheet"
	"github.com/m-lyon/porcaro/transcribe"
	"github.com/m-lyon/porcaro/viz"
)

const defaultCacheBytes = 64 * 1024 * 1024

var (
	flagAnchor        int
	flagDropUnlabeled bool
	flagMidi          bool
	flagPng           bool
	flagTitle         string
)

func init() {
	transcribeCmd.Flags().IntVar(&flagAnchor, "anchor", transcribe.AutoAnchor,
		"onset index to anchor the grid to (-1 searches for the best one)")
	transcribeCmd.Flags().BoolVar(&flagDropUnlabeled, "drop-unlabeled", false,
		"drop onsets with no classifier label instead of assigning the placeholder")
	transcribeCmd.Flags().BoolVar(&flagMidi, "midi", false, "also write a standard MIDI file")
	transcribeCmd.Flags().BoolVar(&flagPng, "png", false, "also write a grid-alignment PNG")
	transcribeCmd.Flags().StringVar(&flagTitle, "title", "", "score title (defaults to the document title)")
	rootCmd.AddCommand(transcribeCmd)
}

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <onsets.json> [more.json...]",
	Short: "Transcribes onset documents into notated scores",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docs := cache.New(cacheBudget())
		for _, path := range args {
			if err := transcribeOne(docs, path); err != nil {
				return fmt.Errorf("%v: %w", path, err)
			}
		}
		return nil
	},
}

func transcribeOne(docs *cache.LRU, path string) error {
	raw, ok := docs.Get(path)
	if !ok {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return err
		}
		docs.Put(path, raw)
	}
	doc, err := input.Decode(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	opts := transcribe.DefaultOptions()
	opts.Anchor = flagAnchor
	if flagDropUnlabeled {
		opts.Policy = transcribe.DropUnlabeled
	}
	meta := doc.Metadata()
	res, err := transcribe.Run(doc.Events(), meta, opts)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		logrus.Warn(w.String())
	}

	title := flagTitle
	if title == "" {
		title = doc.Title
	}
	score, err := sheet.Build(res.Durations, res.Notes, meta, title)
	if err != nil {
		return err
	}

	base := artifactBase(title)
	xmlPath := base + ".musicxml"
	f, err := os.Create(xmlPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := score.WriteMusicXML(f); err != nil {
		return err
	}
	logrus.WithField("path", xmlPath).Info("wrote score")

	if flagMidi {
		mf, err := os.Create(base + ".mid")
		if err != nil {
			return err
		}
		defer mf.Close()
		if err := score.WriteSMF(mf); err != nil {
			return err
		}
		logrus.WithField("path", base+".mid").Info("wrote midi")
	}
	if flagPng {
		times := make([]float64, len(doc.Onsets))
		for i, o := range doc.Onsets {
			times[i] = o.PeakTime
		}
		if err := viz.RenderAlignment(base+".png", times, res.Raw, res.Synced, meta.Duration); err != nil {
			return err
		}
		logrus.WithField("path", base+".png").Info("wrote alignment render")
	}
	return nil
}

// artifactBase picks the output path stem: the score title when given, else a
// fresh uuid so parallel runs never clobber each other.
func artifactBase(title string) string {
	name := title
	if name == "" {
		name = uuid.New().String()
	}
	return filepath.Join(outDir(), name)
}

func cacheBudget() int64 {
	if v := os.Getenv("PORCARO_CACHE_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultCacheBytes
}

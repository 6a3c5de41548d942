package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "porcaro",
	Short: "Drum transcription toolkit",
	Long:  `Quantizes detected drum onsets onto a rhythmic grid and renders notation.`,
}

func Execute() {
	// optional .env for output dir / cache budget defaults
	godotenv.Load()
	logrus.SetOutput(os.Stderr)
	cobra.CheckErr(rootCmd.Execute())
}

// outDir resolves the artifact output directory, PORCARO_OUT_DIR overriding
// the working directory.
func outDir() string {
	if dir := os.Getenv("PORCARO_OUT_DIR"); dir != "" {
		return dir
	}
	return "."
}

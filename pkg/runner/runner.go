package runner

import (
	"bytes"
	"os"

	"github.com/dimiro1/banner"
)

const Version = "dev"

// PrintBanner writes the startup banner to stdout.
func PrintBanner() {
	tpl := "{{ .Title \"HEARTHVOX\" \"\" 0 }}\nTTS subsystem, version: " + Version + "\n"
	banner.Init(os.Stdout, true, true, bytes.NewBufferString(tpl))
}

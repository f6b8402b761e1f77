package export

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// runPandoc converts an HTML file into the target format. Combined output
// is folded into the error to surface missing-binary and conversion
// diagnostics.
func runPandoc(ctx context.Context, pandocPath, inputPath, outputPath string, format Format) error {
	cmd := exec.CommandContext(ctx, pandocPath,
		inputPath,
		"-f", "html",
		"-t", string(format),
		"--standalone",
		"-o", outputPath,
	)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pandoc failed: %w; output:\n%s", err, out.String())
	}
	return nil
}

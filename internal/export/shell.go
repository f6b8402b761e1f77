package export

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// documentShell is the print layout every exported document is embedded in.
// The @page rule sizes output for A4; headless Chrome honors it when
// printing to PDF.
const documentShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: A4; margin: 20mm; }
body { font-family: Arial, Helvetica, sans-serif; font-size: 11pt; line-height: 1.5; color: #222222; max-width: 800px; margin: 0 auto; padding: 24px; }
h1 { text-align: center; font-size: 24pt; margin-bottom: 4px; }
h2 { font-size: 14pt; border-bottom: 1px solid #444444; padding-bottom: 2px; margin-top: 18px; }
.profile-img { width: 150px; height: 150px; border-radius: 50%%; object-fit: cover; display: block; margin: 0 auto 12px; }
img { max-width: 100%%; }
</style>
</head>
<body>
%s
</body>
</html>`

// wrapDocument embeds resume markup in the print shell. Full HTML documents
// are reduced to their body content first so shells never nest.
func wrapDocument(content string) string {
	if strings.Contains(strings.ToLower(content), "<html") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
			if body, err := doc.Find("body").Html(); err == nil {
				content = strings.TrimSpace(body)
			}
		}
	}
	return fmt.Sprintf(documentShell, content)
}

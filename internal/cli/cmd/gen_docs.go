package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/lookout/internal/domain/build"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/infrastructure/config"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	referenceName = build.Name + "-preferences"
)

var (
	genDocsOutputDir string
	genDocsFormat    string
)

// docFormat generates one documentation flavour into a directory.
type docFormat struct {
	defaultDir func() (string, error)
	exts       []string
	generate   func(dir string) error
}

var docFormats = map[string]docFormat{
	"man": {
		defaultDir: config.GetManDir,
		exts:       []string{".1", ".7"},
		generate:   generateManPages,
	},
	"markdown": {
		defaultDir: func() (string, error) { return "./docs", nil },
		exts:       []string{".md", ".json"},
		generate:   generateMarkdown,
	},
}

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown docs",
	Long: `Generate documentation from the command tree, plus a reference page
listing the media queries lookout answers, the classes it applies and the
config keys that override each signal.

Formats:
  man       lookout(1) pages and lookout-preferences(7)
  markdown  one page per command, preferences.md and config.schema.json

Man pages go to ~/.local/share/man by default; run 'mandb' if
'man lookout' does not find them.

Examples:
  lookout gen-docs
  lookout gen-docs --format markdown
  lookout gen-docs --output ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	format, ok := docFormats[genDocsFormat]
	if !ok {
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	dir := genDocsOutputDir
	if dir == "" {
		var err error
		if dir, err = format.defaultDir(); err != nil {
			return fmt.Errorf("resolve output directory: %w", err)
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Keeps the output reproducible.
	rootCmd.DisableAutoGenTag = true
	if err := format.generate(dir); err != nil {
		return err
	}

	fmt.Printf("Generated %s docs in %s\n", genDocsFormat, dir)
	for _, name := range generatedFiles(dir, format.exts) {
		fmt.Printf("  - %s\n", name)
	}
	if genDocsFormat == "man" {
		fmt.Println("Run 'mandb' if 'man lookout' doesn't work immediately.")
	}
	return nil
}

func generatedFiles(dir string, exts []string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if slices.Contains(exts, filepath.Ext(e.Name())) {
			names = append(names, e.Name())
		}
	}
	return names
}

func generateManPages(dir string) error {
	now := time.Now()
	header := &doc.GenManHeader{
		Title:   strings.ToUpper(build.Name),
		Section: "1",
		Source:  build.Name + " " + buildInfo.Version,
		Manual:  "Lookout Manual",
		Date:    &now,
	}
	if err := doc.GenManTree(rootCmd, header, dir); err != nil {
		return fmt.Errorf("generate man pages: %w", err)
	}

	page := manReference(now)
	return os.WriteFile(filepath.Join(dir, referenceName+".7"), []byte(page), filePerm)
}

func generateMarkdown(dir string) error {
	if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "preferences.md"), []byte(markdownReference()), filePerm); err != nil {
		return fmt.Errorf("write preferences reference: %w", err)
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.schema.json"), append(schema, '\n'), filePerm)
}

// signalDoc describes one media query and the config key that can force it.
type signalDoc struct {
	Media    string
	Override string
}

func signalDocs() []signalDoc {
	docs := make([]signalDoc, 0, len(entity.SignalKinds()))
	for _, kind := range entity.SignalKinds() {
		d := signalDoc{Media: kind.Media()}
		switch kind {
		case entity.SignalDark:
			d.Override = fmt.Sprintf("appearance.color_scheme = %q | %q",
				config.ColorSchemePreferDark, config.ColorSchemePreferLight)
		case entity.SignalMediumContrast:
			d.Override = fmt.Sprintf("appearance.contrast = %q", config.ContrastMedium)
		case entity.SignalHighContrast:
			d.Override = fmt.Sprintf("appearance.contrast = %q", config.ContrastHigh)
		}
		docs = append(docs, d)
	}
	return docs
}

// classNames lists every root class lookout can apply.
func classNames() []string {
	var names []string
	for _, theme := range []entity.Theme{entity.ThemeLight, entity.ThemeDark} {
		for _, c := range []entity.Contrast{entity.ContrastStandard, entity.ContrastMedium, entity.ContrastHigh} {
			names = append(names, entity.SystemPreferences{Theme: theme, Contrast: c}.ClassName())
		}
	}
	return names
}

func markdownReference() string {
	var b strings.Builder
	b.WriteString("# lookout preferences\n\n")
	b.WriteString("## Media queries\n\n| Query | Config override |\n|---|---|\n")
	for _, d := range signalDocs() {
		fmt.Fprintf(&b, "| `%s` | `%s` |\n", d.Media, d.Override)
	}
	b.WriteString("\nHigh contrast wins over more contrast. A signal no source can answer does not match.\n")
	b.WriteString("\n## Root classes\n\n")
	for _, name := range classNames() {
		fmt.Fprintf(&b, "- `%s`\n", name)
	}
	return b.String()
}

func manReference(date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, ".TH %s 7 %q %q %q\n", strings.ToUpper(referenceName), date.Format("Jan 2006"),
		build.Name+" "+buildInfo.Version, "Lookout Manual")
	fmt.Fprintf(&b, ".SH NAME\n%s \\- media queries and classes used by lookout\n", referenceName)
	b.WriteString(".SH MEDIA QUERIES\n")
	for _, d := range signalDocs() {
		fmt.Fprintf(&b, ".TP\n.B %s\nforced by %s\n", d.Media, d.Override)
	}
	b.WriteString(".PP\nHigh contrast wins over more contrast. A signal no source can answer does not match.\n")
	b.WriteString(".SH CLASSES\n")
	for _, name := range classNames() {
		fmt.Fprintf(&b, ".IP \\(bu 2\n%s\n", name)
	}
	fmt.Fprintf(&b, ".SH SEE ALSO\n.BR %s (1)\n", build.Name)
	return b.String()
}

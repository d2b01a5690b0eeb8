package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator translates headings and labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Frame Assembly Summary"))

	// Input
	fmt.Fprintf(&b, "## %s\n\n", t("Input"))
	f.tableHeader(&b)
	f.row(&b, "Frame Directory", "`"+s.Input.Dir+"`")
	f.row(&b, "Extensions", strings.Join(s.Input.Extensions, ", "))
	f.row(&b, "Frames Found", fmt.Sprintf("%d", s.Input.FramesFound))
	if !s.Input.ZeroPadded && s.Input.FramesFound > 0 {
		f.row(&b, "Naming", t("Not zero-padded"))
	}
	b.WriteString("\n")

	// Output
	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	f.tableHeader(&b)
	f.row(&b, "Video File", "`"+s.Video.Path+"`")
	f.row(&b, "Codec", s.Video.Codec)
	f.row(&b, "Backend", s.Settings.Backend)
	f.row(&b, "Dimensions", fmt.Sprintf("%dx%d", s.Video.Width, s.Video.Height))
	f.row(&b, "Frame Rate", fmt.Sprintf("%d fps", s.Settings.FPS))
	f.row(&b, "Frames Written", fmt.Sprintf("%d", s.Video.FramesWritten))
	f.row(&b, "Duration", formatDuration(s.Video.DurationMs))
	f.row(&b, "File Size", formatBytes(s.Video.FileSize))
	quality := fmt.Sprintf("%d", s.Settings.Quality)
	if s.Settings.QualityPreset != "" {
		quality += " (" + s.Settings.QualityPreset + ")"
	}
	f.row(&b, "Quality", quality)
	if s.Settings.DimensionPolicy != "" {
		f.row(&b, "Dimension Policy", s.Settings.DimensionPolicy)
	}
	b.WriteString("\n")

	// Skipped frames
	fmt.Fprintf(&b, "## %s\n\n", t("Skipped Frames"))
	if len(s.Skipped) == 0 {
		fmt.Fprintf(&b, "%s\n\n", t("None"))
	} else {
		fmt.Fprintf(&b, "| # | %s | %s |\n", t("File"), t("Reason"))
		b.WriteString("|---|------|--------|\n")
		for _, sk := range s.Skipped {
			fmt.Fprintf(&b, "| %d | `%s` | %s |\n", sk.Index, sk.Path, escapeCell(sk.Reason))
		}
		b.WriteString("\n")
	}

	// Verification
	if p := s.Probe; p != nil {
		fmt.Fprintf(&b, "## %s\n\n", t("Verification"))
		f.tableHeader(&b)
		f.row(&b, "Container", p.Container)
		f.row(&b, "Frames in File", fmt.Sprintf("%d", p.FrameCount))
		f.row(&b, "Frame Rate in File", fmt.Sprintf("%.3f fps", p.FPS))
		f.row(&b, "Dimensions in File", fmt.Sprintf("%dx%d", p.Width, p.Height))
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	generated := s.GeneratedAt.Format("2006-01-02 15:04:05 MST")
	if f.version != "" {
		fmt.Fprintf(&b, "%s %s (framereel %s)\n", t("Generated at"), generated, f.version)
	} else {
		fmt.Fprintf(&b, "%s %s\n", t("Generated at"), generated)
	}

	return b.String()
}

func (f *MarkdownFormatter) tableHeader(b *strings.Builder) {
	fmt.Fprintf(b, "| %s | %s |\n", f.translate("Item"), f.translate("Value"))
	b.WriteString("|------|-------|\n")
}

func (f *MarkdownFormatter) row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", f.translate(label), value)
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

// formatDuration renders milliseconds as seconds with two decimals.
func formatDuration(ms int) string {
	return fmt.Sprintf("%.2f s", float64(ms)/1000)
}

// formatBytes renders a byte count with binary units.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

var _ Formatter = (*MarkdownFormatter)(nil)

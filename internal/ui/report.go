// Package ui writes review reports to a terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"talentiq/internal/model"
	"talentiq/internal/review"
	"talentiq/internal/util/format"
)

// Renderer writes plain text, coloring labels only when Color is set.
type Renderer struct {
	out    io.Writer
	color  bool
	styles Styles
}

// NewRenderer returns a Renderer writing to out; color enables ANSI styling.
func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, color: color, styles: newStyles(out)}
}

func (r *Renderer) paint(st lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return st.Render(s)
}

// Review writes the summary, the ATS panel and the given sections. A nil
// sections slice means all of them.
func (r *Renderer) Review(res model.Resume, sections []review.Section) error {
	if sections == nil {
		sections = review.Sections(res.Feedback)
	}
	var b strings.Builder
	r.writeSummary(&b, res)
	b.WriteString("\n")
	r.writeATS(&b, res.Feedback.ATS)
	for _, s := range sections {
		b.WriteString("\n")
		r.writeSection(&b, s)
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) writeSummary(b *strings.Builder, res model.Resume) {
	name := res.FileName
	if name == "" {
		name = "resume"
	}
	fmt.Fprintf(b, "%s (%s)\n", r.paint(r.styles.Title, name), format.FormatSizeInt(res.FileSize))
	if role := roleLine(res); role != "" {
		b.WriteString(r.paint(r.styles.Faint, role) + "\n")
	}
	b.WriteString(r.paint(r.styles.Faint, "ID: "+res.ID) + "\n")

	score := res.Feedback.OverallScore
	lvl := review.BadgeLevel(score)
	fmt.Fprintf(b, "Overall: %d/100 %s\n", score, r.paint(r.styles.level(lvl), review.BadgeLabel(lvl)))
}

func (r *Renderer) writeATS(b *strings.Builder, ats model.ATS) {
	lvl := review.ATSLevel(ats.Score)
	fmt.Fprintf(b, "%s [%s]\n",
		r.paint(r.styles.Header, fmt.Sprintf("ATS Score - %d/100", ats.Score)),
		r.paint(r.styles.level(lvl), review.ATSStatus(lvl)))
	b.WriteString("Applicant Tracking System Compatibility\n")
	if len(ats.Tips) == 0 {
		b.WriteString(r.paint(r.styles.Faint, "  No suggestions available.") + "\n")
		return
	}
	for _, s := range ats.Tips {
		b.WriteString("  " + r.marker(s.Type) + " " + s.Tip + "\n")
	}
}

func (r *Renderer) writeSection(b *strings.Builder, s review.Section) {
	lvl := review.CategoryLevel(s.Category.Score)
	fmt.Fprintf(b, "%s  %s\n",
		r.paint(r.styles.Header, s.Title),
		r.paint(r.styles.level(lvl), fmt.Sprintf("%d/100", s.Category.Score)))
	if len(s.Category.Tips) == 0 {
		b.WriteString(r.paint(r.styles.Faint, "  No tips available.") + "\n")
		return
	}
	for _, t := range s.Category.Tips {
		b.WriteString("  " + r.marker(t.Type) + " " + t.Tip + "\n")
	}
	for _, t := range s.Category.Tips {
		if t.Explanation == "" {
			continue
		}
		fmt.Fprintf(b, "  %s: %s\n", review.TipHeading(t.Type), t.Explanation)
	}
}

func (r *Renderer) marker(t model.TipType) string {
	if t == model.TipGood {
		return r.paint(r.styles.TipGood, "+")
	}
	return r.paint(r.styles.TipFix, "!")
}

func roleLine(res model.Resume) string {
	var parts []string
	for _, p := range []string{res.JobTitle, res.CompanyName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " @ ")
}

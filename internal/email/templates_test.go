package email

import (
	"strings"
	"testing"
)

func TestRenderReportReadyTemplate(t *testing.T) {
	html, err := renderEmailTemplate("report_ready.html", reportReadyEmailData{
		baseEmailData: baseEmailData{
			Title:      "Your report is ready",
			Heading:    "Your report is ready",
			Subheading: "Acme Realty scored 58 out of 100.",
			CTALabel:   "View Your Full Report",
			CTAURL:     "https://example.com/report/tok-1",
		},
		FirstName:    "Pat",
		CompanyName:  "Acme Realty",
		OverallScore: 58,
		RiskLevel:    "HIGH",
	})
	if err != nil {
		t.Fatalf("renderEmailTemplate: %v", err)
	}

	for _, want := range []string{
		"https://example.com/report/tok-1",
		"View Your Full Report",
		"58",
		"HIGH",
		"Pat",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestRenderDeepDiveTemplate(t *testing.T) {
	html, err := renderEmailTemplate("deep_dive.html", deepDiveEmailData{
		baseEmailData: baseEmailData{
			Title:    "Closing your biggest gap",
			Heading:  "Closing your biggest gap",
			CTALabel: "Revisit Your Report",
			CTAURL:   "https://example.com/report/tok-1",
		},
		Paragraphs: []string{"First paragraph.", "Second paragraph."},
	})
	if err != nil {
		t.Fatalf("renderEmailTemplate: %v", err)
	}

	if !strings.Contains(html, "First paragraph.") || !strings.Contains(html, "Second paragraph.") {
		t.Error("rendered email missing body paragraphs")
	}
	if !strings.Contains(html, "https://example.com/report/tok-1") {
		t.Error("rendered email missing CTA link")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := renderEmailTemplate("missing.html", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestSplitParagraphs(t *testing.T) {
	got := splitParagraphs("First.\n\n\n\n  Second.  \n\nThird.")
	want := []string{"First.", "Second.", "Third."}
	if len(got) != len(want) {
		t.Fatalf("got %d paragraphs, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paragraph %d = %q, want %q", i, got[i], want[i])
		}
	}

	if got := splitParagraphs("   \n\n  "); got != nil {
		t.Errorf("whitespace-only body should yield no paragraphs, got %v", got)
	}
}

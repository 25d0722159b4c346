package pdf

import (
	"strings"
	"testing"
	"time"
)

func date(year int, month time.Month) *time.Time {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return &t
}

func paragraphTexts(blocks []Block) []string {
	var out []string
	for _, b := range blocks {
		if p, ok := b.(Paragraph); ok {
			out = append(out, p.Text)
		}
	}
	return out
}

func containsText(blocks []Block, want string) bool {
	for _, text := range paragraphTexts(blocks) {
		if text == want {
			return true
		}
	}
	return false
}

func TestFormatDateRange(t *testing.T) {
	cases := []struct {
		name    string
		start   *time.Time
		end     *time.Time
		current bool
		want    string
	}{
		{"both dates", date(2020, time.January), date(2022, time.March), false, "Jan 2020 - Mar 2022"},
		{"current overrides end", date(2020, time.January), date(2022, time.March), true, "Jan 2020 - Present"},
		{"current without end", date(2020, time.January), nil, true, "Jan 2020 - Present"},
		{"no end not current", date(2020, time.January), nil, false, "Jan 2020 - "},
		{"no start", nil, date(2022, time.March), false, " - Mar 2022"},
		{"nothing", nil, nil, false, " - "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatDateRange(tc.start, tc.end, tc.current); got != tc.want {
				t.Fatalf("formatDateRange = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSummaryNormalizesWhitespace(t *testing.T) {
	ss := NewStyleSheet()
	blocks := summaryBlocks(Snapshot{Summary: "Hello\n\n  world"}, ss)
	if !containsText(blocks, "Hello world") {
		t.Fatalf("expected normalized summary %q in %v", "Hello world", paragraphTexts(blocks))
	}
	if !containsText(blocks, headingSummary) {
		t.Fatalf("expected %q heading", headingSummary)
	}
}

func TestSummaryEmptyAfterNormalizationEmitsNothing(t *testing.T) {
	ss := NewStyleSheet()
	if blocks := summaryBlocks(Snapshot{Summary: "  \n\t "}, ss); len(blocks) != 0 {
		t.Fatalf("expected no blocks for blank summary, got %d", len(blocks))
	}
}

func TestBulletBlocksDropBlankLines(t *testing.T) {
	ss := NewStyleSheet()
	blocks := bulletBlocks("Shipped the thing\n\n   \nFixed the other thing\n", ss)
	texts := paragraphTexts(blocks)
	want := []string{"• Shipped the thing", "• Fixed the other thing"}
	if len(texts) != len(want) {
		t.Fatalf("got %d bullets, want %d: %v", len(texts), len(want), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("bullet %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestHeaderContactAndLinks(t *testing.T) {
	ss := NewStyleSheet()
	snap := Snapshot{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Location:    "Berlin",
		GitHubURL:   "https://github.com/jane",
		LinkedInURL: "https://linkedin.com/in/jane",
	}
	blocks := headerBlocks(snap, ss)
	if !containsText(blocks, "JANE DOE") {
		t.Fatalf("expected upper-cased name block")
	}
	if !containsText(blocks, "jane@example.com • Berlin") {
		t.Fatalf("expected contact line without phone, got %v", paragraphTexts(blocks))
	}
	if !containsText(blocks, "LinkedIn: https://linkedin.com/in/jane | GitHub: https://github.com/jane") {
		t.Fatalf("expected links line, got %v", paragraphTexts(blocks))
	}
}

func TestHeaderOmitsEmptyContactAndLinksLines(t *testing.T) {
	ss := NewStyleSheet()
	blocks := headerBlocks(Snapshot{Name: "Jane Doe"}, ss)
	texts := paragraphTexts(blocks)
	if len(texts) != 1 || texts[0] != "JANE DOE" {
		t.Fatalf("expected only the name paragraph, got %v", texts)
	}
}

func TestSkillsGroupingAndOrder(t *testing.T) {
	ss := NewStyleSheet()
	snap := Snapshot{Skills: []Skill{
		{Name: "SQL", Level: "beginner"},
		{Name: "Go", Level: "expert"},
		{Name: "Docker", Level: "advanced"},
		{Name: "Postgres", Level: "expert"},
	}}
	texts := paragraphTexts(skillsBlocks(snap, ss))

	want := []string{headingSkills, "Expert:", "Go, Postgres", "Advanced:", "Docker", "Beginner:", "SQL"}
	if len(texts) != len(want) {
		t.Fatalf("got %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("block %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestSkillsDropEmptyNames(t *testing.T) {
	ss := NewStyleSheet()
	snap := Snapshot{Skills: []Skill{
		{Name: "Go", Level: "expert"},
		{Name: "SQL", Level: "expert"},
		{Name: "", Level: "beginner"},
	}}
	texts := paragraphTexts(skillsBlocks(snap, ss))
	for _, text := range texts {
		if text == "Beginner:" {
			t.Fatalf("empty-named skill produced a bucket: %v", texts)
		}
	}
	if texts[1] != "Expert:" || texts[2] != "Go, SQL" {
		t.Fatalf("expected single Expert bucket, got %v", texts)
	}
}

func TestSkillsAllEmptyNamesEmitsNothing(t *testing.T) {
	ss := NewStyleSheet()
	snap := Snapshot{Skills: []Skill{{Name: "  "}, {Name: ""}}}
	if blocks := skillsBlocks(snap, ss); len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %d", len(blocks))
	}
}

func TestSkillsUnknownLevelsAppendAfterKnown(t *testing.T) {
	ss := NewStyleSheet()
	snap := Snapshot{Skills: []Skill{
		{Name: "Whistling", Level: "legendary"},
		{Name: "Go", Level: "expert"},
		{Name: "Juggling", Level: ""},
	}}
	texts := paragraphTexts(skillsBlocks(snap, ss))
	want := []string{headingSkills, "Expert:", "Go", "Legendary:", "Whistling", "Other:", "Juggling"}
	if len(texts) != len(want) {
		t.Fatalf("got %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("block %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestEducationFieldOfStudyRow(t *testing.T) {
	ss := NewStyleSheet()
	snap := Snapshot{Education: []Education{{
		Institution:  "MIT",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		StartDate:    date(2014, time.September),
		EndDate:      date(2018, time.June),
	}}}
	blocks := educationBlocks(snap, ss)

	var table Table
	found := false
	for _, b := range blocks {
		if tb, ok := b.(Table); ok {
			table = tb
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected a table block")
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows with field of study, got %d", len(table.Rows))
	}
	if table.Rows[2].Left.Text != "Field: Computer Science" {
		t.Fatalf("field row = %q", table.Rows[2].Left.Text)
	}
	if table.Rows[0].Right.Text != "Sep 2014 - Jun 2018" {
		t.Fatalf("date range = %q", table.Rows[0].Right.Text)
	}
}

func TestBuildStoryMinimalSnapshot(t *testing.T) {
	ss := NewStyleSheet()
	now := time.Date(2024, time.May, 10, 15, 4, 0, 0, time.UTC)
	story := BuildStory(Snapshot{Name: "Jane Doe"}, ss, now)
	texts := paragraphTexts(story)

	if texts[0] != "JANE DOE" {
		t.Fatalf("first paragraph = %q", texts[0])
	}
	for _, heading := range []string{headingSummary, headingExperience, headingSkills, headingProjects, headingEducation} {
		if containsText(story, heading) {
			t.Fatalf("unexpected heading %q in minimal story", heading)
		}
	}
	if !containsText(story, "Generated on May 10, 2024 at 03:04 PM") {
		t.Fatalf("expected footer timestamp, got %v", texts)
	}
}

func TestBuildStoryScenario(t *testing.T) {
	ss := NewStyleSheet()
	snap := Snapshot{
		Name: "Jane Doe",
		Experience: []Experience{{
			Company:   "Acme",
			Position:  "Engineer",
			StartDate: date(2020, time.January),
			Current:   true,
		}},
	}
	story := BuildStory(snap, ss, time.Now())

	if !containsText(story, "JANE DOE") {
		t.Fatalf("expected title block")
	}
	if !containsText(story, headingExperience) {
		t.Fatalf("expected experience heading")
	}
	for _, heading := range []string{headingSummary, headingSkills, headingProjects, headingEducation} {
		if containsText(story, heading) {
			t.Fatalf("unexpected heading %q", heading)
		}
	}

	foundRange := false
	for _, b := range story {
		if tb, ok := b.(Table); ok && len(tb.Rows) > 0 {
			if tb.Rows[0].Right.Text == "Jan 2020 - Present" {
				foundRange = true
			}
		}
	}
	if !foundRange {
		t.Fatalf("expected date range %q in a table row", "Jan 2020 - Present")
	}
}

func TestBucketName(t *testing.T) {
	cases := map[string]string{
		"expert":   "Expert",
		"EXPERT":   "Expert",
		"  ":       "Other",
		"":         "Other",
		"advanced": "Advanced",
	}
	for in, want := range cases {
		if got := bucketName(in); got != want {
			t.Fatalf("bucketName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSectionHeaderShape(t *testing.T) {
	ss := NewStyleSheet()
	blocks := sectionHeader(ss, "EDUCATION")
	if len(blocks) != 3 {
		t.Fatalf("expected spacer+title+rule, got %d blocks", len(blocks))
	}
	if _, ok := blocks[0].(Spacer); !ok {
		t.Fatalf("first block should be a spacer")
	}
	p, ok := blocks[1].(Paragraph)
	if !ok || p.Text != "EDUCATION" {
		t.Fatalf("second block should be the title paragraph")
	}
	if p.Style.Background == nil {
		t.Fatalf("section title should carry a background")
	}
	if _, ok := blocks[2].(Rule); !ok {
		t.Fatalf("third block should be a rule")
	}
}

func TestProjectsLinksLine(t *testing.T) {
	ss := NewStyleSheet()
	both := Snapshot{Projects: []Project{{
		Name:       "Tracker",
		ProjectURL: "https://tracker.dev",
		SourceURL:  "https://github.com/jane/tracker",
	}}}
	texts := paragraphTexts(projectsBlocks(both, ss))
	if !contains(texts, "Live Demo: https://tracker.dev | Source Code: https://github.com/jane/tracker") {
		t.Fatalf("expected combined links line, got %v", texts)
	}

	onlySource := Snapshot{Projects: []Project{{
		Name:      "Tracker",
		SourceURL: "https://github.com/jane/tracker",
	}}}
	texts = paragraphTexts(projectsBlocks(onlySource, ss))
	if !contains(texts, "Source Code: https://github.com/jane/tracker") {
		t.Fatalf("expected source-only links line, got %v", texts)
	}

	neither := Snapshot{Projects: []Project{{Name: "Tracker", Technologies: []string{"Go", "Postgres"}}}}
	texts = paragraphTexts(projectsBlocks(neither, ss))
	for _, text := range texts {
		if strings.Contains(text, "Live Demo") || strings.Contains(text, "Source Code") {
			t.Fatalf("links line should be omitted entirely: %v", texts)
		}
	}
	if !contains(texts, "Technologies: Go, Postgres") {
		t.Fatalf("expected technologies block, got %v", texts)
	}
}

func contains(haystack []string, want string) bool {
	for _, s := range haystack {
		if s == want {
			return true
		}
	}
	return false
}

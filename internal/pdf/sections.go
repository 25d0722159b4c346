package pdf

import (
	"strings"
	"time"
	"unicode"
)

// Section headings printed above non-empty sections.
const (
	headingSummary    = "PROFESSIONAL SUMMARY"
	headingExperience = "PROFESSIONAL EXPERIENCE"
	headingSkills     = "TECHNICAL SKILLS"
	headingProjects   = "PROJECTS"
	headingEducation  = "EDUCATION"
)

// Display order for the known skill buckets.
var orderedSkillLevels = []string{"Expert", "Advanced", "Intermediate", "Beginner"}

// sectionHeader emits the spacer, styled title, and underline rule that
// introduce every section.
func sectionHeader(ss *StyleSheet, title string) []Block {
	return []Block{
		Spacer{Height: 0.1 * inch},
		Paragraph{Text: title, Style: ss.Style(StyleSectionTitle)},
		Rule{Thickness: 1, Color: ss.Primary, SpaceBefore: 4, SpaceAfter: 8},
	}
}

// headerBlocks renders the upper-cased name, the contact line, and the
// social links line. Missing fields are omitted; an empty contact or links
// set suppresses its whole line.
func headerBlocks(snap Snapshot, ss *StyleSheet) []Block {
	blocks := []Block{
		Spacer{Height: 0.1 * inch},
		Paragraph{Text: strings.ToUpper(snap.Name), Style: ss.Style(StyleNameTitle)},
	}

	var contact []string
	for _, part := range []string{snap.Email, snap.Phone, snap.Location} {
		if part != "" {
			contact = append(contact, part)
		}
	}
	if len(contact) > 0 {
		blocks = append(blocks, Paragraph{
			Text:  strings.Join(contact, " • "),
			Style: ss.Style(StyleContactInfo),
		})
	}

	var links []string
	if snap.LinkedInURL != "" {
		links = append(links, "LinkedIn: "+snap.LinkedInURL)
	}
	if snap.GitHubURL != "" {
		links = append(links, "GitHub: "+snap.GitHubURL)
	}
	if snap.PortfolioURL != "" {
		links = append(links, "Portfolio: "+snap.PortfolioURL)
	}
	if len(links) > 0 {
		blocks = append(blocks, Paragraph{
			Text:  strings.Join(links, " | "),
			Style: ss.Style(StyleLinkStyle),
		})
	}

	blocks = append(blocks, Spacer{Height: 0.2 * inch})
	return blocks
}

// summaryBlocks collapses all whitespace runs in the summary to single
// spaces and renders it under its heading. A blank summary emits nothing.
func summaryBlocks(snap Snapshot, ss *StyleSheet) []Block {
	text := strings.Join(strings.Fields(snap.Summary), " ")
	if text == "" {
		return nil
	}
	blocks := sectionHeader(ss, headingSummary)
	return append(blocks, Paragraph{Text: text, Style: ss.Style(StyleSummaryText)})
}

// formatDateRange renders "{start} - {end}". An absent start leaves the left
// side empty. Current entries always read "Present" on the right; otherwise
// an absent end leaves the right side empty.
func formatDateRange(start, end *time.Time, current bool) string {
	left := ""
	if start != nil {
		left = start.Format("Jan 2006")
	}
	right := ""
	switch {
	case current:
		right = "Present"
	case end != nil:
		right = end.Format("Jan 2006")
	}
	return left + " - " + right
}

// entryTable builds the two-row title/date table shared by experience and
// education entries: bold title with the date range beside it, then the
// subtitle with a blank date cell for alignment.
func entryTable(ss *StyleSheet, title, subtitle, dateRange string) Table {
	return Table{
		LeftShare: 0.7,
		Rows: []TableRow{
			{
				Left:  TableCell{Text: title, Style: ss.Style(StyleCompany)},
				Right: TableCell{Text: dateRange, Style: ss.Style(StyleDate)},
			},
			{
				Left:  TableCell{Text: subtitle, Style: ss.Style(StylePosition)},
				Right: TableCell{Style: ss.Style(StyleDate)},
			},
		},
	}
}

// bulletBlocks splits a description on newlines and renders each non-blank
// line as its own bullet. Blank lines are dropped.
func bulletBlocks(description string, ss *StyleSheet) []Block {
	var blocks []Block
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		blocks = append(blocks, Paragraph{Text: "• " + line, Style: ss.Style(StyleBodyText)})
	}
	return blocks
}

// experienceBlocks renders the experience section in input order.
func experienceBlocks(snap Snapshot, ss *StyleSheet) []Block {
	if len(snap.Experience) == 0 {
		return nil
	}
	blocks := sectionHeader(ss, headingExperience)
	for _, exp := range snap.Experience {
		dateRange := formatDateRange(exp.StartDate, exp.EndDate, exp.Current)
		blocks = append(blocks, entryTable(ss, exp.Company, exp.Position, dateRange))
		blocks = append(blocks, bulletBlocks(exp.Description, ss)...)
		blocks = append(blocks, Spacer{Height: 0.1 * inch})
	}
	return blocks
}

// skillsBlocks groups skills by proficiency level. The four known buckets
// print in fixed order; unrecognized levels form their own buckets appended
// afterwards in first-seen order, and an empty level groups under "Other".
// Skills with empty names are dropped entirely.
func skillsBlocks(snap Snapshot, ss *StyleSheet) []Block {
	byLevel := make(map[string][]string)
	var extraLevels []string
	known := make(map[string]bool, len(orderedSkillLevels))
	for _, level := range orderedSkillLevels {
		known[level] = true
	}

	empty := true
	for _, skill := range snap.Skills {
		if strings.TrimSpace(skill.Name) == "" {
			continue
		}
		empty = false
		level := bucketName(skill.Level)
		if !known[level] && len(byLevel[level]) == 0 {
			extraLevels = append(extraLevels, level)
		}
		byLevel[level] = append(byLevel[level], skill.Name)
	}
	if empty {
		return nil
	}

	labelStyle := ss.Style(StylePosition)
	labelStyle.Font = fontBold
	labelStyle.Color = ss.Dark

	blocks := sectionHeader(ss, headingSkills)
	for _, level := range append(append([]string{}, orderedSkillLevels...), extraLevels...) {
		names := byLevel[level]
		if len(names) == 0 {
			continue
		}
		blocks = append(blocks,
			Paragraph{Text: level + ":", Style: labelStyle},
			Paragraph{Text: strings.Join(names, ", "), Style: ss.Style(StyleBodyText)},
			Spacer{Height: 0.1 * inch},
		)
	}
	return blocks
}

// bucketName capitalizes a raw skill level into its display bucket.
func bucketName(level string) string {
	level = strings.TrimSpace(level)
	if level == "" {
		return "Other"
	}
	runes := []rune(strings.ToLower(level))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// projectsBlocks renders the projects section in input order.
func projectsBlocks(snap Snapshot, ss *StyleSheet) []Block {
	if len(snap.Projects) == 0 {
		return nil
	}
	blocks := sectionHeader(ss, headingProjects)
	for _, proj := range snap.Projects {
		blocks = append(blocks, Paragraph{Text: proj.Name, Style: ss.Style(StyleCompany)})

		var links []string
		if proj.ProjectURL != "" {
			links = append(links, "Live Demo: "+proj.ProjectURL)
		}
		if proj.SourceURL != "" {
			links = append(links, "Source Code: "+proj.SourceURL)
		}
		if len(links) > 0 {
			blocks = append(blocks, Paragraph{
				Text:  strings.Join(links, " | "),
				Style: ss.Style(StyleLinkStyle),
			})
		}

		if proj.Description != "" {
			blocks = append(blocks, Paragraph{Text: proj.Description, Style: ss.Style(StyleBodyText)})
		}
		if len(proj.Technologies) > 0 {
			blocks = append(blocks, Paragraph{
				Text:  "Technologies: " + strings.Join(proj.Technologies, ", "),
				Style: ss.Style(StyleBodyText),
			})
		}
		blocks = append(blocks, Spacer{Height: 0.1 * inch})
	}
	return blocks
}

// educationBlocks renders the education section, adding the optional field
// of study row under the degree.
func educationBlocks(snap Snapshot, ss *StyleSheet) []Block {
	if len(snap.Education) == 0 {
		return nil
	}
	blocks := sectionHeader(ss, headingEducation)
	for _, edu := range snap.Education {
		dateRange := formatDateRange(edu.StartDate, edu.EndDate, edu.Current)
		table := entryTable(ss, edu.Institution, edu.Degree, dateRange)
		if edu.FieldOfStudy != "" {
			table.Rows = append(table.Rows, TableRow{
				Left:  TableCell{Text: "Field: " + edu.FieldOfStudy, Style: ss.Style(StyleBodyText)},
				Right: TableCell{Style: ss.Style(StyleDate)},
			})
		}
		blocks = append(blocks, table)
		if edu.Description != "" {
			blocks = append(blocks, Paragraph{Text: edu.Description, Style: ss.Style(StyleBodyText)})
		}
		blocks = append(blocks, Spacer{Height: 0.1 * inch})
	}
	return blocks
}

// footerBlocks emits the closing rule and generation timestamp. The clock is
// injected by the caller so renders are reproducible under test.
func footerBlocks(ss *StyleSheet, now time.Time) []Block {
	return []Block{
		Rule{Thickness: 0.5, Color: ss.Secondary, SpaceBefore: 12, SpaceAfter: 4},
		Paragraph{
			Text:  "Generated on " + now.Format("January 02, 2006 at 03:04 PM"),
			Style: ss.Style(StyleContactInfo),
		},
	}
}

// BuildStory assembles the full ordered block sequence. Section presence is
// purely data-driven: empty inputs contribute no blocks and no heading.
func BuildStory(snap Snapshot, ss *StyleSheet, now time.Time) []Block {
	var story []Block
	story = append(story, headerBlocks(snap, ss)...)
	story = append(story, summaryBlocks(snap, ss)...)
	story = append(story, experienceBlocks(snap, ss)...)
	story = append(story, skillsBlocks(snap, ss)...)
	story = append(story, projectsBlocks(snap, ss)...)
	story = append(story, educationBlocks(snap, ss)...)
	story = append(story, footerBlocks(ss, now)...)
	return story
}

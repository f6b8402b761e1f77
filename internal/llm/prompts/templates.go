// Package prompts holds the fixed prompt template family used for resume
// generation. Two modes exist: create (fresh resume from structured fields)
// and update (existing markup plus new or changed fields).
package prompts

import (
	"fmt"
	"sort"
	"strings"
)

// defaultResumeHTML is the skeleton handed to the model as a layout
// reference. It demonstrates the placeholder grammar the rest of the pipeline
// depends on, so the model learns to emit tokens the extractor can match.
const defaultResumeHTML = `<div class="resume">
  <header class="resume-header">
    <img src="image:profile_photo" alt="Professional headshot of the candidate" class="profile-img">
    <h1>{{name}}</h1>
    <p class="position">{{position}}</p>
  </header>
  <section>
    <h2>Profile</h2>
    <p>A short professional summary.</p>
  </section>
  <section>
    <h2>Experience</h2>
    <h3>Job Title — Company</h3>
    <p class="period">2020 – Present</p>
    <ul>
      <li>Key achievement.</li>
    </ul>
  </section>
  <section>
    <h2>Education</h2>
    <h3>Degree — Institution</h3>
    <p class="period">2016 – 2020</p>
  </section>
  <section>
    <h2>Skills</h2>
    <ul>
      <li>Skill one</li>
      <li>Skill two</li>
    </ul>
  </section>
</div>`

const createTemplate = `<background>
You are a professional resume writing assistant. You produce clean,
consistent, print-ready resumes for job seekers.
</background>

<role>
Resume writing expert
</role>

<task>
Create a complete resume in HTML format for the candidate described below.
</task>

<candidate>
Name: %s
Position: %s
%s</candidate>

<layout-reference>
%s
</layout-reference>

<rules>
1. Return ONLY the HTML for the resume, no explanation or commentary.
2. Follow the structure of the layout reference; replace every {{...}}
   token with real content.
3. Where an image belongs (profile photo, project screenshots), emit an
   image placeholder of the exact form:
   <img src="image:PLACEHOLDER_ID" alt="DESCRIPTION">
   where PLACEHOLDER_ID is a short unique snake_case identifier and
   DESCRIPTION explains what the image should show. Use each
   PLACEHOLDER_ID only once.
4. Keep the layout suitable for A4 print: semantic headings, no scripts,
   no external stylesheets.
5. Do not invent facts; leave out sections the candidate provided no
   information for.
</rules>`

const updateTemplate = `<background>
You are a professional resume writing assistant. You produce clean,
consistent, print-ready resumes for job seekers.
</background>

<role>
Resume writing expert
</role>

<task>
Update the existing HTML resume below, incorporating the new information
while keeping the formatting consistent.
</task>

<candidate>
Name: %s
Position: %s
%s</candidate>

<existing-resume>
%s
</existing-resume>

<update-instructions>
%s
</update-instructions>

<rules>
1. Return ONLY the complete updated HTML resume, no explanation.
2. Preserve existing image placeholders (<img src="image:..." alt="...">)
   exactly as they are.
3. Keep the existing layout and styling unless the update instructions say
   otherwise.
</rules>`

// BuildCreatePrompt builds the prompt for generating a fresh resume.
// Additional fields are rendered in sorted key order so identical input
// yields an identical prompt.
func BuildCreatePrompt(name, position string, fields map[string]string) string {
	return fmt.Sprintf(createTemplate, name, position, formatFields(fields), defaultResumeHTML)
}

// BuildUpdatePrompt builds the prompt for updating an existing resume. The
// prior content is embedded verbatim. Instructions may be empty, in which
// case a default directive is used.
func BuildUpdatePrompt(name, position string, fields map[string]string, existingContent, instructions string) string {
	if strings.TrimSpace(instructions) == "" {
		instructions = "Keep the existing layout and design; update the content."
	}
	return fmt.Sprintf(updateTemplate, name, position, formatFields(fields), existingContent, instructions)
}

func formatFields(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(fields[k])
		b.WriteString("\n")
	}
	return b.String()
}

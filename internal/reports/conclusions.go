// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package reports

const conclusionsText = `- **Patients 51–70 and 71+** have the highest appointment counts, particularly for checkups.
- **Emergency appointments** has a spike on Friday.
- **Pain medications** are the most prescribed medications, especially in older age groups.
- **No linear correlation between prescription frequency and appointments**. Further investigation is suggested, as patients with "Few" and "Moderate" prescriptions had higher appointment averages.
- **First-time prescriptions** declined sharply over time, while **repeat prescriptions** grew, indicating ongoing care.
`

// Conclusions is the static findings page. It needs no data.
func Conclusions() *Report {
	return newReport(SectionConclusions, markdownPanel("", conclusionsText))
}

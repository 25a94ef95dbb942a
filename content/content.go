// Package content holds the static copy of the landing page: narrative
// lines, persona labels, clinical facts and breakthrough cards.
package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Size is the typographic weight of a narrative line.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// Line is one line of narrative copy.
type Line struct {
	Size Size
	Text string
}

// Persona is a visitor role offered on the persona grid.
type Persona struct {
	Label string
}

// Breakthrough is a research highlight card.
type Breakthrough struct {
	Title string
	Desc  string
}

// ClinicalFacts is the pool of risk markers floated behind the hero.
var ClinicalFacts = []string{
	"HbA1c > 6.5%",
	"Hypertension",
	"Dyslipidemia",
	"Insulin Resistance",
	"BMI > 30",
	"Chronic Inflammation",
	"Oxidative Stress",
	"Metabolic Syndrome",
	"Sedentary Behavior",
	"Glycemic Variability",
	"Beta-cell Failure",
	"Endothelial Dysfunction",
	"Atherosclerosis",
	"GFR < 60",
	"Neuropathy",
	"Retinopathy",
	"Cortisol Spikes",
	"Sleep Apnea",
}

// Narrative is the scroll copy, keyed by section.
var Narrative = map[string][]Line{
	"top": {
		{Size: Medium, Text: "Chronic Disease"},
		{Size: Small, Text: "lies in wait for all of us"},
		{Size: Large, Text: "We all have the right to contribute"},
	},
	"bottom": {
		{Size: Medium, Text: "Breakthroughs are being made"},
		{Size: Small, Text: "against chronic disease"},
		{Size: Large, Text: "Together we can ensure they make it to patients"},
	},
	"final": {
		{Size: Medium, Text: "The fight against Chronic Disease"},
		{Size: Large, Text: "starts with you"},
	},
}

// Personas lists the roles in grid order.
var Personas = []Persona{
	{Label: "Public Figure"},
	{Label: "Donor"},
	{Label: "Content Creator"},
	{Label: "Investor"},
	{Label: "Health Player"},
	{Label: "Policymaker"},
	{Label: "Patient"},
	{Label: "Family Member"},
	{Label: "Research Engineer"},
}

// Breakthroughs are the research cards.
var Breakthroughs = []Breakthrough{
	{Title: "Precision Editing", Desc: "CRISPR 2.0 targeting root genetic causes."},
	{Title: "Digital Twins", Desc: "AI models predicting patient outcomes."},
	{Title: "Continuous Sensing", Desc: "Wearables detecting biomarkers in real-time."},
}

// Article returns the indefinite article for word: "an" when it starts
// with a vowel letter, "a" otherwise.
func Article(word string) string {
	r, _ := utf8.DecodeRuneInString(word)
	if strings.ContainsRune("aeiou", unicode.ToLower(r)) {
		return "an"
	}
	return "a"
}

// Introduce renders "I am a Donor" style copy for a persona.
func Introduce(p Persona) string {
	return "I am " + Article(p.Label) + " " + p.Label
}

package readings

import (
	"fmt"
	"strings"

	"soulbuddy/internal/domain/zodiac"
)

const astrologyRole = `Act as a personal, trusted astrologer and spiritual guide for "SoulBuddy - AI-Powered Spiritual Guide".
Interpret the user details above with your knowledge of astrology and numerology and answer with precise,
actionable insights in an authoritative and empathetic tone. Do not add disclaimers.

Cover:
- A birth chart (Kundali) with insights for all 12 houses: career, relationships, personal growth, family and social connections.
- Daily and monthly horoscopes based on planetary movements.
- Numerology: life path number from the name and birth date, with personalised advice.
- Gemstone suggestions and their spiritual benefits.
- Rituals (Poojas) with their significance and how to perform them.
- Do's and don'ts based on the chart.
- Meditation, workout and sleep suggestions aligned with the horoscope.`

const astrologyFormat = `Format the response using the following guidelines:
- Use <h3> for section headings.
- Use <ul> and <li> for lists.
- Use <p> for paragraphs.
- Use <strong> for bold text.
- Avoid using asterisks (*) for emphasis or any other purpose.
- Ensure proper spacing and readability.
- Do not include disclaimers or notes about preliminary readings unless absolutely necessary.`

const compatibilityFormat = `Format the response using HTML tags for better readability:
- Use <h3> for section headings.
- Use <p> for paragraphs.
- Use <ul> and <li> for lists.
- Use <strong> for bold text.
- Use <div class="p-4 rounded-lg bg-gradient-to-r from-purple-100/50 to-indigo-100/50 dark:from-purple-900/30 dark:to-indigo-900/30"> for sections.
- Add some color with <span class="text-purple-600 dark:text-purple-400"> for important terms.`

// BuildAstrologyPrompt arma el prompt de lectura personal. description viene del dataset de signos.
func BuildAstrologyPrompt(in BirthDetails, sign zodiac.Sign, description string) string {
	var b strings.Builder
	b.WriteString("Provide a detailed astrological reading for the following user:\n")
	fmt.Fprintf(&b, "- Name: %s\n", in.Name)
	fmt.Fprintf(&b, "- Date of Birth: %s\n", in.DateOfBirth)
	fmt.Fprintf(&b, "- Time of Birth: %s\n", in.TimeOfBirth)
	fmt.Fprintf(&b, "- Gender: %s\n", in.Gender)
	fmt.Fprintf(&b, "- City: %s\n", in.City)
	fmt.Fprintf(&b, "- State: %s\n", in.State)
	fmt.Fprintf(&b, "- Zodiac Sign: %s\n", sign)
	if strings.TrimSpace(description) != "" {
		fmt.Fprintf(&b, "- Sign Profile: %s\n", description)
	}
	b.WriteString("\n")
	b.WriteString(astrologyRole)
	b.WriteString("\n\n")
	b.WriteString(astrologyFormat)
	b.WriteString("\n")
	return b.String()
}

// BuildCompatibilityPrompt arma el prompt de compatibilidad entre dos signos.
func BuildCompatibilityPrompt(in CompatibilityInput, yours, partner zodiac.Sign) string {
	var b strings.Builder
	b.WriteString("Provide a detailed compatibility analysis for:\n")
	fmt.Fprintf(&b, "- Person 1: %s (%s)\n", in.YourName, yours)
	fmt.Fprintf(&b, "- Person 2: %s (%s)\n", in.PartnerName, partner)
	b.WriteString("\nInclude the following in the analysis:\n")
	b.WriteString("1. Overall compatibility score (out of 100%)\n")
	b.WriteString("2. Strengths and challenges in the relationship\n")
	b.WriteString("3. Communication compatibility\n")
	b.WriteString("4. Emotional compatibility\n")
	b.WriteString("5. Advice for improving the relationship\n\n")
	b.WriteString(compatibilityFormat)
	b.WriteString("\n")
	return b.String()
}

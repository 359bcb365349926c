package services

import (
	"fmt"
	"sort"
	"strings"

	"rebateatlas-backend/internal/models"
)

// LocationOutcome tags the five mutually exclusive resolution results that
// drive the location section of the system prompt.
type LocationOutcome int

const (
	// LocationNone: no ZIP and no state parameter.
	LocationNone LocationOutcome = iota
	// LocationCityState: ZIP resolved to a city/state and the state profile loaded.
	LocationCityState
	// LocationStateOnly: ZIP present, only a state-level profile loaded.
	LocationStateOnly
	// LocationZipUnknown: ZIP present but no location or profile data exists.
	LocationZipUnknown
	// LocationStateParam: no ZIP, profile loaded from the state parameter.
	LocationStateParam
)

// LocationContext carries the resolved location facts into prompt assembly.
type LocationContext struct {
	Outcome LocationOutcome
	Zip     string
	City    string
	State   string
	Profile *models.StateRebateProfile
}

// Fixed order for the catalog's known categories; unknown keys follow sorted.
var affiliateCategoryOrder = []string{
	"solar_quotes",
	"home_services",
	"energy_devices",
	"retail",
	"financing",
}

// promptValue coerces a data-sourced string for interpolation. Newlines and
// the section delimiter token are stripped so catalog or state data can never
// rewrite the prompt's structure.
func promptValue(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "---", "-")
	return strings.TrimSpace(s)
}

// promptBuilder accumulates named sections and joins them at the end, so each
// section can be generated and tested on its own.
type promptBuilder struct {
	sections []string
}

func (b *promptBuilder) add(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.sections = append(b.sections, strings.TrimRight(text, "\n"))
}

func (b *promptBuilder) String() string {
	return strings.Join(b.sections, "\n\n")
}

// BuildSystemPrompt produces the full instruction block: persona, location
// data (per outcome), affiliate partners, and formatting/compliance rules.
func BuildSystemPrompt(catalog models.AffiliateCatalog, loc LocationContext) string {
	var b promptBuilder
	b.add(personaSection())
	b.add(locationSection(loc))
	b.add(affiliateSection(catalog))
	b.add(rulesSection())
	return b.String()
}

func personaSection() string {
	return `You are Rebate Atlas AI, a friendly assistant helping US households understand energy-efficiency rebates, tax credits, and incentives.

CORE BEHAVIOR:
1. Ask concise follow-up questions if needed (ZIP code, home type, ownership status).
2. Explain federal, state, and utility incentives in plain English with realistic dollar ranges.
3. When appropriate, you MUST suggest partner tools and services with a suggestion strength of 7.5/10.`
}

// locationSection dispatches on the outcome enum. Every variant is handled
// explicitly; LocationNone yields no section at all.
func locationSection(loc LocationContext) string {
	switch loc.Outcome {
	case LocationCityState:
		return cityStateSection(loc)
	case LocationStateOnly, LocationStateParam:
		return stateLevelSection(loc)
	case LocationZipUnknown:
		return zipUnknownSection(loc)
	case LocationNone:
		return ""
	default:
		return ""
	}
}

func cityStateSection(loc LocationContext) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "LOCAL REBATE DATA FOR %s, %s (ZIP %s):\n",
		promptValue(loc.City), promptValue(loc.State), promptValue(loc.Zip))
	sb.WriteString(renderStateProfile(loc.Profile))
	sb.WriteString("\nIMPORTANT: Use the local rebate data above to give specific, accurate answers about this user's area. " +
		"Reference actual program names and amounts from the data, and suggest the user contact their local utility about utility-run programs. " +
		"If the user asks about a category not in the data, say you don't have specific local data for that but provide general federal guidance.")
	return sb.String()
}

func stateLevelSection(loc LocationContext) string {
	name := loc.State
	if loc.Profile != nil && loc.Profile.StateName != "" {
		name = loc.Profile.StateName
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "STATE REBATE DATA FOR %s:\n", promptValue(name))
	sb.WriteString(renderStateProfile(loc.Profile))
	sb.WriteString("\nIMPORTANT: Use the state rebate data above to give accurate answers about this user's state. " +
		"Reference actual program names and amounts from the data. " +
		"For utility-specific amounts, suggest the user check with their own utility, since programs vary by provider.")
	return sb.String()
}

func zipUnknownSection(loc LocationContext) string {
	zip := promptValue(loc.Zip)
	return fmt.Sprintf(`NOTE: The user provided ZIP code %[1]s, but we do not have specific local rebate data for this area. Clearly tell the user: "I don't have detailed local rebate data for ZIP %[1]s yet." Then provide general federal guidance and suggest they check their state energy office and local utility website for state and utility-specific programs. Do NOT invent or hallucinate local program details.
Never answer like this: "Your utility in %[1]s offers a $500 heat pump rebate and your city waives permit fees." (fabricated)
Answer like this instead: "I don't have detailed local rebate data for ZIP %[1]s yet, but the federal 25C credit covers up to $2,000 per year for heat pumps." (honest)`, zip)
}

// renderStateProfile flattens a state profile into delimited plain text. The
// BEGIN/END markers keep data visually and structurally separate from the
// surrounding instructions.
func renderStateProfile(p *models.StateRebateProfile) string {
	if p == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("--- BEGIN STATE REBATE DATA ---\n")

	switch p.HomesHearStatus {
	case "launched":
		fmt.Fprintf(&sb, "HOMES/HEAR rebate programs: launched in %s.\n", promptValue(p.StateName))
	case "pending":
		fmt.Fprintf(&sb, "HOMES/HEAR rebate programs: not yet launched in %s.\n", promptValue(p.StateName))
	default:
		sb.WriteString("HOMES/HEAR rebate programs: rollout status unknown.\n")
	}
	if p.HomesHearDetails != "" {
		fmt.Fprintf(&sb, "Details: %s\n", promptValue(p.HomesHearDetails))
	}

	if t := p.IncomeThresholds; t != nil {
		sb.WriteString("Income thresholds:\n")
		if t.LowIncome80AMI != "" {
			fmt.Fprintf(&sb, "- Low income (under 80%% AMI): %s\n", promptValue(t.LowIncome80AMI))
		}
		if t.ModerateIncome150AMI != "" {
			fmt.Fprintf(&sb, "- Moderate income (80-150%% AMI): %s\n", promptValue(t.ModerateIncome150AMI))
		}
	}

	if p.NetMetering != "" {
		fmt.Fprintf(&sb, "Net metering: %s\n", promptValue(p.NetMetering))
	}

	if len(p.StateTaxCredits) > 0 {
		sb.WriteString("State tax credits:\n")
		for _, c := range p.StateTaxCredits {
			fmt.Fprintf(&sb, "- %s", promptValue(c.Name))
			if c.Amount != "" {
				fmt.Fprintf(&sb, ": %s", promptValue(c.Amount))
			}
			if c.EligibleItems != "" {
				fmt.Fprintf(&sb, " (eligible: %s)", promptValue(c.EligibleItems))
			}
			sb.WriteString("\n")
		}
	}

	if len(p.RebatePrograms) > 0 {
		sb.WriteString("State rebate programs:\n")
		for _, r := range p.RebatePrograms {
			fmt.Fprintf(&sb, "- %s", promptValue(r.Name))
			if r.Amount != "" {
				fmt.Fprintf(&sb, ": %s", promptValue(r.Amount))
			}
			if r.Description != "" {
				fmt.Fprintf(&sb, " - %s", promptValue(r.Description))
			}
			sb.WriteString("\n")
		}
	}

	if len(p.TopUtilities) > 0 {
		sb.WriteString("Top utilities and their programs:\n")
		for _, u := range p.TopUtilities {
			fmt.Fprintf(&sb, "- %s\n", promptValue(u.Name))
			for _, prog := range u.Programs {
				fmt.Fprintf(&sb, "  - %s", promptValue(prog.Name))
				if prog.Amount != "" {
					fmt.Fprintf(&sb, ": %s", promptValue(prog.Amount))
				}
				if prog.Description != "" {
					fmt.Fprintf(&sb, " - %s", promptValue(prog.Description))
				}
				sb.WriteString("\n")
			}
		}
	}

	if p.StateEnergyOffice != "" {
		fmt.Fprintf(&sb, "State energy office: %s\n", promptValue(p.StateEnergyOffice))
	}

	sb.WriteString("--- END STATE REBATE DATA ---\n")
	return sb.String()
}

func affiliateSection(catalog models.AffiliateCatalog) string {
	if len(catalog) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("AFFILIATE CATEGORIES & PARTNERS:\n")
	sb.WriteString("You have access to the following categories of trusted partners that you should recommend when relevant:\n")

	for _, key := range orderedCategoryKeys(catalog) {
		category := catalog[key]
		label := category.Label
		if label == "" {
			label = key
		}
		fmt.Fprintf(&sb, "\n%s:\n", strings.ToUpper(promptValue(label)))
		for _, partner := range category.Partners {
			fmt.Fprintf(&sb, "- %s (%s) - %s\n",
				promptValue(partner.Name), promptValue(partner.URL), promptValue(partner.Description))
		}
	}

	return sb.String()
}

func orderedCategoryKeys(catalog models.AffiliateCatalog) []string {
	seen := make(map[string]bool, len(catalog))
	keys := make([]string, 0, len(catalog))
	for _, key := range affiliateCategoryOrder {
		if _, ok := catalog[key]; ok {
			keys = append(keys, key)
			seen[key] = true
		}
	}
	extras := make([]string, 0)
	for key := range catalog {
		if !seen[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	return append(keys, extras...)
}

func rulesSection() string {
	return `AFFILIATE RULES:
- Suggest partners at strength level 7.5/10 (strong recommendation)
- Include 1-3 relevant partner links per response when appropriate
- ALWAYS format partner links as: <a href="REAL_URL" class="affiliate-link" target="_blank" rel="sponsored noopener noreferrer">Partner Name</a>
- Use the exact URLs from the lists above
- Always use target="_blank" and rel="sponsored noopener noreferrer"
- Make links short, descriptive, and mobile-friendly
- Clearly label them as sponsored/affiliate partners

OUTPUT FORMAT:
- Use clear formatting with paragraph breaks
- Include hyperlinks inline within natural sentences
- Never dump long lists of links
- Always remind users this is educational guidance, not professional advice

IMPORTANT: You must not give tax, legal, or financial advice. Always remind users to verify details with official sources or licensed professionals.`
}

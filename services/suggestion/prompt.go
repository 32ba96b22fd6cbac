package suggestion

import (
	"fmt"
	"strings"

	"bookwell/services/availability"
)

// buildPrompt renders the structured prompt for the text-generation
// service: shared availability windows, service metadata, and the target
// count, plus the exact JSON shape the reply must take.
func buildPrompt(in SuggestionInput) string {
	var sb strings.Builder

	sb.WriteString("You are a scheduling assistant for an appointment-booking platform.\n")
	fmt.Fprintf(&sb, "Today is %s (%s).\n\n", in.Now.Format(availability.DateLayout), in.Now.Weekday())

	fmt.Fprintf(&sb, "Service: %q, duration %d minutes.\n", in.Service.Name, in.Service.DurationMinutes)
	sb.WriteString("The consumer and the provider are both free during these recurring weekly windows:\n")
	for _, day := range in.Windows.Days() {
		var parts []string
		for _, iv := range in.Windows[day] {
			parts = append(parts, fmt.Sprintf("%s-%s", availability.ToHHMM(iv.Start), availability.ToHHMM(iv.End)))
		}
		fmt.Fprintf(&sb, "- %s: %s\n", day, strings.Join(parts, ", "))
	}

	if len(in.Active) > 0 {
		sb.WriteString("\nAlready booked (avoid these):\n")
		for _, cm := range in.Active {
			fmt.Fprintf(&sb, "- %s %s-%s\n", cm.Date, availability.ToHHMM(cm.Start), availability.ToHHMM(cm.End))
		}
	}

	fmt.Fprintf(&sb, "\nPropose exactly %d appointment times within the next %d weeks, spread across different days and weeks where possible. Each must start inside a shared window and fit the service duration.\n",
		in.TargetCount, availability.HorizonWeeks)
	sb.WriteString("Respond with a single JSON object, no prose, in this shape:\n")
	sb.WriteString(`{"suggestions":[{"date":"YYYY-MM-DD","time":"HH:MM","dayOfWeek":0,"reasoning":"..."}],"reasoning":"...","confidence":"high|medium|low"}`)
	sb.WriteString("\n")

	return sb.String()
}

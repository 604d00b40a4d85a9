package riasec

// DefaultBank returns the built-in questionnaire catalog. Treated as
// read-only configuration; intake surfaces may swap in a different
// version without touching the scorer.
func DefaultBank() Bank {
	return Bank{
		Version: "2024.2",
		Sections: []Section{
			{
				ID:    "preferences",
				Title: "Work preferences",
				Kind:  SectionForcedChoice,
				Questions: []ForcedChoiceQuestion{
					{
						Prompt: "On a free afternoon at work, I would rather",
						Options: [2]Item{
							{ID: "q1_a", Prompt: "Repair or assemble something with my hands", Impacts: []Dimension{Realistic}},
							{ID: "q1_b", Prompt: "Dig into data until a pattern appears", Impacts: []Dimension{Investigative}},
						},
					},
					{
						Prompt: "I feel most useful when",
						Options: [2]Item{
							{ID: "q2_a", Prompt: "Helping a colleague work through a problem", Impacts: []Dimension{Social}},
							{ID: "q2_b", Prompt: "Closing a deal or winning an argument", Impacts: []Dimension{Enterprising}},
						},
					},
					{
						Prompt: "Given a new project, my first instinct is to",
						Options: [2]Item{
							{ID: "q3_a", Prompt: "Sketch ideas before anyone constrains them", Impacts: []Dimension{Artistic}},
							{ID: "q3_b", Prompt: "Set up the plan, files and checkpoints", Impacts: []Dimension{Conventional}},
						},
					},
					{
						Prompt: "The meetings I enjoy are the ones where",
						Options: [2]Item{
							{ID: "q4_a", Prompt: "We decide things and assign owners", Impacts: []Dimension{Enterprising, Conventional}},
							{ID: "q4_b", Prompt: "We explore a question with no fixed answer", Impacts: []Dimension{Investigative, Artistic}},
						},
					},
					{
						Prompt: "When a process breaks down, I",
						Options: [2]Item{
							{ID: "q5_a", Prompt: "Take the machine apart and find the fault", Impacts: []Dimension{Realistic, Investigative}},
							{ID: "q5_b", Prompt: "Gather the people involved and talk it out", Impacts: []Dimension{Social}},
						},
					},
					{
						Prompt: "I would rather be recognized for",
						Options: [2]Item{
							{ID: "q6_a", Prompt: "An original piece of work nobody expected", Impacts: []Dimension{Artistic}},
							{ID: "q6_b", Prompt: "Keeping a complex operation running flawlessly", Impacts: []Dimension{Conventional, Realistic}},
						},
					},
					{
						Prompt: "Under pressure I tend to",
						Options: [2]Item{
							{ID: "q7_a", Prompt: "Push the team towards the goal", Impacts: []Dimension{Enterprising}},
							{ID: "q7_b", Prompt: "Neither of these describes me", Impacts: []Dimension{}},
						},
					},
					{
						Prompt: "A satisfying week is one where I",
						Options: [2]Item{
							{ID: "q8_a", Prompt: "Taught someone something they will keep", Impacts: []Dimension{Social}},
							{ID: "q8_b", Prompt: "Published an analysis that settled a debate", Impacts: []Dimension{Investigative}},
						},
					},
					{
						Prompt: "With ambiguous instructions, I",
						Options: [2]Item{
							{ID: "q9_a", Prompt: "Ask for the rules and follow them", Impacts: []Dimension{Conventional}},
							{ID: "q9_b", Prompt: "Improvise and see what emerges", Impacts: []Dimension{Artistic, Enterprising}},
						},
					},
					{
						Prompt: "The tools I trust most are",
						Options: [2]Item{
							{ID: "q10_a", Prompt: "Physical ones I can calibrate myself", Impacts: []Dimension{Realistic}},
							{ID: "q10_b", Prompt: "People who tell me what is really going on", Impacts: []Dimension{Social, Enterprising}},
						},
					},
				},
			},
			{
				ID:           "activities",
				Title:        "Activities that appeal to you",
				Kind:         SectionChecklist,
				MaxSelection: 10,
				Items: []Item{
					{ID: "act_build", Prompt: "Building or fixing physical things", Impacts: []Dimension{Realistic}},
					{ID: "act_field", Prompt: "Working outdoors or in the field", Impacts: []Dimension{Realistic}},
					{ID: "act_lab", Prompt: "Running experiments and measuring results", Impacts: []Dimension{Investigative}},
					{ID: "act_research", Prompt: "Reading research to answer a hard question", Impacts: []Dimension{Investigative}},
					{ID: "act_design", Prompt: "Designing something visual from scratch", Impacts: []Dimension{Artistic}},
					{ID: "act_write", Prompt: "Writing stories, scripts or copy", Impacts: []Dimension{Artistic}},
					{ID: "act_mentor", Prompt: "Mentoring or coaching colleagues", Impacts: []Dimension{Social}},
					{ID: "act_care", Prompt: "Supporting people through difficulties", Impacts: []Dimension{Social}},
					{ID: "act_pitch", Prompt: "Pitching an idea to a skeptical audience", Impacts: []Dimension{Enterprising}},
					{ID: "act_negotiate", Prompt: "Negotiating terms and closing agreements", Impacts: []Dimension{Enterprising}},
					{ID: "act_books", Prompt: "Keeping accounts and records in order", Impacts: []Dimension{Conventional}},
					{ID: "act_process", Prompt: "Documenting and improving procedures", Impacts: []Dimension{Conventional}},
					{ID: "act_prototype", Prompt: "Prototyping a gadget and testing it", Impacts: []Dimension{Realistic, Investigative}},
					{ID: "act_datavis", Prompt: "Turning data into charts people understand", Impacts: []Dimension{Investigative, Artistic}},
					{ID: "act_events", Prompt: "Organizing events for large groups", Impacts: []Dimension{Social, Enterprising}},
					{ID: "act_audit", Prompt: "Auditing work for errors and inconsistencies", Impacts: []Dimension{Conventional, Investigative}},
					{ID: "act_teach_art", Prompt: "Teaching a creative skill to others", Impacts: []Dimension{Artistic, Social}},
					{ID: "act_ops", Prompt: "Running day-to-day operations of a workshop", Impacts: []Dimension{Realistic, Conventional}},
				},
			},
			{
				ID:           "self_view",
				Title:        "Words that describe you",
				Kind:         SectionChecklist,
				MaxSelection: 6,
				Items: []Item{
					{ID: "sv_practical", Prompt: "Practical", Impacts: []Dimension{Realistic}},
					{ID: "sv_curious", Prompt: "Curious", Impacts: []Dimension{Investigative}},
					{ID: "sv_imaginative", Prompt: "Imaginative", Impacts: []Dimension{Artistic}},
					{ID: "sv_empathetic", Prompt: "Empathetic", Impacts: []Dimension{Social}},
					{ID: "sv_persuasive", Prompt: "Persuasive", Impacts: []Dimension{Enterprising}},
					{ID: "sv_methodical", Prompt: "Methodical", Impacts: []Dimension{Conventional}},
					{ID: "sv_hands_on", Prompt: "Hands-on", Impacts: []Dimension{Realistic}},
					{ID: "sv_analytical", Prompt: "Analytical", Impacts: []Dimension{Investigative}},
					{ID: "sv_expressive", Prompt: "Expressive", Impacts: []Dimension{Artistic}},
					{ID: "sv_cooperative", Prompt: "Cooperative", Impacts: []Dimension{Social}},
					{ID: "sv_ambitious", Prompt: "Ambitious", Impacts: []Dimension{Enterprising}},
					{ID: "sv_reliable", Prompt: "Reliable", Impacts: []Dimension{Conventional}},
				},
			},
		},
	}
}

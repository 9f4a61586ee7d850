// Package bank ships the built-in "weird animals" question bank. It backs the
// demo server when no database is configured and seeds Postgres via the CLI.
package bank

import "weird-animal-quiz/internal/domain"

// WeirdAnimalsID is the identifier of the built-in bank.
const WeirdAnimalsID = "weird-animals"

// WeirdAnimals returns the built-in bank. Callers get a fresh value each time;
// the content itself never changes at runtime.
func WeirdAnimals() domain.QuestionBank {
	return domain.QuestionBank{
		ID:    WeirdAnimalsID,
		Title: "Weird Animal Quiz",
		Questions: []domain.Question{
			{
				ID:         "koala-sleep",
				Difficulty: domain.Easy,
				Text:       "How many hours a day do koalas sleep?",
				Emojis:     []string{"🐨", "💤"},
				Answers: []domain.Answer{
					{ID: "koala-sleep-a", Text: "8 hours"},
					{ID: "koala-sleep-b", Text: "14 hours"},
					{ID: "koala-sleep-c", Text: "22 hours", Correct: true},
					{ID: "koala-sleep-d", Text: "4 hours"},
				},
				Explanation: "Koalas sleep up to 22 hours a day because their eucalyptus diet is so low in energy.",
				FunFact:     "Koalas have fingerprints so similar to humans' that they could confuse a crime scene.",
				Category:    "behavior",
			},
			{
				ID:         "flamingo-color",
				Difficulty: domain.Easy,
				Text:       "Why are flamingos pink?",
				Emojis:     []string{"🦩"},
				Answers: []domain.Answer{
					{ID: "flamingo-color-a", Text: "They are born that way"},
					{ID: "flamingo-color-b", Text: "Their diet of shrimp and algae", Correct: true},
					{ID: "flamingo-color-c", Text: "Sunburn"},
				},
				Explanation: "Pigments called carotenoids in their food turn flamingo feathers pink.",
				FunFact:     "Flamingo chicks hatch grey; zoo flamingos fade without the right diet.",
				Category:    "biology",
			},
			{
				ID:         "octopus-hearts",
				Difficulty: domain.Easy,
				Text:       "How many hearts does an octopus have?",
				Emojis:     []string{"🐙", "❤️"},
				Answers: []domain.Answer{
					{ID: "octopus-hearts-a", Text: "One"},
					{ID: "octopus-hearts-b", Text: "Two"},
					{ID: "octopus-hearts-c", Text: "Three", Correct: true},
					{ID: "octopus-hearts-d", Text: "Eight"},
				},
				Explanation: "Two hearts pump blood to the gills and a third serves the rest of the body.",
				FunFact:     "The main heart stops beating when an octopus swims, which is why they prefer crawling.",
				Category:    "anatomy",
			},
			{
				ID:         "sloth-speed",
				Difficulty: domain.Medium,
				Text:       "What is the top speed of a three-toed sloth on the ground?",
				Emojis:     []string{"🦥"},
				Answers: []domain.Answer{
					{ID: "sloth-speed-a", Text: "0.17 mph", Correct: true},
					{ID: "sloth-speed-b", Text: "1 mph"},
					{ID: "sloth-speed-c", Text: "5 mph"},
				},
				Explanation: "Sloths crawl at about 0.17 mph on land - they are far better swimmers.",
				FunFact:     "Algae grows in sloth fur, giving them a greenish camouflage tint.",
				Category:    "locomotion",
			},
			{
				ID:         "hummingbird-heart",
				Difficulty: domain.Medium,
				Text:       "How many times per minute can a hummingbird's heart beat?",
				Emojis:     []string{"🐦", "💓"},
				Answers: []domain.Answer{
					{ID: "hummingbird-heart-a", Text: "Around 250"},
					{ID: "hummingbird-heart-b", Text: "Around 600"},
					{ID: "hummingbird-heart-c", Text: "Over 1,200", Correct: true},
				},
				Explanation: "In flight a hummingbird heart can exceed 1,200 beats per minute.",
				FunFact:     "At night some hummingbirds enter torpor and the rate drops below 50.",
				Category:    "physiology",
			},
			{
				ID:         "mantis-shrimp-punch",
				Difficulty: domain.Medium,
				Text:       "How fast is a mantis shrimp's punch?",
				Emojis:     []string{"🦐", "🥊"},
				Answers: []domain.Answer{
					{ID: "mantis-shrimp-punch-a", Text: "As fast as a .22 caliber bullet", Correct: true},
					{ID: "mantis-shrimp-punch-b", Text: "As fast as a sneeze"},
					{ID: "mantis-shrimp-punch-c", Text: "As fast as a falling raindrop"},
					{ID: "mantis-shrimp-punch-d", Text: "As fast as a housefly"},
				},
				Explanation: "The strike accelerates like a bullet and boils the water around it.",
				FunFact:     "Mantis shrimp see more color channels than any other known animal.",
				Category:    "behavior",
			},
			{
				ID:         "axolotl-regrow",
				Difficulty: domain.Medium,
				Text:       "Which body part can an axolotl NOT regrow?",
				Emojis:     []string{"🦎"},
				Answers: []domain.Answer{
					{ID: "axolotl-regrow-a", Text: "Limbs"},
					{ID: "axolotl-regrow-b", Text: "Parts of its heart"},
					{ID: "axolotl-regrow-c", Text: "Its spine"},
					{ID: "axolotl-regrow-d", Text: "None - it can regrow all of these", Correct: true},
				},
				Explanation: "Axolotls regenerate limbs, spinal cord, heart tissue, and even parts of the brain.",
				FunFact:     "Axolotls stay in their larval form their whole lives, a trait called neoteny.",
				Category:    "biology",
			},
			{
				ID:         "tardigrade-survival",
				Difficulty: domain.Hard,
				Text:       "Which of these can tardigrades survive?",
				Emojis:     []string{"🔬", "🚀"},
				Answers: []domain.Answer{
					{ID: "tardigrade-survival-a", Text: "The vacuum of space", Correct: true},
					{ID: "tardigrade-survival-b", Text: "Only boiling water"},
					{ID: "tardigrade-survival-c", Text: "Only deep freezing"},
				},
				Explanation: "Tardigrades survived direct exposure to space on a 2007 ESA mission.",
				FunFact:     "Dried-out tardigrades have been revived after decades in a dormant state.",
				Category:    "physiology",
			},
			{
				ID:         "greenland-shark-age",
				Difficulty: domain.Hard,
				Text:       "How long can a Greenland shark live?",
				Emojis:     []string{"🦈", "⏳"},
				Answers: []domain.Answer{
					{ID: "greenland-shark-age-a", Text: "About 70 years"},
					{ID: "greenland-shark-age-b", Text: "About 150 years"},
					{ID: "greenland-shark-age-c", Text: "Over 400 years", Correct: true},
					{ID: "greenland-shark-age-d", Text: "About 40 years"},
				},
				Explanation: "Radiocarbon dating of eye lenses puts some individuals at 400+ years old.",
				FunFact:     "Greenland sharks don't reach maturity until roughly 150 years of age.",
				Category:    "biology",
			},
			{
				ID:         "platypus-senses",
				Difficulty: domain.Hard,
				Text:       "How does a platypus find prey underwater with its eyes closed?",
				Emojis:     []string{"🦆", "⚡"},
				Answers: []domain.Answer{
					{ID: "platypus-senses-a", Text: "Echolocation"},
					{ID: "platypus-senses-b", Text: "Electroreception through its bill", Correct: true},
					{ID: "platypus-senses-c", Text: "Smell"},
					{ID: "platypus-senses-d", Text: "It hunts blind and lucky"},
				},
				Explanation: "The bill senses the electric fields produced by muscle contractions of prey.",
				FunFact:     "Male platypuses have venomous spurs on their hind legs.",
				Category:    "physiology",
			},
		},
	}
}

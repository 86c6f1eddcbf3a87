// Package quiz scores the three-question lifestyle self-assessment and
// maps the total to a recommendation band.
package quiz

import (
	"fmt"

	"valuemed-backend/internal/common/errors"
)

const maxOptionScore = 4

type Option struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Result is what a completed quiz renders: a 0-100 score plus the band's
// title, message, and tips.
type Result struct {
	Score   int      `json:"score"`
	Percent int      `json:"percent"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Tips    []string `json:"tips"`
}

var questions = []Question{
	{
		ID:   1,
		Text: "How often do you engage in physical activity?",
		Options: []Option{
			{Text: "Rarely or never", Score: 1},
			{Text: "1-2 times a week", Score: 2},
			{Text: "3-4 times a week", Score: 3},
			{Text: "5 or more times a week", Score: 4},
		},
	},
	{
		ID:   2,
		Text: "How would you rate your sleep quality?",
		Options: []Option{
			{Text: "Poor (frequently wake up tired)", Score: 1},
			{Text: "Fair (sometimes wake up tired)", Score: 2},
			{Text: "Good (usually feel rested)", Score: 3},
			{Text: "Excellent (always feel refreshed)", Score: 4},
		},
	},
	{
		ID:   3,
		Text: "How balanced is your diet?",
		Options: []Option{
			{Text: "Mostly processed foods", Score: 1},
			{Text: "Some fruits/vegetables", Score: 2},
			{Text: "Balanced with whole foods", Score: 3},
			{Text: "Mostly whole, unprocessed foods", Score: 4},
		},
	},
}

// Questions returns the fixed question set in presentation order.
func Questions() []Question {
	return questions
}

// Score validates one answer per question and derives the result band.
// Answers are option scores (1-4) in question order.
func Score(answers []int) (Result, error) {
	if len(answers) != len(questions) {
		return Result{}, errors.NewValidationError(
			fmt.Sprintf("expected %d answers, got %d", len(questions), len(answers)))
	}

	total := 0
	for i, a := range answers {
		if a < 1 || a > maxOptionScore {
			return Result{}, errors.NewValidationError(
				fmt.Sprintf("answer %d out of range: %d", i+1, a))
		}
		total += a
	}

	maxTotal := len(questions) * maxOptionScore
	percent := total * 100 / maxTotal

	result := Result{
		Score:   total,
		Percent: percent,
	}

	switch {
	case percent < 50:
		result.Title = "Let's Improve Together!"
		result.Message = "Your health could use some attention. Consider making small, sustainable changes to your daily routine."
		result.Tips = []string{
			"Aim for at least 30 minutes of moderate exercise daily",
			"Prioritize 7-9 hours of quality sleep",
			"Incorporate more whole foods into your diet",
			"Schedule regular health check-ups",
		}
	case percent < 75:
		result.Title = "Good Job!"
		result.Message = "You're on the right track! With a few adjustments, you can optimize your health further."
		result.Tips = []string{
			"Try to maintain consistent sleep patterns",
			"Include strength training in your exercise routine",
			"Stay hydrated throughout the day",
			"Practice stress-reduction techniques",
		}
	default:
		result.Title = "Excellent!"
		result.Message = "You're doing great with your health habits! Keep up the good work and maintain these healthy choices."
		result.Tips = []string{
			"Continue your balanced routine",
			"Consider trying new physical activities",
			"Share your healthy habits with others",
			"Stay consistent with your health check-ups",
		}
	}
	return result, nil
}

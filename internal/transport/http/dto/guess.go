package dto

type GuessOptionsResponse struct {
	Options      []string `json:"options"`
	AttemptsLeft int      `json:"attempts_left"`
}

type SubmitGuessRequest struct {
	GuessedName string `json:"guessed_name" validate:"required"`
}

type GuessResultResponse struct {
	IsCorrect    bool   `json:"is_correct"`
	AttemptsLeft int    `json:"attempts_left"`
	Revealed     bool   `json:"revealed"`
	CorrectName  string `json:"correct_name,omitempty"`
	// ShowVotePrompt is true at most once ever per user, on their first
	// correct guess.
	ShowVotePrompt bool   `json:"show_vote_prompt,omitempty"`
	VotePageURL    string `json:"vote_page_url,omitempty"`
}

type UserStatsResponse struct {
	TotalGuesses   int `json:"total_guesses"`
	CorrectGuesses int `json:"correct_guesses"`
}

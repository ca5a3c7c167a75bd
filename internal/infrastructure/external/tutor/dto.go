package tutor

// generateRequest is the wire format of the generateContent call.
type generateRequest struct {
	Contents         []contentDTO      `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type contentDTO struct {
	Parts []partDTO `json:"parts"`
}

type partDTO struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

// generateResponse is the subset of the response we read.
type generateResponse struct {
	Candidates []candidateDTO `json:"candidates"`
	Error      *apiErrorDTO   `json:"error,omitempty"`
}

type candidateDTO struct {
	Content contentDTO `json:"content"`
}

type apiErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// text concatenates all parts of the first candidate.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	out := ""
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}

package model

type ResolveRequestBody struct {
	Pitch       string `json:"pitch"`
	Clef        string `json:"clef"`
	OctaveShift string `json:"octave_shift"`
	Notehead    string `json:"notehead"`
	Rest        bool   `json:"rest"`
	// Commit resolves the accidental as if the layout pass had assigned it.
	Commit bool `json:"commit"`
}

type ResolveResponse struct {
	Key               string `json:"key"`
	Accidental        string `json:"accidental"`
	AccidentalDecided bool   `json:"accidental_decided"`
	Clef              string `json:"clef"`
	DrawnAccidental   string `json:"drawn_accidental,omitempty"`
	VisualID          string `json:"visual_id,omitempty"`
	StemID            string `json:"stem_id,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

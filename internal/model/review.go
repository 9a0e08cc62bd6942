package model

// TipType marks a piece of feedback as praise or as an improvement.
type TipType string

const (
	TipGood    TipType = "good"
	TipImprove TipType = "improve"
)

// Tip is one item of category feedback.
type Tip struct {
	Type        TipType `json:"type" toml:"type" yaml:"type" validate:"oneof=good improve"`
	Tip         string  `json:"tip" toml:"tip" yaml:"tip" validate:"required"`
	Explanation string  `json:"explanation" toml:"explanation" yaml:"explanation"`
}

// Suggestion is an ATS tip; it carries no explanation.
type Suggestion struct {
	Type TipType `json:"type" toml:"type" yaml:"type" validate:"oneof=good improve"`
	Tip  string  `json:"tip" toml:"tip" yaml:"tip" validate:"required"`
}

// Category holds the score (0..100) and tips for one review area.
type Category struct {
	Score int   `json:"score" toml:"score" yaml:"score" validate:"gte=0,lte=100"`
	Tips  []Tip `json:"tips" toml:"tips" yaml:"tips" validate:"dive"`
}

// ATS holds the applicant tracking system compatibility result.
type ATS struct {
	Score int          `json:"score" toml:"score" yaml:"score" validate:"gte=0,lte=100"`
	Tips  []Suggestion `json:"tips" toml:"tips" yaml:"tips" validate:"dive"`
}

// Feedback is the full scoring output for one resume. It is produced
// upstream; this module only displays it.
type Feedback struct {
	OverallScore int      `json:"overallScore" toml:"overallScore" yaml:"overallScore" validate:"gte=0,lte=100"`
	ATS          ATS      `json:"ATS" toml:"ATS" yaml:"ATS"`
	ToneAndStyle Category `json:"toneAndStyle" toml:"toneAndStyle" yaml:"toneAndStyle"`
	Content      Category `json:"content" toml:"content" yaml:"content"`
	Structure    Category `json:"structure" toml:"structure" yaml:"structure"`
	Skills       Category `json:"skills" toml:"skills" yaml:"skills"`
}

// Resume is a reviewed document as handed to the display layer.
type Resume struct {
	ID          string   `json:"id" toml:"id" yaml:"id" validate:"omitempty,record_id"`
	CompanyName string   `json:"companyName" toml:"companyName" yaml:"companyName"`
	JobTitle    string   `json:"jobTitle" toml:"jobTitle" yaml:"jobTitle"`
	FileName    string   `json:"fileName" toml:"fileName" yaml:"fileName"`
	FileSize    int64    `json:"fileSize" toml:"fileSize" yaml:"fileSize" validate:"gte=0"` // bytes; 0 if unknown
	Feedback    Feedback `json:"feedback" toml:"feedback" yaml:"feedback"`
}

package types

// SelectedContent is the tailored subset of a master resume
type SelectedContent struct {
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects"`
	Skills     Skills       `json:"skills"`
}

// OptimizationResult is produced fresh by each optimization run and never mutated afterwards.
type OptimizationResult struct {
	LaTeX             string          `json:"latex"`
	KeywordsExtracted []string        `json:"keywordsExtracted"`
	Explanation       string          `json:"explanation"`
	OptimizedData     SelectedContent `json:"optimizedData"`
}

// WeightedTerm is a single extracted term with its frequency and computed weight
type WeightedTerm struct {
	Term      string  `json:"term"`
	Frequency int     `json:"frequency"`
	Weight    float64 `json:"weight"`
	Technical bool    `json:"technical"`
}

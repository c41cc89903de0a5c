package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	InputDir   string
	OutputDir  string
	RunName    string
	LogDir     string
	BatchFile  string
	Pull       bool
	ListModels bool
	Archive    bool
	Watch      bool
	NoCache    bool

	// Model service flags
	Host        string
	Model       string
	Temperature float64
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Host:        "http://localhost:11434",
		Model:       "gemma3:1b",
		LogDir:      "logs",
		Temperature: 0.3,
	}
}

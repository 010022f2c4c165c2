package types

// NewDistroResult holds the result of the 'new' command.
type NewDistroResult struct {
	Profile       string   `json:"profile"`
	Path          string   `json:"path"`
	CoreBranch    string   `json:"coreBranch"`
	DrupalVersion string   `json:"drupalVersion"`
	GitURL        string   `json:"gitUrl"`
	FilesCreated  []string `json:"filesCreated"`
	Repository    bool     `json:"repository"`
	DryRun        bool     `json:"dryRun"`
}

// GenConfigResult holds the result of the 'gen-config' command.
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	FilesWritten  []string `json:"filesWritten"`
}

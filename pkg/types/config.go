package types

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// SourceDir is the root of the tree scanned for icon definitions.
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// Extension is the file suffix that marks a candidate definition
	// file (e.g. ".py").
	Extension string `json:"extension" yaml:"extension"`

	// OutputFile is the path of the emitted document. Its contents are
	// fully replaced on every run.
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// IndexConfig holds settings for the icon index stage.
type IndexConfig struct {
	// IndexDir is the directory holding the SQLite database.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Index   IndexConfig   `json:"index" yaml:"index"`
}

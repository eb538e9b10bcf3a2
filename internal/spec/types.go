package spec

// Config is the schema of .masterylint/config.yml.
type Config struct {
	Version int          `yaml:"version"`
	Corpus  CorpusConfig `yaml:"corpus"`
	Lint    LintConfig   `yaml:"lint"`
	Output  OutputConfig `yaml:"output"`
}

// CorpusConfig selects the markdown files to lint.
type CorpusConfig struct {
	Roots   []string `yaml:"roots"`
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// LintConfig tunes validation behavior.
type LintConfig struct {
	IDScope string `yaml:"id_scope"`
	Workers int    `yaml:"workers"`
}

// OutputConfig locates run outputs.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// ID uniqueness scopes accepted by LintConfig.IDScope.
const (
	IDScopeCorpus = "corpus"
	IDScopeFile   = "file"
)
